package retrieval

import (
	"strings"

	"github.com/xaenox/campus-chatbot/internal/models"
)

// intentRoute pairs a relation with the keywords that select it.
type intentRoute struct {
	table    models.Table
	keywords []string
}

// routes is checked in order; the first set with a keyword present in the
// message wins, so "class schedule and library hours" goes to schedules.
var routes = []intentRoute{
	{models.TableSchedules, []string{"schedule", "time", "timetable", "class"}},
	{models.TableDining, []string{"canteen", "dining", "menu", "mess"}},
	{models.TableLibrary, []string{"library", "books", "borrow", "renew"}},
	{models.TableFacilities, []string{"lab", "facility", "gym", "parking", "hostel"}},
}

// Route inspects the raw message for category keywords and returns the
// relation to query, or ("", false) when no keyword set matches.
func Route(message string) (models.Table, bool) {
	low := strings.ToLower(message)
	for _, r := range routes {
		if containsAny(low, r.keywords...) {
			return r.table, true
		}
	}
	return "", false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
