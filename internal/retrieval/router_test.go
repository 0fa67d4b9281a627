package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xaenox/campus-chatbot/internal/models"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		message string
		want    models.Table
		ok      bool
	}{
		{"what is the class schedule?", models.TableSchedules, true},
		{"CANTEEN menu today", models.TableDining, true},
		{"can I renew my books online?", models.TableLibrary, true},
		{"where is the gym", models.TableFacilities, true},
		{"how do I apply for admission", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Route(tt.message)
		assert.Equal(t, tt.ok, ok, "message %q", tt.message)
		assert.Equal(t, tt.want, got, "message %q", tt.message)
	}
}

// A message hitting several keyword sets only queries the first in priority
// order: schedules, dining, library, facilities.
func TestRoutePriority(t *testing.T) {
	table, ok := Route("what is the class schedule and library hours")
	assert.True(t, ok)
	assert.Equal(t, models.TableSchedules, table)

	table, ok = Route("is the library near the gym?")
	assert.True(t, ok)
	assert.Equal(t, models.TableLibrary, table)
}
