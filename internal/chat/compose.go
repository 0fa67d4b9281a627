package chat

import (
	"fmt"
	"strings"

	"github.com/xaenox/campus-chatbot/internal/models"
)

// GenericFallback is the terminal reply when no stage produced anything.
const GenericFallback = "I couldn't find a direct match in the campus database. " +
	"Try asking about specific keywords like 'library hours', 'CS department schedule', " +
	"'canteen menu', or 'how to apply for leave'."

const apologyPrefix = "Sorry, I couldn't find an exact answer in the campus DB and an external fallback failed: "

// composeFAQs joins every returned match, not just the top one, so the reply
// can be a multi-answer concatenation.
func composeFAQs(matches []models.FAQMatch) string {
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = fmt.Sprintf("[%s] %s\nAnswer: %s", m.FAQ.Category, m.FAQ.Question, m.FAQ.Answer)
	}
	return strings.Join(parts, "\n\n")
}

// composeRecords renders each record as "name: value" lines, every field
// included, records separated by a blank line.
func composeRecords(records []models.Record) string {
	blocks := make([]string, len(records))
	for i, r := range records {
		var b strings.Builder
		fmt.Fprintf(&b, "id: %d", r.RecordID())
		for _, f := range r.Fields() {
			b.WriteString("\n")
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(f.Value)
		}
		blocks[i] = b.String()
	}
	return strings.Join(blocks, "\n\n")
}

func buildPrompt(message string) string {
	return "You are a helpful campus assistant. The user asks: " + message +
		"\n\nAnswer concisely and mention if you couldn't find structured data."
}
