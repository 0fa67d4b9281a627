package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "how do i apply ", Normalize("How do I apply?"))
	assert.Equal(t, "cs 201", Normalize("CS-201"))
	assert.Equal(t, "  ", Normalize("!!"))
	assert.Equal(t, "", Normalize(""))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"drops short fragments", "a an is", nil},
		{"keeps length three and up", "the gym", []string{"the", "gym"}},
		{"strips punctuation", "How do I apply for admission?", []string{"how", "apply", "for", "admission"}},
		{"punctuation only", "!!", nil},
		{"empty", "", nil},
		{"splits on stripped runes", "CS-201 room", []string{"201", "room"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.message))
		})
	}
}
