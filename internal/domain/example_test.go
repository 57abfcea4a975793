package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single line",
			input: "LFG $BTC",
			want:  []string{"LFG $BTC"},
		},
		{
			name:  "trims and drops blank lines",
			input: "  first  \n\n\t\nsecond\n   ",
			want:  []string{"first", "second"},
		},
		{
			name:  "windows line endings",
			input: "first\r\nsecond\r\n",
			want:  []string{"first", "second"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseExamples(tc.input))
		})
	}
}

func TestDefaultExamplesAreClean(t *testing.T) {
	t.Parallel()

	assert.Len(t, DefaultExamples, 10)
	assert.Equal(t, DefaultExamples, CleanExamples(DefaultExamples))
}
