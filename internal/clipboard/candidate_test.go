package clipboard_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gclone/internal/clipboard"
)

func TestURLCandidate(t *testing.T) {
	testCases := []struct {
		name             string
		clipboardText    string
		expectedText     string
		expectedAccepted bool
	}{
		{
			name:             "https_url",
			clipboardText:    "https://github.com/alice/proj.git",
			expectedText:     "https://github.com/alice/proj.git",
			expectedAccepted: true,
		},
		{
			name:             "surrounding_whitespace_trimmed",
			clipboardText:    "  git@github.com:alice/proj.git  ",
			expectedText:     "git@github.com:alice/proj.git",
			expectedAccepted: true,
		},
		{
			name:             "plain_word_still_candidate",
			clipboardText:    "hello",
			expectedText:     "hello",
			expectedAccepted: true,
		},
		{
			name:             "empty_text",
			clipboardText:    "",
			expectedAccepted: false,
		},
		{
			name:             "whitespace_only",
			clipboardText:    "   \n  ",
			expectedAccepted: false,
		},
		{
			name:             "embedded_newline",
			clipboardText:    "https://github.com/alice\n/proj.git",
			expectedAccepted: false,
		},
		{
			name:             "embedded_carriage_return",
			clipboardText:    "https://github.com/alice\r/proj.git",
			expectedAccepted: false,
		},
		{
			name:             "embedded_tab",
			clipboardText:    "https://github.com\t/alice/proj.git",
			expectedAccepted: false,
		},
		{
			name:             "exceeds_length_bound",
			clipboardText:    "https://github.com/alice/" + strings.Repeat("a", clipboard.MaximumCandidateLength),
			expectedAccepted: false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			candidateText, accepted := clipboard.URLCandidate(testCase.clipboardText)
			require.Equal(t, testCase.expectedAccepted, accepted)
			if testCase.expectedAccepted {
				require.Equal(t, testCase.expectedText, candidateText)
			}
		})
	}
}
