package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/gclone/internal/utils/path"
)

const testHomeDirectoryConstant = "/home/tester"

func TestHomeExpanderExpand(t *testing.T) {
	testCases := []struct {
		name     string
		provider pathutils.HomeDirectoryProvider
		input    string
		expected string
	}{
		{
			name:     "expands_tilde_prefix",
			provider: func() (string, error) { return testHomeDirectoryConstant, nil },
			input:    "~/github",
			expected: filepath.Join(testHomeDirectoryConstant, "github"),
		},
		{
			name:     "expands_bare_tilde",
			provider: func() (string, error) { return testHomeDirectoryConstant, nil },
			input:    "~",
			expected: testHomeDirectoryConstant,
		},
		{
			name:     "keeps_absolute_path",
			provider: func() (string, error) { return testHomeDirectoryConstant, nil },
			input:    "/var/tmp/project",
			expected: "/var/tmp/project",
		},
		{
			name:     "keeps_path_when_lookup_fails",
			provider: func() (string, error) { return "", errors.New("no home") },
			input:    "~/github",
			expected: "~/github",
		},
		{
			name:     "keeps_embedded_tilde",
			provider: func() (string, error) { return testHomeDirectoryConstant, nil },
			input:    "/data/~archive",
			expected: "/data/~archive",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			expander := pathutils.NewHomeExpanderWithProvider(testCase.provider)
			require.Equal(t, testCase.expected, expander.Expand(testCase.input))
		})
	}
}
