package clipboard

import "strings"

const (
	// MaximumCandidateLength bounds clipboard text considered a URL candidate.
	MaximumCandidateLength = 200

	newlineCharacterConstant        = "\n"
	carriageReturnCharacterConstant = "\r"
	tabCharacterConstant            = "\t"
)

var disallowedCandidateSubstrings = []string{
	newlineCharacterConstant,
	carriageReturnCharacterConstant,
	tabCharacterConstant,
}

// URLCandidate reports whether clipboard text is plausible as a repository
// locator: trimmed, non-empty, within the length bound, and free of embedded
// line breaks or tabs. The decision is independent of URL classification.
func URLCandidate(clipboardText string) (string, bool) {
	trimmedText := strings.TrimSpace(clipboardText)
	if len(trimmedText) == 0 {
		return "", false
	}
	if len(trimmedText) > MaximumCandidateLength {
		return "", false
	}

	for _, disallowedSubstring := range disallowedCandidateSubstrings {
		if strings.Contains(trimmedText, disallowedSubstring) {
			return "", false
		}
	}

	return trimmedText, true
}
