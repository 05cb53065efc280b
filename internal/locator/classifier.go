package locator

import (
	"regexp"
	"unicode"
)

const (
	sshLocatorPatternConstant                = `^[^@:/]+@[^@:/]+:([^/]+)/([^/]+)\.git$`
	httpsWithSuffixLocatorPatternConstant    = `^https://[^/]+/([^/]+)/([^/]+)\.git$`
	httpsWithoutSuffixLocatorPatternConstant = `^https://[^/]+/([^/]+)/([^/]+)$`
	expectedSubmatchCountConstant            = 3
)

// IdentityKind tags the locator shape that produced an identity.
type IdentityKind string

// Recognized locator shapes.
const (
	IdentityKindSSH   IdentityKind = IdentityKind("ssh")
	IdentityKindHTTPS IdentityKind = IdentityKind("https")
)

// Identity is the owner and repository name pair extracted from a locator.
type Identity struct {
	Owner string
	Name  string
	Kind  IdentityKind
}

type identityMatcher struct {
	kind    IdentityKind
	pattern *regexp.Regexp
}

// Matchers are ordered; the first successful match wins.
var identityMatchers = []identityMatcher{
	{kind: IdentityKindSSH, pattern: regexp.MustCompile(sshLocatorPatternConstant)},
	{kind: IdentityKindHTTPS, pattern: regexp.MustCompile(httpsWithSuffixLocatorPatternConstant)},
	{kind: IdentityKindHTTPS, pattern: regexp.MustCompile(httpsWithoutSuffixLocatorPatternConstant)},
}

// Classify determines whether the supplied text is a recognized repository
// locator and extracts its identity. The second return value reports whether
// classification succeeded; malformed input is not an error.
func Classify(locatorText string) (Identity, bool) {
	if len(locatorText) == 0 {
		return Identity{}, false
	}
	if containsWhitespaceOrControl(locatorText) {
		return Identity{}, false
	}

	for _, matcher := range identityMatchers {
		submatches := matcher.pattern.FindStringSubmatch(locatorText)
		if len(submatches) != expectedSubmatchCountConstant {
			continue
		}
		return Identity{Owner: submatches[1], Name: submatches[2], Kind: matcher.kind}, true
	}

	return Identity{}, false
}

func containsWhitespaceOrControl(locatorText string) bool {
	for _, character := range locatorText {
		if unicode.IsSpace(character) || unicode.IsControl(character) {
			return true
		}
	}
	return false
}
