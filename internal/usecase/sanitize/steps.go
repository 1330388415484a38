package sanitize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Step is one transformation of the chain. It returns the new value, the
// issue it raised (empty when nothing changed) and whether the caller must
// abandon the value and use the policy default instead.
type Step func(s string, p Policy) (out string, issue Issue, useDefault bool)

// Steps is the ordered chain applied to every non-empty value.
// Do not reorder without re-checking that markup, whitelist and scheme
// stripping still cover each other.
var Steps = []Step{
	RejectTooShort,
	TruncateTooLong,
	StripMarkup,
	KeepAllowed,
	StripDangerousSchemes,
	Finalize,
}

var (
	markupPattern    = regexp.MustCompile(`<[^>]*>`)
	dangerousPattern = regexp.MustCompile(`(?i)javascript:|data:|vbscript:`)
)

// RejectTooShort discards values shorter than MinLength.
func RejectTooShort(s string, p Policy) (string, Issue, bool) {
	if utf8.RuneCountInString(s) < p.MinLength {
		return s, IssueTooShort, true
	}
	return s, "", false
}

// TruncateTooLong cuts values longer than MaxLength and appends the marker.
// The marker counts towards MaxLength so the result is itself a valid value.
func TruncateTooLong(s string, p Policy) (string, Issue, bool) {
	if p.MaxLength <= 0 || utf8.RuneCountInString(s) <= p.MaxLength {
		return s, "", false
	}
	keep := p.MaxLength - utf8.RuneCountInString(TruncationMarker)
	if keep < 0 {
		keep = 0
	}
	runes := []rune(s)
	out := strings.TrimRightFunc(string(runes[:keep]), isSpace) + TruncationMarker
	if utf8.RuneCountInString(out) > p.MaxLength {
		out = string([]rune(out)[:p.MaxLength])
	}
	return out, IssueTooLong, false
}

// StripMarkup removes anything that looks like an HTML tag.
// Tags are removed, not escaped.
func StripMarkup(s string, _ Policy) (string, Issue, bool) {
	out := replaceUntilStable(markupPattern, s)
	if out != s {
		return out, IssueHTMLTagsRemoved, false
	}
	return s, "", false
}

// KeepAllowed keeps only the runs of characters matched by the policy whitelist.
func KeepAllowed(s string, p Policy) (string, Issue, bool) {
	if p.Allowed == nil {
		return s, "", false
	}
	matches := p.Allowed.FindAllString(s, -1)
	if len(matches) == 0 {
		return s, IssueNoValidChars, true
	}
	out := strings.Join(matches, "")
	if out != s {
		return out, IssueInvalidChars, false
	}
	return s, "", false
}

// StripDangerousSchemes removes javascript:, data: and vbscript: in any letter case.
// Removal repeats until nothing matches so nested payloads cannot reassemble.
func StripDangerousSchemes(s string, _ Policy) (string, Issue, bool) {
	out := replaceUntilStable(dangerousPattern, s)
	if out != s {
		return out, IssueDangerousPatterns, false
	}
	return s, "", false
}

// Finalize trims whitespace exposed by earlier removals and re-applies the
// length floor, so sanitizing a sanitized value is a no-op.
func Finalize(s string, p Policy) (string, Issue, bool) {
	out := strings.TrimSpace(s)
	if out == "" {
		return out, IssueNoValidChars, true
	}
	if utf8.RuneCountInString(out) < p.MinLength {
		return out, IssueTooShort, true
	}
	return out, "", false
}

func replaceUntilStable(re *regexp.Regexp, s string) string {
	for {
		out := re.ReplaceAllString(s, "")
		if out == s {
			return out
		}
		s = out
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}
