// Package sanitize turns untrusted query-string values into safe display strings.
//
// Each field is cleaned according to its own Policy by an ordered chain of
// steps. The order is part of the contract: markup is stripped before the
// character whitelist runs, and the whitelist runs before dangerous URL
// schemes are removed. Reordering the chain changes the security properties
// of the combined result.
package sanitize

import (
	"regexp"
)

// Issue tags describe what sanitization changed.
type Issue string

const (
	IssueTooShort          Issue = "too_short"
	IssueTooLong           Issue = "too_long"
	IssueHTMLTagsRemoved   Issue = "html_tags_removed"
	IssueInvalidChars      Issue = "invalid_chars_removed"
	IssueNoValidChars      Issue = "no_valid_chars"
	IssueDangerousPatterns Issue = "dangerous_patterns_removed"
)

// TruncationMarker is appended to values cut down to MaxLength.
const TruncationMarker = "..."

// Policy configures how one field is cleaned. Lengths count runes.
type Policy struct {
	// Field names the parameter for logs and metrics.
	Field string
	// MaxLength is the longest accepted value, truncation marker included.
	MaxLength int
	// MinLength rejects shorter values entirely in favour of DefaultValue.
	MinLength int
	// DefaultValue replaces absent, too short, or unusable input.
	DefaultValue string
	// Allowed, when set, keeps only the characters it matches.
	Allowed *regexp.Regexp
}

var (
	// textChars allows common prose punctuation.
	textChars = regexp.MustCompile(`[A-Za-z0-9\s.,!?:;'"()\[\]{}\-_+=&%$#@]`)
	// nameChars is the narrower set used for author names.
	nameChars = regexp.MustCompile(`[A-Za-z0-9\s.\-_]`)
)

// Default display values used when a parameter is missing or unusable.
const (
	DefaultTitle       = "Design Engineer Blog"
	DefaultDescription = "Thoughts on design, engineering, and the intersection of both."
	DefaultAuthor      = "Ricky Zhang"
)

// Field policies for the OG endpoint. Only the title enforces a minimum
// length; description and author accept any non-empty value.
var (
	TitlePolicy = Policy{
		Field:        "title",
		MaxLength:    100,
		MinLength:    3,
		DefaultValue: DefaultTitle,
		Allowed:      textChars,
	}

	DescriptionPolicy = Policy{
		Field:        "description",
		MaxLength:    250,
		DefaultValue: DefaultDescription,
		Allowed:      textChars,
	}

	AuthorPolicy = Policy{
		Field:        "author",
		MaxLength:    50,
		DefaultValue: DefaultAuthor,
		Allowed:      nameChars,
	}
)

// WithDefault returns a copy of p using a different default value.
func (p Policy) WithDefault(value string) Policy {
	p.DefaultValue = value
	return p
}
