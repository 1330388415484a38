// Package entity defines the transient values exchanged by the OG image pipeline.
// Nothing here is persisted; every value lives only as long as the request that built it.
package entity

import (
	"fmt"
	"net/url"
)

// Fixed social-preview dimensions shared by every template.
const (
	ImageWidth  = 1200
	ImageHeight = 630
)

// Query parameter names accepted by the OG endpoint.
// The page metadata helper builds URLs with these names, so they must stay stable.
const (
	ParamTitle       = "title"
	ParamDescription = "description"
	ParamType        = "type"
	ParamAuthor      = "author"
)

// Variant selects one of the fixed visual templates.
type Variant string

const (
	// VariantDefault is the logo-only template, rendered once and shared.
	VariantDefault Variant = "default"
	// VariantArticle is the logo plus title banner template, rendered per request.
	VariantArticle Variant = "article"
)

// String returns the variant name.
func (v Variant) String() string {
	return string(v)
}

// ResolveVariant maps a raw type parameter to a template.
// Only the exact value "article" selects the article template; anything else,
// including a missing value, resolves to the default template.
func ResolveVariant(raw *string) Variant {
	if raw != nil && *raw == string(VariantArticle) {
		return VariantArticle
	}
	return VariantDefault
}

// ParseVariant strictly parses a variant name.
// Unlike ResolveVariant it rejects unknown names, which is what callers that
// build URLs need.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantArticle, VariantDefault:
		return Variant(s), nil
	default:
		return "", &ValidationError{
			Field:   ParamType,
			Message: fmt.Sprintf("must be %q or %q, got %q", VariantArticle, VariantDefault, s),
			Err:     ErrInvalidVariant,
		}
	}
}

// RequestParameters holds the raw, untrusted query values of an OG request.
// A nil field means the parameter was absent.
type RequestParameters struct {
	Title       *string
	Description *string
	Type        *string
	Author      *string
}

// ParamsFromQuery extracts the OG parameters from a parsed query string.
// Only the first value of a repeated parameter is used.
func ParamsFromQuery(q url.Values) RequestParameters {
	return RequestParameters{
		Title:       firstValue(q, ParamTitle),
		Description: firstValue(q, ParamDescription),
		Type:        firstValue(q, ParamType),
		Author:      firstValue(q, ParamAuthor),
	}
}

func firstValue(q url.Values, key string) *string {
	values, ok := q[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}
