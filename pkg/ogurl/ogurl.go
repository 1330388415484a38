// Package ogurl builds links to the OG image endpoint and the social meta
// tags that reference them. Pages use it so that the query contract of
// /api/og stays in one place.
package ogurl

import (
	"fmt"
	"net/url"
	"strings"

	"blog-og/internal/domain/entity"
	"blog-og/internal/usecase/sanitize"
)

// Path is the OG image endpoint path.
const Path = "/api/og"

// Params describe an OG image. Empty fields are omitted from the URL.
type Params struct {
	Title       string
	Description string
	// Type is "article" or "default"; any other value is omitted.
	Type   string
	Author string
}

// BuildURL returns base + /api/og with the non-empty parameters encoded once.
func BuildURL(base string, p Params) (string, error) {
	u, err := endpoint(base)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	if p.Title != "" {
		q.Set(entity.ParamTitle, p.Title)
	}
	if p.Description != "" {
		q.Set(entity.ParamDescription, p.Description)
	}
	if v, err := entity.ParseVariant(p.Type); err == nil {
		q.Set(entity.ParamType, v.String())
	}
	if p.Author != "" {
		q.Set(entity.ParamAuthor, p.Author)
	}

	u.RawQuery = encodeOrdered(q)
	return u.String(), nil
}

// ArticleURL returns the article image URL for title.
func ArticleURL(base, title string) (string, error) {
	return BuildURL(base, Params{Title: title, Type: entity.VariantArticle.String()})
}

// DefaultURL returns the default image URL. Empty arguments use the site
// defaults.
func DefaultURL(base, title, description string) (string, error) {
	if title == "" {
		title = sanitize.DefaultTitle
	}
	if description == "" {
		description = sanitize.DefaultDescription
	}
	return BuildURL(base, Params{Title: title, Description: description, Type: entity.VariantDefault.String()})
}

func endpoint(base string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url must be absolute, got %q", base)
	}
	u.Path = strings.TrimRight(u.Path, "/") + Path
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// encodeOrdered encodes q in title, description, type, author order so the
// URL, and therefore the ETag, is stable.
func encodeOrdered(q url.Values) string {
	var b strings.Builder
	for _, key := range []string{entity.ParamTitle, entity.ParamDescription, entity.ParamType, entity.ParamAuthor} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(strings.ReplaceAll(url.QueryEscape(v), "+", "%20"))
	}
	return b.String()
}
