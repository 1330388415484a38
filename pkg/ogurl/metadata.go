package ogurl

import (
	"strconv"
	"strings"
	"time"

	"blog-og/internal/domain/entity"
)

// Image is an Open Graph image reference.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// Metadata is the social preview metadata of one page.
type Metadata struct {
	Title       string
	Description string
	// Canonical is the page URL.
	Canonical string

	OGType        string
	Images        []Image
	PublishedTime time.Time
	Authors       []string

	TwitterCard    string
	TwitterCreator string
}

// Page describes the page metadata is built for. Article pages set Article.
type Page struct {
	Title       string
	Description string
	Slug        string
	Article     *Article
	// TwitterCreator is the @handle credited on Twitter cards.
	TwitterCreator string
}

// Article carries article-only metadata.
type Article struct {
	Title     string
	Published time.Time
	Authors   []string
}

// NewMetadata builds metadata for page served from base.
func NewMetadata(base string, page Page) (Metadata, error) {
	var (
		imageURL string
		err      error
	)
	if page.Article != nil {
		imageURL, err = ArticleURL(base, page.Article.Title)
	} else {
		imageURL, err = DefaultURL(base, page.Title, page.Description)
	}
	if err != nil {
		return Metadata{}, err
	}

	canonical := strings.TrimRight(base, "/")
	if page.Slug != "" {
		canonical += "/" + strings.TrimLeft(page.Slug, "/")
	}

	md := Metadata{
		Title:       page.Title,
		Description: page.Description,
		Canonical:   canonical,
		OGType:      "website",
		Images: []Image{{
			URL:    imageURL,
			Width:  entity.ImageWidth,
			Height: entity.ImageHeight,
			Alt:    page.Title,
		}},
		TwitterCard:    "summary_large_image",
		TwitterCreator: page.TwitterCreator,
	}
	if page.Article != nil {
		md.OGType = "article"
		md.PublishedTime = page.Article.Published
		md.Authors = page.Article.Authors
	}
	return md, nil
}

// Tag is one <meta> element. Open Graph tags use Property, Twitter tags use Name.
type Tag struct {
	Property string `json:"property,omitempty"`
	Name     string `json:"name,omitempty"`
	Content  string `json:"content"`
}

// Tags flattens the metadata into meta elements.
func (m Metadata) Tags() []Tag {
	tags := []Tag{
		{Property: "og:title", Content: m.Title},
		{Property: "og:description", Content: m.Description},
		{Property: "og:type", Content: m.OGType},
		{Property: "og:url", Content: m.Canonical},
	}
	for _, img := range m.Images {
		tags = append(tags,
			Tag{Property: "og:image", Content: img.URL},
			Tag{Property: "og:image:width", Content: strconv.Itoa(img.Width)},
			Tag{Property: "og:image:height", Content: strconv.Itoa(img.Height)},
			Tag{Property: "og:image:alt", Content: img.Alt},
		)
	}
	if !m.PublishedTime.IsZero() {
		tags = append(tags, Tag{Property: "article:published_time", Content: m.PublishedTime.UTC().Format(time.RFC3339)})
	}
	for _, a := range m.Authors {
		tags = append(tags, Tag{Property: "article:author", Content: a})
	}

	tags = append(tags,
		Tag{Name: "twitter:card", Content: m.TwitterCard},
		Tag{Name: "twitter:title", Content: m.Title},
		Tag{Name: "twitter:description", Content: m.Description},
	)
	for _, img := range m.Images {
		tags = append(tags, Tag{Name: "twitter:image", Content: img.URL})
	}
	if m.TwitterCreator != "" {
		tags = append(tags, Tag{Name: "twitter:creator", Content: m.TwitterCreator})
	}
	return tags
}
