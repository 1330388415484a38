package og

// Cache-Control values for the OG endpoint.
const (
	// CacheLong answers a revalidation hit. The URL fully determines the image.
	CacheLong = "public, max-age=31536000, s-maxage=31536000, stale-while-revalidate=86400, immutable"
	// CacheShort is used for freshly generated and fallback images.
	CacheShort = "public, max-age=300, s-maxage=300, stale-while-revalidate=60"
	// CacheNone is used for error responses.
	CacheNone = "no-store, max-age=0, must-revalidate"
)

// Response header names and values.
const (
	headerETag         = "ETag"
	headerIfNoneMatch  = "If-None-Match"
	headerCacheControl = "Cache-Control"
	headerServerTiming = "Server-Timing"
	headerImageType    = "X-Image-Type"
	headerError        = "X-Error"
	headerVary         = "Vary"

	contentTypePNG  = "image/png"
	contentTypeText = "text/plain"

	imageTypeFallback = "fallback"
	errorBody         = "Error generating image"
	errorHeaderValue  = "Failed to generate OG image"
)
