package og

import (
	"log/slog"
	"net/http"
)

// Path is the OG image route.
const Path = "/api/og"

// Register mounts the OG image handler. Only GET (and implicitly HEAD) is
// routed; other methods receive 405 from the mux.
func Register(mux *http.ServeMux, svc Generator, production bool, logger *slog.Logger) {
	mux.Handle("GET "+Path, ImageHandler{
		Svc:        svc,
		Production: production,
		Logger:     logger,
	})
}
