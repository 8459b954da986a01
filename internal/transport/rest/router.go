package rest

import (
	"log/slog"
	"net/http"

	"github.com/wordlens/wordlens-backend/internal/config"
	"github.com/wordlens/wordlens-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Capture *CaptureHandler
	Vocab   *VocabHandler
	Study   *StudyHandler
	Folders *FolderHandler
	Media   *MediaHandler
}

// NewRouter builds the HTTP routing table with the standard middleware
// chain applied to every route.
func NewRouter(h Handlers, logger *slog.Logger, corsCfg config.CORSConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /v1/capture/tokens", h.Capture.Tokens)
	mux.HandleFunc("POST /v1/capture/context", h.Capture.Context)
	mux.HandleFunc("POST /v1/capture/save", h.Capture.Save)

	mux.HandleFunc("GET /v1/terms", h.Vocab.List)
	mux.HandleFunc("GET /v1/terms/{id}", h.Vocab.Get)
	mux.HandleFunc("DELETE /v1/terms/{id}", h.Vocab.Delete)

	mux.HandleFunc("GET /v1/study/queue", h.Study.Queue)
	mux.HandleFunc("POST /v1/study/reviews", h.Study.Review)
	mux.HandleFunc("GET /v1/terms/{id}/reviews", h.Study.History)

	mux.HandleFunc("GET /v1/folders", h.Folders.List)
	mux.HandleFunc("POST /v1/folders", h.Folders.Create)
	mux.HandleFunc("PATCH /v1/folders/{id}", h.Folders.Rename)
	mux.HandleFunc("DELETE /v1/folders/{id}", h.Folders.Delete)

	mux.HandleFunc("GET /v1/media/{path...}", h.Media.Get)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsCfg),
	)
	return chain(mux)
}
