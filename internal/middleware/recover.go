package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/slidekit/proofplay/pkg/handlers"
)

// Recover returns middleware that converts handler panics into 500
// responses with the standard error envelope.
func Recover(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					handlers.RespondError(w, r, logger, http.StatusInternalServerError, fmt.Errorf("%v", rec))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
