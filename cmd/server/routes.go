package main

import (
	"net/http"

	"github.com/slidekit/proofplay/internal/images"
	"github.com/slidekit/proofplay/internal/infrastructure"
	"github.com/slidekit/proofplay/internal/lifecycle"
	"github.com/slidekit/proofplay/internal/slideshows"
	pkgroutes "github.com/slidekit/proofplay/pkg/routes"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r pkgroutes.System, infra *infrastructure.Infrastructure, domain *Domain) {
	slideshowHandler := slideshows.NewHandler(domain.Slideshows, infra.Logger, domain.pagination)
	r.RegisterGroup(slideshowHandler.Routes())

	imageHandler := images.NewHandler(domain.Images, infra.Logger, domain.pagination)
	r.RegisterGroup(imageHandler.Routes())

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, req *http.Request) {
			handleReadinessCheck(w, infra.Lifecycle)
		},
	})
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
