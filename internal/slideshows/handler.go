package slideshows

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/slidekit/proofplay/pkg/handlers"
	"github.com/slidekit/proofplay/pkg/pagination"
	"github.com/slidekit/proofplay/pkg/routes"
)

// Handler provides HTTP endpoints for slideshow management.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a new slideshows HTTP handler.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "slideshows"),
		pagination: pagination,
	}
}

// Routes returns the route configuration for slideshow endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/slideshows",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
			{Method: "POST", Pattern: "/{id}/proof-of-play/{imageId}", Handler: h.RecordProofOfPlay},
		},
	}
}

// Create handles POST / - registers a new slideshow.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := draft.Validate(); err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	show, err := h.sys.Create(r.Context(), draft)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, show)
}

// List handles GET / - returns paginated slideshows with optional filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /{id} - returns a slideshow with its proof-of-play history.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	show, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, show)
}

// Update handles PUT /{id} - replaces a slideshow's name and image list.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	var patch Draft
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := patch.Validate(); err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	show, err := h.sys.Update(r.Context(), id, patch)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, show)
}

// Delete handles DELETE /{id} - removes a slideshow and its history.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordProofOfPlay handles POST /{id}/proof-of-play/{imageId} - records a playback.
func (h *Handler) RecordProofOfPlay(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	imageID, err := parseID(r, "imageId")
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.RecordProofOfPlay(r.Context(), id, imageID); err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func parseID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
