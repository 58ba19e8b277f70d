package images

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/slidekit/proofplay/pkg/handlers"
	"github.com/slidekit/proofplay/pkg/pagination"
	"github.com/slidekit/proofplay/pkg/routes"
)

// Handler provides HTTP endpoints for image management.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a new images HTTP handler.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "images"),
		pagination: pagination,
	}
}

// Routes returns the route configuration for image endpoints. The literal
// /search pattern takes precedence over /{id} in the multiplexer.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/images",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/search", Handler: h.Search},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// Create handles POST / - registers a new image.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	img, err := h.sys.Create(r.Context(), draft)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, img)
}

// List handles GET / - returns paginated images with optional filters.
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

// Search handles GET /search - returns images whose URL contains the keyword.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	keyword := r.URL.Query().Get("keyword")

	result, err := h.sys.Search(r.Context(), keyword, page)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /{id} - returns an image.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	img, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, img)
}

// Update handles PUT /{id} - replaces an image's fields.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	var patch Draft
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	img, err := h.sys.Update(r.Context(), id, patch)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, img)
}

// Delete handles DELETE /{id} - removes an image.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
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

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
