package images_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/slidekit/proofplay/internal/images"
	"github.com/slidekit/proofplay/internal/routes"
	"github.com/slidekit/proofplay/pkg/handlers"
	"github.com/slidekit/proofplay/pkg/pagination"
)

func newImagesHandler(t *testing.T) (*fakeStore, http.Handler) {
	t.Helper()

	store := newFakeStore()
	sys := images.New(store, allowed, discard())

	handler := images.NewHandler(sys, discard(), pagination.Config{
		DefaultPageSize: 20,
		MaxPageSize:     100,
	})

	routeSys := routes.New(discard(), "/api")
	routeSys.RegisterGroup(handler.Routes())
	return store, routeSys.Build()
}

func TestImagesHandlerCreate(t *testing.T) {
	_, mux := newImagesHandler(t)

	body := `{"name": "hero", "url": "https://cdn.example.com/hero.jpg", "duration": 10}`
	req := httptest.NewRequest("POST", "/api/images", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
}

func TestImagesHandlerCreate_InvalidURL(t *testing.T) {
	_, mux := newImagesHandler(t)

	body := `{"name": "hero", "url": "https://cdn.example.com/hero.tiff"}`
	req := httptest.NewRequest("POST", "/api/images", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var envelope handlers.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("envelope decode failed: %v", err)
	}
	if envelope.Message != "Invalid image URL: https://cdn.example.com/hero.tiff" {
		t.Errorf("envelope message = %q", envelope.Message)
	}
}

func TestImagesHandlerSearch_NotShadowedByID(t *testing.T) {
	store, mux := newImagesHandler(t)

	req := httptest.NewRequest("GET", "/api/images/search?keyword=lobby", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if store.lastFilters.URL == nil || *store.lastFilters.URL != "lobby" {
		t.Errorf("search filters = %+v, want URL filter %q", store.lastFilters, "lobby")
	}
}

func TestImagesHandlerFind_NotFound(t *testing.T) {
	_, mux := newImagesHandler(t)

	req := httptest.NewRequest("GET", "/api/images/7", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var envelope handlers.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("envelope decode failed: %v", err)
	}
	if envelope.Message != "Image not found with id: 7" {
		t.Errorf("envelope message = %q", envelope.Message)
	}
}
