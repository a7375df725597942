package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/OCharnyshevich/bedrockmate/internal/store"
)

type bookmarkCreateRequest struct {
	WorldID   int64   `json:"world_id"`
	Name      string  `json:"name"`
	X         int     `json:"x"`
	Y         *int    `json:"y"`
	Z         int     `json:"z"`
	Dimension *string `json:"dimension"`
	Category  string  `json:"category"`
	Icon      *string `json:"icon"`
	Notes     string  `json:"notes"`
}

type bookmarkUpdateRequest struct {
	Name      *string `json:"name"`
	X         *int    `json:"x"`
	Y         *int    `json:"y"`
	Z         *int    `json:"z"`
	Dimension *string `json:"dimension"`
	Category  *string `json:"category"`
	Icon      *string `json:"icon"`
	Notes     *string `json:"notes"`
}

func (s *Server) handleBookmarkList(w http.ResponseWriter, r *http.Request) {
	worldID, err := strconv.ParseInt(r.URL.Query().Get("world_id"), 10, 64)
	if err != nil || worldID < 1 {
		writeError(w, http.StatusBadRequest, "world_id query parameter required")
		return
	}
	bookmarks, err := s.store.BookmarksByWorld(r.Context(), worldID)
	if err != nil {
		s.log.Error("list bookmarks", "world", worldID, "error", err)
		writeError(w, http.StatusInternalServerError, "list bookmarks")
		return
	}
	if bookmarks == nil {
		bookmarks = []store.Bookmark{}
	}
	writeJSON(w, http.StatusOK, bookmarks)
}

func (s *Server) handleBookmarkCreate(w http.ResponseWriter, r *http.Request) {
	var req bookmarkCreateRequest
	if err := s.decodeValid(r, "bookmark_create", &req); err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if _, err := s.store.World(r.Context(), req.WorldID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "world %d not found", req.WorldID)
			return
		}
		s.log.Error("check world", "world", req.WorldID, "error", err)
		writeError(w, http.StatusInternalServerError, "create bookmark")
		return
	}

	b := store.Bookmark{
		WorldID:   req.WorldID,
		Name:      req.Name,
		X:         req.X,
		Y:         64,
		Z:         req.Z,
		Dimension: "overworld",
		Category:  req.Category,
		Icon:      "📍",
		Notes:     req.Notes,
	}
	if req.Y != nil {
		b.Y = *req.Y
	}
	if req.Dimension != nil {
		b.Dimension = *req.Dimension
	}
	if req.Icon != nil {
		b.Icon = *req.Icon
	}

	created, err := s.store.CreateBookmark(r.Context(), b)
	if err != nil {
		s.log.Error("create bookmark", "world", req.WorldID, "error", err)
		writeError(w, http.StatusInternalServerError, "create bookmark")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleBookmarkGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, err := s.store.Bookmark(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "bookmark %d not found", id)
		return
	}
	if err != nil {
		s.log.Error("get bookmark", "bookmark", id, "error", err)
		writeError(w, http.StatusInternalServerError, "get bookmark")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleBookmarkUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req bookmarkUpdateRequest
	if err := s.decodeValid(r, "bookmark_update", &req); err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	upd := store.BookmarkUpdate{
		Name:      req.Name,
		X:         req.X,
		Y:         req.Y,
		Z:         req.Z,
		Dimension: req.Dimension,
		Category:  req.Category,
		Icon:      req.Icon,
		Notes:     req.Notes,
	}
	if err := s.store.UpdateBookmark(r.Context(), id, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "bookmark %d not found", id)
			return
		}
		s.log.Error("update bookmark", "bookmark", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update bookmark")
		return
	}
	b, err := s.store.Bookmark(r.Context(), id)
	if err != nil {
		s.log.Error("reload bookmark", "bookmark", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update bookmark")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleBookmarkDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteBookmark(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "bookmark %d not found", id)
			return
		}
		s.log.Error("delete bookmark", "bookmark", id, "error", err)
		writeError(w, http.StatusInternalServerError, "delete bookmark")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
