package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/OCharnyshevich/bedrockmate/internal/store"
)

type worldCreateRequest struct {
	Name        string `json:"name"`
	Seed        string `json:"seed"`
	Description string `json:"description"`
}

type worldUpdateRequest struct {
	Name        *string `json:"name"`
	Seed        *string `json:"seed"`
	Description *string `json:"description"`
}

func (s *Server) handleWorldList(w http.ResponseWriter, r *http.Request) {
	worlds, err := s.store.Worlds(r.Context())
	if err != nil {
		s.log.Error("list worlds", "error", err)
		writeError(w, http.StatusInternalServerError, "list worlds")
		return
	}
	if worlds == nil {
		worlds = []store.World{}
	}
	writeJSON(w, http.StatusOK, worlds)
}

func (s *Server) handleWorldCreate(w http.ResponseWriter, r *http.Request) {
	var req worldCreateRequest
	if err := s.decodeValid(r, "world_create", &req); err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	world, err := s.store.CreateWorld(r.Context(), req.Name, req.Seed, req.Description)
	if err != nil {
		s.log.Error("create world", "error", err)
		writeError(w, http.StatusInternalServerError, "create world")
		return
	}
	writeJSON(w, http.StatusCreated, world)
}

func (s *Server) handleWorldActive(w http.ResponseWriter, r *http.Request) {
	world, err := s.store.ActiveWorld(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no active world")
		return
	}
	if err != nil {
		s.log.Error("active world", "error", err)
		writeError(w, http.StatusInternalServerError, "active world")
		return
	}
	writeJSON(w, http.StatusOK, world)
}

func (s *Server) handleWorldGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	world, err := s.store.World(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "world %d not found", id)
		return
	}
	if err != nil {
		s.log.Error("get world", "world", id, "error", err)
		writeError(w, http.StatusInternalServerError, "get world")
		return
	}
	writeJSON(w, http.StatusOK, world)
}

func (s *Server) handleWorldUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req worldUpdateRequest
	if err := s.decodeValid(r, "world_update", &req); err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	upd := store.WorldUpdate{Name: req.Name, Seed: req.Seed, Description: req.Description}
	if err := s.store.UpdateWorld(r.Context(), id, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "world %d not found", id)
			return
		}
		s.log.Error("update world", "world", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update world")
		return
	}
	world, err := s.store.World(r.Context(), id)
	if err != nil {
		s.log.Error("reload world", "world", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update world")
		return
	}
	writeJSON(w, http.StatusOK, world)
}

func (s *Server) handleWorldDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteWorld(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "world %d not found", id)
			return
		}
		s.log.Error("delete world", "world", id, "error", err)
		writeError(w, http.StatusInternalServerError, "delete world")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWorldActivate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.SetActiveWorld(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "world %d not found", id)
			return
		}
		s.log.Error("activate world", "world", id, "error", err)
		writeError(w, http.StatusInternalServerError, "activate world")
		return
	}
	world, err := s.store.World(r.Context(), id)
	if err != nil {
		s.log.Error("reload world", "world", id, "error", err)
		writeError(w, http.StatusInternalServerError, "activate world")
		return
	}
	writeJSON(w, http.StatusOK, world)
}

// pathID parses the {id} path segment. On failure it writes a 400 and
// reports ok=false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "invalid id %q", r.PathValue("id"))
		return 0, false
	}
	return id, true
}
