package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/OCharnyshevich/bedrockmate/internal/gamedata"
	"github.com/OCharnyshevich/bedrockmate/internal/jobs"
	"github.com/OCharnyshevich/bedrockmate/internal/store"
)

type jobCreateRequest struct {
	WorldID    int64           `json:"world_id"`
	JobType    string          `json:"job_type"`
	Parameters json.RawMessage `json:"parameters"`
}

func (s *Server) handleJobTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, gamedata.JobTypes())
}

func (s *Server) handleJobList(w http.ResponseWriter, r *http.Request) {
	worldID, err := strconv.ParseInt(r.URL.Query().Get("world_id"), 10, 64)
	if err != nil || worldID < 1 {
		writeError(w, http.StatusBadRequest, "world_id query parameter required")
		return
	}
	status := r.URL.Query().Get("status")
	switch status {
	case "", store.JobPending, store.JobRunning, store.JobCompleted, store.JobFailed:
	default:
		writeError(w, http.StatusBadRequest, "unknown status %q", status)
		return
	}
	list, err := s.store.JobsByWorld(r.Context(), worldID, status)
	if err != nil {
		s.log.Error("list jobs", "world", worldID, "error", err)
		writeError(w, http.StatusInternalServerError, "list jobs")
		return
	}
	if list == nil {
		list = []store.Job{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleJobCreate(w http.ResponseWriter, r *http.Request) {
	var req jobCreateRequest
	if err := s.decodeValid(r, "job_create", &req); err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if !jobs.KnownType(req.JobType) {
		writeError(w, http.StatusBadRequest, "unknown job type %q", req.JobType)
		return
	}
	if _, err := s.store.World(r.Context(), req.WorldID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "world %d not found", req.WorldID)
			return
		}
		s.log.Error("check world", "world", req.WorldID, "error", err)
		writeError(w, http.StatusInternalServerError, "create job")
		return
	}

	var parameters string
	if len(req.Parameters) > 0 && string(req.Parameters) != "null" {
		parameters = string(req.Parameters)
	}
	job, err := s.store.CreateJob(r.Context(), req.WorldID, req.JobType, parameters)
	if err != nil {
		s.log.Error("create job", "world", req.WorldID, "error", err)
		writeError(w, http.StatusInternalServerError, "create job")
		return
	}

	if err := s.runner.Submit(job.ID); err != nil {
		_ = s.store.FailJob(r.Context(), job.ID, err.Error())
		writeError(w, http.StatusServiceUnavailable, "job queue full, try again later")
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (s *Server) handleJobGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	job, err := s.store.Job(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "job %d not found", id)
		return
	}
	if err != nil {
		s.log.Error("get job", "job", id, "error", err)
		writeError(w, http.StatusInternalServerError, "get job")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleJobDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteJob(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "job %d not found", id)
			return
		}
		s.log.Error("delete job", "job", id, "error", err)
		writeError(w, http.StatusInternalServerError, "delete job")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
