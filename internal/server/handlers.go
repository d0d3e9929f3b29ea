package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vieclam/jobboard/internal/entities"
	"github.com/vieclam/jobboard/internal/logger"
	"github.com/vieclam/jobboard/internal/services"
)

const maxCVSize = 10 << 20 // 10 MiB

type jobReader interface {
	GetByID(ctx context.Context, id uint) (*entities.Job, error)
}

type cvReader interface {
	GetByUser(ctx context.Context, userID int64) (*entities.CVProfile, error)
}

type Handlers struct {
	engine    *services.SearchEngine
	jobs      jobReader
	tracking  *services.TrackingService
	processor *services.CVProcessor
	cvs       cvReader
}

func NewHandlers(engine *services.SearchEngine, jobs jobReader, tracking *services.TrackingService,
	processor *services.CVProcessor, cvs cvReader) *Handlers {

	return &Handlers{
		engine:    engine,
		jobs:      jobs,
		tracking:  tracking,
		processor: processor,
		cvs:       cvs,
	}
}

// SearchJobs returns one page of listings with pagination metadata. A
// storage failure is a 500 with an error body, never an empty page:
// "no matches" and "search failed" stay distinguishable.
func (h *Handlers) SearchJobs(w http.ResponseWriter, r *http.Request) {

	request, err := parseSearchRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid search parameters")
		return
	}

	result, err := h.engine.Search(r.Context(), request.toFilter())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) JobsFeed(w http.ResponseWriter, r *http.Request) {

	request, err := parseSearchRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid search parameters")
		return
	}

	result, err := h.engine.SearchFeed(r.Context(), request.toFilter())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {

	jobID, ok := jobIDFrom(chi.URLParam(r, "jobID"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.jobs.GetByID(r.Context(), jobID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get job: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load job")
		return
	}
	if job == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *Handlers) SaveJob(w http.ResponseWriter, r *http.Request) {

	userID, jobID, ok := h.trackingParams(w, r)
	if !ok {
		return
	}

	if err := h.tracking.SaveJob(r.Context(), userID, jobID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save job")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) UnsaveJob(w http.ResponseWriter, r *http.Request) {

	userID, jobID, ok := h.trackingParams(w, r)
	if !ok {
		return
	}

	if err := h.tracking.UnsaveJob(r.Context(), userID, jobID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to unsave job")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListSavedJobs(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user id")
		return
	}

	saved, err := h.tracking.GetSavedJobs(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list saved jobs")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handlers) ApplyToJob(w http.ResponseWriter, r *http.Request) {

	userID, jobID, ok := h.trackingParams(w, r)
	if !ok {
		return
	}

	if err := h.tracking.Apply(r.Context(), userID, jobID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to apply")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListApplications(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user id")
		return
	}

	applications, err := h.tracking.GetApplications(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list applications")
		return
	}
	writeJSON(w, http.StatusOK, applications)
}

func (h *Handlers) UploadCV(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user id")
		return
	}

	if err := r.ParseMultipartForm(maxCVSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	profile, err := h.processor.Process(r.Context(), userID, header.Filename, file)
	if err != nil {
		writeError(w, http.StatusBadGateway, "cv parsing failed")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handlers) GetCVProfile(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user id")
		return
	}

	profile, err := h.cvs.GetByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cv profile")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "no cv uploaded")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handlers) trackingParams(w http.ResponseWriter, r *http.Request) (int64, uint, bool) {

	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user id")
		return 0, 0, false
	}

	jobID, ok := jobIDFrom(chi.URLParam(r, "jobID"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return 0, 0, false
	}

	return userID, jobID, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
