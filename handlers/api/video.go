package api

import (
	"net/http"

	"vidbrief/errors"
	"vidbrief/models"
	"vidbrief/services/video"
	"vidbrief/validation"

	"github.com/sirupsen/logrus"
)

type VideoHandler struct {
	service   video.Service
	validator *validation.Validator
	logger    *logrus.Logger
}

func NewVideoHandler(service video.Service, validator *validation.Validator) *VideoHandler {
	return &VideoHandler{
		service:   service,
		validator: validator,
		logger:    logrus.StandardLogger(),
	}
}

// HandleProcessVideo handles POST /api/process-video
func (h *VideoHandler) HandleProcessVideo(w http.ResponseWriter, r *http.Request) {
	const op = "VideoHandler.HandleProcessVideo"
	logger := h.logger.WithContext(r.Context())

	if err := h.validator.ValidateRequest(r, validation.RequestValidationOpts{
		MaxContentLength: 1024 * 1024, // 1MB
		AllowedMethods:   []string{http.MethodPost},
		RequireJSON:      true,
	}); err != nil {
		respondError(w, r, err)
		return
	}

	var req models.VideoRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if req.URL == "" {
		respondError(w, r, errors.InvalidInput(op, nil, "URL is required"))
		return
	}

	logger.WithField("url", req.URL).Info("Received process request")

	v, err := h.service.Submit(r.Context(), req.URL)
	if err != nil {
		logger.WithError(err).Error("Failed to submit video")
		respondError(w, r, err)
		return
	}

	logger.WithFields(logrus.Fields{
		"video_id": v.ID,
		"status":   v.Status,
	}).Info("Video submission accepted")

	respondJSON(w, r, http.StatusAccepted, models.NewVideoResponse(v))
}

// HandleGetSummary handles GET /api/summary/{videoId}
func (h *VideoHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	const op = "VideoHandler.HandleGetSummary"
	logger := h.logger.WithContext(r.Context())

	id := r.PathValue("videoId")
	if id == "" {
		respondError(w, r, errors.InvalidInput(op, nil, "Video ID is required"))
		return
	}

	details, err := h.service.GetDetails(r.Context(), id)
	if err != nil {
		logger.WithError(err).Error("Failed to get video details")
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.NewDetailsResponse(details))
}
