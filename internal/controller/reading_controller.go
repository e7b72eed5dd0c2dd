package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"naradamuni/internal/metrics"
	"naradamuni/internal/models"
	"naradamuni/internal/service"
	"naradamuni/internal/utils"
)

const maxPayloadBytes = 1 << 20

// ReadingController handles device ingestion, scrapes and health checks.
type ReadingController struct {
	service  *service.IngestService
	exporter *metrics.Exporter
}

// NewReadingController creates a new ReadingController.
func NewReadingController(service *service.IngestService, exporter *metrics.Exporter) *ReadingController {
	return &ReadingController{
		service:  service,
		exporter: exporter,
	}
}

// HandleListen accepts a reading pushed by a device.
func (c *ReadingController) HandleListen(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload map[string]any
	if err := decodeObject(http.MaxBytesReader(w, r.Body, maxPayloadBytes), &payload); err != nil {
		log.Printf("Rejected reading from %s: %v", r.RemoteAddr, err)
		apiErr := models.NewAPIError(models.ErrorCodeInvalidFormat, fmt.Sprintf("error decoding JSON object: %v", err), nil, http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}
	if payload == nil {
		apiErr := models.NewAPIError(models.ErrorCodeInvalidFormat, "request body must be a JSON object", nil, http.StatusBadRequest)
		utils.RespondWithError(w, apiErr)
		return
	}

	if _, err := c.service.Ingest(payload); err != nil {
		log.Printf("Rejected reading from %s: %v", r.RemoteAddr, err)
		utils.RespondWithError(w, ingestError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// HandleMetrics serves the current reading in the Prometheus text format.
func (c *ReadingController) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := c.exporter.Scrape()
	if err != nil {
		log.Printf("Error collecting metrics: %v", err)
		apiErr := models.NewAPIError(models.ErrorCodeInternalServerError, "Failed to collect metrics", nil, http.StatusInternalServerError)
		utils.RespondWithError(w, apiErr)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf("Error writing metrics response: %v", err)
	}
}

// HandleHealth reports liveness.
func (c *ReadingController) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Healthy")
}

// decodeObject decodes exactly one JSON value; anything but whitespace after it is an error.
func decodeObject(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

func ingestError(err error) models.APIError {
	var fieldErr *models.FieldError
	if !errors.As(err, &fieldErr) {
		return models.NewAPIError(models.ErrorCodeBadRequest, err.Error(), nil, http.StatusBadRequest)
	}

	details := map[string]string{"field": fieldErr.Field, "reason": string(fieldErr.Kind)}
	if errors.Is(err, models.ErrMissingField) {
		return models.NewAPIError(models.ErrorCodeMissingParameter, fieldErr.Error(), details, http.StatusBadRequest)
	}
	return models.NewAPIError(models.ErrorCodeValidationFailed, fieldErr.Error(), details, http.StatusBadRequest)
}
