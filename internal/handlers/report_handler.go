package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/Dias221467/Animal_Rescue/internal/services"
	"github.com/Dias221467/Animal_Rescue/pkg/upload"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ReportHandler handles HTTP requests related to rescue reports.
type ReportHandler struct {
	Service        *services.ReportService
	NGOService     *services.NGOService
	Photos         *upload.PhotoStore
	MaxUploadBytes int64
}

// NewReportHandler creates a new instance of ReportHandler.
func NewReportHandler(service *services.ReportService, ngoService *services.NGOService, photos *upload.PhotoStore, maxUploadBytes int64) *ReportHandler {
	return &ReportHandler{
		Service:        service,
		NGOService:     ngoService,
		Photos:         photos,
		MaxUploadBytes: maxUploadBytes,
	}
}

type submitReportRequest struct {
	Photo       string   `json:"photo"`
	Description string   `json:"description"`
	Longitude   *float64 `json:"longitude"`
	Latitude    *float64 `json:"latitude"`
}

// reportForm is a decoded report submission. uploaded marks a photo stored by this request.
type reportForm struct {
	photo       string
	description string
	location    models.Location
	uploaded    bool
}

// SubmitReportHandler accepts a report as multipart form data (with a "photo" file) or as JSON
// carrying a photo reference.
func (h *ReportHandler) SubmitReportHandler(w http.ResponseWriter, r *http.Request) {
	var (
		form reportForm
		err  error
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		form, err = h.readMultipartReport(w, r)
	} else {
		form, err = readJSONReport(r)
	}
	if err != nil {
		logrus.WithError(err).Warn("Rejected report submission")
		writeServiceError(w, err)
		return
	}

	report, _, err := h.Service.SubmitReport(r.Context(), form.photo, form.description, form.location)
	if err != nil {
		if form.uploaded {
			if rmErr := h.Photos.Remove(form.photo); rmErr != nil {
				logrus.WithError(rmErr).WithField("photo", form.photo).Warn("Failed to remove orphaned photo")
			}
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) readMultipartReport(w http.ResponseWriter, r *http.Request) (reportForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		return reportForm{}, fmt.Errorf("%w: file too big or invalid form", services.ErrValidation)
	}

	location, err := models.ParseLocation(r.FormValue("longitude"), r.FormValue("latitude"))
	if err != nil {
		return reportForm{}, err
	}
	form := reportForm{description: r.FormValue("description"), location: location}
	if strings.TrimSpace(form.description) == "" {
		return reportForm{}, fmt.Errorf("%w: description is required", services.ErrValidation)
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		// No file part: accept an already stored photo reference.
		form.photo = r.FormValue("photo")
		return form, nil
	}
	defer file.Close()

	form.photo, err = h.Photos.Save(file)
	if errors.Is(err, upload.ErrUnsupportedType) {
		return reportForm{}, fmt.Errorf("%w: %w", services.ErrValidation, err)
	}
	if err != nil {
		return reportForm{}, err
	}
	form.uploaded = true
	return form, nil
}

func readJSONReport(r *http.Request) (reportForm, error) {
	var req submitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return reportForm{}, fmt.Errorf("%w: invalid request payload", services.ErrValidation)
	}
	defer r.Body.Close()

	location, err := models.LocationFromPointers(req.Longitude, req.Latitude)
	if err != nil {
		return reportForm{}, err
	}
	return reportForm{photo: req.Photo, description: req.Description, location: location}, nil
}

// GetReportsHandler lists every open report, most recent first.
func (h *ReportHandler) GetReportsHandler(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Service.ListReports(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// GetReportHandler returns one report.
func (h *ReportHandler) GetReportHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.GetReport(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// UpdateReportStatusHandler moves a report through its lifecycle on behalf of the calling NGO.
func (h *ReportHandler) UpdateReportStatusHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	actor, err := h.NGOService.Identity(r.Context(), ngoID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	reportID := mux.Vars(r)["id"]
	update, err := h.Service.UpdateStatus(r.Context(), reportID, body.Status, actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if update.Completed() {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"completed": true,
			"message":   "Report completed and removed",
		})
		return
	}
	writeJSON(w, http.StatusOK, update.Report)
}

// NearbyReportsHandler lists open reports around a point: ?longitude=&latitude=&radius=
func (h *ReportHandler) NearbyReportsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	point, err := models.ParseLocation(q.Get("longitude"), q.Get("latitude"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var radius float64
	if raw := q.Get("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "radius must be a number of metres")
			return
		}
	}

	reports, err := h.Service.ListNearby(r.Context(), point, radius)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}
