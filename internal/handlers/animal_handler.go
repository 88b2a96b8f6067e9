package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dias221467/Animal_Rescue/internal/services"
	"github.com/Dias221467/Animal_Rescue/pkg/upload"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// AnimalHandler serves the adoption catalog.
type AnimalHandler struct {
	Service        *services.AnimalService
	Photos         *upload.PhotoStore
	MaxUploadBytes int64
}

// NewAnimalHandler creates a new instance of AnimalHandler.
func NewAnimalHandler(service *services.AnimalService, photos *upload.PhotoStore, maxUploadBytes int64) *AnimalHandler {
	return &AnimalHandler{
		Service:        service,
		Photos:         photos,
		MaxUploadBytes: maxUploadBytes,
	}
}

// ListAvailableHandler handles GET /api/animals.
func (h *AnimalHandler) ListAvailableHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Service.ListAvailable(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// GetNGOAnimalsHandler lists the calling NGO's catalog.
func (h *AnimalHandler) GetNGOAnimalsHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animals, err := h.Service.GetNGOAnimals(r.Context(), ngoID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, animals)
}

// AddAnimalHandler takes multipart fields name, breed, age, status and a required "photo" file.
func (h *AnimalHandler) AddAnimalHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "File too big or invalid form")
		return
	}

	in := services.AnimalInput{
		Name:   r.FormValue("name"),
		Breed:  r.FormValue("breed"),
		Status: r.FormValue("status"),
	}
	if raw := strings.TrimSpace(r.FormValue("age")); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "age must be a whole number")
			return
		}
		in.Age = age
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "photo is required")
		return
	}
	defer file.Close()

	in.Image, err = h.Photos.Save(file)
	if errors.Is(err, upload.ErrUnsupportedType) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to store animal photo")
		writeError(w, http.StatusInternalServerError, "Failed to store photo")
		return
	}

	animal, err := h.Service.AddAnimal(r.Context(), ngoID, in)
	if err != nil {
		h.dropPhoto(in.Image)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, animal)
}

// DeleteAnimalHandler handles DELETE /api/ngo/animals/{id}. Only the owning NGO may delete.
func (h *AnimalHandler) DeleteAnimalHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animal, err := h.Service.DeleteAnimal(r.Context(), mux.Vars(r)["id"], ngoID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.dropPhoto(animal.Image)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Animal deleted successfully"})
}

func (h *AnimalHandler) dropPhoto(ref string) {
	if err := h.Photos.Remove(ref); err != nil {
		logrus.WithError(err).WithField("photo", ref).Warn("Failed to remove animal photo")
	}
}
