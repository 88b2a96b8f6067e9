package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/Dias221467/Animal_Rescue/internal/services"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationHandler handles public adoption and volunteer forms and their NGO dashboards.
type ApplicationHandler struct {
	Service *services.ApplicationService
}

// NewApplicationHandler creates a new instance of ApplicationHandler.
func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Service: service}
}

type adoptionRequest struct {
	PetID                 string `json:"petId"`
	PetName               string `json:"petName"`
	PetBreed              string `json:"petBreed"`
	FullName              string `json:"fullName"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	Address               string `json:"address"`
	HousingType           string `json:"housingType"`
	HasYard               string `json:"hasYard"`
	HadPets               string `json:"hadPets"`
	PetExperience         string `json:"petExperience"`
	HasCurrentPets        string `json:"hasCurrentPets"`
	CurrentPets           string `json:"currentPets"`
	HoursAlone            int    `json:"hoursAlone"`
	AdoptionReason        string `json:"adoptionReason"`
	HasBreedingExperience string `json:"hasBreedingExperience"`
	BreedingExperience    string `json:"breedingExperience"`
	NGOID                 string `json:"ngoId"`
}

type volunteerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Reason   string `json:"reason"`
	NGOID    string `json:"ngoId"`
}

// parseOptionalID leaves a blank id as NilObjectID so the service reports it as missing.
func parseOptionalID(hex string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NilObjectID, nil
	}
	return primitive.ObjectIDFromHex(hex)
}

// SubmitAdoptionHandler handles POST /api/adopt.
func (h *ApplicationHandler) SubmitAdoptionHandler(w http.ResponseWriter, r *http.Request) {
	var req adoptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode adoption request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	ngoID, err := parseOptionalID(req.NGOID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ngoId")
		return
	}
	petID, err := parseOptionalID(req.PetID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid petId")
		return
	}

	created, err := h.Service.SubmitAdoption(r.Context(), &models.AdoptionApplication{
		PetID:                 petID,
		PetName:               req.PetName,
		PetBreed:              req.PetBreed,
		FullName:              req.FullName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Address:               req.Address,
		HousingType:           req.HousingType,
		HasYard:               req.HasYard,
		HadPets:               req.HadPets,
		PetExperience:         req.PetExperience,
		HasCurrentPets:        req.HasCurrentPets,
		CurrentPets:           req.CurrentPets,
		HoursAlone:            req.HoursAlone,
		AdoptionReason:        req.AdoptionReason,
		HasBreedingExperience: req.HasBreedingExperience,
		BreedingExperience:    req.BreedingExperience,
		NGOID:                 ngoID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// SubmitVolunteerHandler handles POST /api/volunteer.
func (h *ApplicationHandler) SubmitVolunteerHandler(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode volunteer request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	ngoID, err := parseOptionalID(req.NGOID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ngoId")
		return
	}

	created, err := h.Service.SubmitVolunteer(r.Context(), &models.Volunteer{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Reason:   req.Reason,
		NGOID:    ngoID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetAdoptionsHandler lists adoption applications sent to the calling NGO.
func (h *ApplicationHandler) GetAdoptionsHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	apps, err := h.Service.GetAdoptions(r.Context(), ngoID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

// GetVolunteersHandler lists volunteer applications sent to the calling NGO.
func (h *ApplicationHandler) GetVolunteersHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	volunteers, err := h.Service.GetVolunteers(r.Context(), ngoID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, volunteers)
}

type applicationStatusRequest struct {
	Status string `json:"status"`
}

// UpdateAdoptionStatusHandler handles PUT /api/ngo/adoptions/{id}.
func (h *ApplicationHandler) UpdateAdoptionStatusHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req applicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	app, err := h.Service.UpdateAdoptionStatus(r.Context(), mux.Vars(r)["id"], ngoID, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// UpdateVolunteerStatusHandler handles PUT /api/ngo/volunteers/{id}.
func (h *ApplicationHandler) UpdateVolunteerStatusHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req applicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	v, err := h.Service.UpdateVolunteerStatus(r.Context(), mux.Vars(r)["id"], ngoID, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
