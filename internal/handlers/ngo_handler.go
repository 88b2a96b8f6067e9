package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Dias221467/Animal_Rescue/internal/services"
	jwtutil "github.com/Dias221467/Animal_Rescue/pkg/jwt"
	log "github.com/sirupsen/logrus"
)

// NGOHandler handles NGO signup, login and profile settings.
type NGOHandler struct {
	Service     *services.NGOService
	JWTSecret   string
	TokenExpiry time.Duration
}

// NewNGOHandler creates a new instance of NGOHandler.
func NewNGOHandler(service *services.NGOService, jwtSecret string, tokenExpiry time.Duration) *NGOHandler {
	return &NGOHandler{
		Service:     service,
		JWTSecret:   jwtSecret,
		TokenExpiry: tokenExpiry,
	}
}

// RegisterNGOHandler handles NGO registration.
func (h *NGOHandler) RegisterNGOHandler(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterNGOInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.WithError(err).Warn("Failed to decode NGO registration request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	ngo, err := h.Service.RegisterNGO(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "NGO registered successfully",
		"ngo":     ngo,
	})
}

// LoginNGOHandler authenticates an NGO and issues a JWT.
func (h *NGOHandler) LoginNGOHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.WithError(err).Warn("Failed to decode login request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	ngo, err := h.Service.Authenticate(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := jwtutil.GenerateToken(ngo.ID.Hex(), ngo.Email, h.JWTSecret, h.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate JWT token")
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"ngo":   ngo,
	})
}

// GetSettingsHandler returns the calling NGO's profile.
func (h *NGOHandler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ngo, err := h.Service.GetNGO(r.Context(), ngoID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ngo)
}

// UpdateSettingsHandler replaces the calling NGO's editable profile fields.
func (h *NGOHandler) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var in services.NGOSettings
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	ngo, err := h.Service.UpdateSettings(r.Context(), ngoID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ngo)
}
