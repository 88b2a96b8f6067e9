package handlers

import (
	"net/http"

	"github.com/Dias221467/Animal_Rescue/internal/services"
	"github.com/Dias221467/Animal_Rescue/pkg/logger"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// GET /api/ngo/notifications?unread=true
func (h *NotificationHandler) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	notifications, err := h.Service.GetNGONotifications(r.Context(), ngoID, unreadOnly)
	if err != nil {
		logger.Log.Errorf("Failed to fetch notifications: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notifications)
}

// PUT /api/ngo/notifications/{id}/read
func (h *NotificationHandler) MarkAsReadHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := callerNGOID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notifID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	if err := h.Service.MarkNotificationAsRead(r.Context(), notifID, ngoID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
