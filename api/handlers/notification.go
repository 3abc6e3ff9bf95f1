package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/petbazaar/petbazaar-api/api"
	"github.com/petbazaar/petbazaar-api/config"
	"github.com/petbazaar/petbazaar-api/databases"
	"github.com/petbazaar/petbazaar-api/models"
)

// Notification exported for testing purposes
type Notification struct {
	DB databases.UserDatabase
}

type notificationRequest struct {
	Message    string `json:"message"`
	FromID     string `json:"fromid"`
	FromUserID string `json:"fromUserId"`
	PetID      string `json:"petId"`
}

type notificationResponse struct {
	Success      bool                `json:"success"`
	Notification models.Notification `json:"notification"`
}

// NotificationsHandler returns the notifications stored on a user
func (n Notification) NotificationsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidUserID, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	notifications, err := n.DB.Notifications(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgUserNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	config.WriteJSON(w, http.StatusOK, notifications)
}

// CreateNotificationHandler appends a notification to the recipient user
func (n Notification) CreateNotificationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidUserID, http.StatusBadRequest, w, err)
		return
	}

	var req notificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		config.ErrorStatus(msgInvalidJSON, http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		config.ErrorStatus("Notification message is required.", http.StatusBadRequest, w, errors.New("empty notification message"))
		return
	}
	fromID := req.FromID
	if fromID == "" {
		fromID = req.FromUserID
	}

	notification := models.NewNotification(req.Message, fromID, req.PetID, time.Now().UTC())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err = n.DB.AppendNotification(ctx, id, notification)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgUserNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("Failed to send notification.", http.StatusInternalServerError, w, err)
		return
	}

	config.WriteJSON(w, http.StatusOK, notificationResponse{Success: true, Notification: notification})
}
