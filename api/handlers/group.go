package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/petbazaar/petbazaar-api/api"
	"github.com/petbazaar/petbazaar-api/config"
	"github.com/petbazaar/petbazaar-api/databases"
	"github.com/petbazaar/petbazaar-api/models"
)

const (
	msgInvalidGroupID = "Invalid group ID format"
	msgGroupNotFound  = "Group not found"
)

// Group exported for testing purposes
type Group struct {
	DB  databases.GroupDatabase
	MDB databases.MessageDatabase
}

type groupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type createGroupResponse struct {
	Message string `json:"message"`
	GroupID string `json:"groupId"`
}

type groupMessageRequest struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// CreateGroupHandler creates a discussion group
func (g Group) CreateGroupHandler(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		config.ErrorStatus(msgInvalidJSON, http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		config.ErrorStatus("Group name is required.", http.StatusBadRequest, w, errors.New("empty group name"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := g.DB.InsertOne(ctx, models.Group{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	config.WriteJSON(w, http.StatusCreated, createGroupResponse{Message: "Group created successfully", GroupID: id.Hex()})
}

// GroupsHandler lists groups, newest first
func (g Group) GroupsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	groups, err := g.DB.List(ctx)
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	if groups == nil {
		groups = []models.Group{}
	}
	config.WriteJSON(w, http.StatusOK, groups)
}

// GroupHandler returns a group and its messages, oldest first
func (g Group) GroupHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidGroupID, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	group, err := g.DB.FindByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgGroupNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}

	messages, err := g.MDB.FindByGroup(ctx, id)
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	config.WriteJSON(w, http.StatusOK, models.GroupWithMessages{Group: *group, Messages: messages})
}

// DeleteGroupHandler removes a group and then every message posted to it
func (g Group) DeleteGroupHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidGroupID, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err = g.DB.DeleteByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("Group not found or already deleted", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}

	removed, err := g.MDB.DeleteByGroup(ctx, id)
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("group deleted", "groupId", id.Hex(), "messages", removed)
	config.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Group and associated messages deleted successfully"})
}

// PostGroupMessageHandler adds a message to a group
func (g Group) PostGroupMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidGroupID, http.StatusBadRequest, w, err)
		return
	}

	var req groupMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		config.ErrorStatus(msgInvalidJSON, http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		config.ErrorStatus("Message text is required.", http.StatusBadRequest, w, errors.New("empty group message"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := g.DB.FindByID(ctx, id); err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus(msgGroupNotFound, http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}

	msg := models.Message{
		GroupID:   id,
		Sender:    senderName(r, req.Sender),
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}
	msgID, err := g.MDB.InsertOne(ctx, msg)
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	msg.ID = msgID
	config.WriteJSON(w, http.StatusCreated, msg)
}
