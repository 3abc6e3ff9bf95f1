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

const (
	msgInvalidChatID = "Invalid chat ID format."
	msgChatNotFound  = "Chat not found."
	defaultSender    = "You"
)

// Chat exported for testing purposes
type Chat struct {
	DB databases.ChatDatabase
}

type chatRequest struct {
	BuyerID  string `json:"buyerId"`
	SellerID string `json:"sellerId"`
	PetID    string `json:"petId"`
}

type chatIDResponse struct {
	ChatID string `json:"chatId"`
}

type chatMessageRequest struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type chatMessageResponse struct {
	Success bool               `json:"success"`
	Message models.ChatMessage `json:"message"`
}

// GetOrCreateChatHandler returns the chat of a buyer, seller and pet, creating
// it on first contact. Two concurrent first calls may both create a chat.
func (c Chat) GetOrCreateChatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		config.ErrorStatus(msgInvalidJSON, http.StatusBadRequest, w, err)
		return
	}
	if req.BuyerID == "" || req.SellerID == "" || req.PetID == "" {
		config.ErrorStatus("Missing required fields: buyerId, sellerId, and petId are required.", http.StatusBadRequest, w, errors.New("missing chat participants"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := c.DB.FindByParticipants(ctx, req.BuyerID, req.SellerID, req.PetID)
	if err == nil {
		config.WriteJSON(w, http.StatusOK, chatIDResponse{ChatID: existing.ID.Hex()})
		return
	}
	if !errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("Internal Server Error", http.StatusInternalServerError, w, err)
		return
	}

	id, err := c.DB.InsertOne(ctx, models.Chat{
		BuyerID:   req.BuyerID,
		SellerID:  req.SellerID,
		PetID:     req.PetID,
		MemberIDs: []string{req.BuyerID, req.SellerID},
		Messages:  []models.ChatMessage{},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		config.ErrorStatus("Internal Server Error", http.StatusInternalServerError, w, err)
		return
	}
	config.WriteJSON(w, http.StatusCreated, chatIDResponse{ChatID: id.Hex()})
}

// ChatHandler returns a chat with its messages
func (c Chat) ChatHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidChatID, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	chat, err := c.DB.FindByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgChatNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	if chat.Messages == nil {
		chat.Messages = []models.ChatMessage{}
	}
	config.WriteJSON(w, http.StatusOK, chat)
}

// PostChatMessageHandler appends a message to a chat. The sender is not
// checked against the chat members.
func (c Chat) PostChatMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidChatID, http.StatusBadRequest, w, err)
		return
	}

	var req chatMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		config.ErrorStatus(msgInvalidJSON, http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		config.ErrorStatus("Message text is required.", http.StatusBadRequest, w, errors.New("empty chat message"))
		return
	}

	msg := models.ChatMessage{
		Sender:    senderName(r, req.Sender),
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err = c.DB.AppendMessage(ctx, id, msg)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgChatNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	config.WriteJSON(w, http.StatusOK, chatMessageResponse{Success: true, Message: msg})
}

// senderName picks the display name of a message author
func senderName(r *http.Request, given string) string {
	if s := strings.TrimSpace(given); s != "" {
		return s
	}
	if s, ok := api.SessionFromContext(r.Context()); ok && s.Name != "" {
		return s.Name
	}
	return defaultSender
}
