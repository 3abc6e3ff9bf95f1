package handlers

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/petbazaar/petbazaar-api/api"
	"github.com/petbazaar/petbazaar-api/config"
	"github.com/petbazaar/petbazaar-api/databases"
	"github.com/petbazaar/petbazaar-api/models"
)

const (
	msgInvalidUserID = "Invalid user ID format."
	msgUserNotFound  = "User not found."
)

// User exported for testing purposes
type User struct {
	DB  databases.UserDatabase
	PDB databases.PetDatabase
	CDB databases.ChatDatabase
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UsersHandler lists every user for the admin console
func (u User) UsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	users, err := u.DB.List(ctx)
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}

	resp := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		resp = append(resp, user.Summary())
	}
	config.WriteJSON(w, http.StatusOK, resp)
}

// UserHandler returns a user's public details and the pets they list
func (u User) UserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidUserID, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.FindByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgUserNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}

	pets, err := u.PDB.Find(ctx, id.Hex(), 0, 0)
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	if pets == nil {
		pets = []models.Pet{}
	}

	config.WriteJSON(w, http.StatusOK, models.UserWithPets{
		Name:  user.Name,
		Email: user.Email,
		Pets:  pets,
	})
}

// UpdateUserHandler changes a user's name and email
func (u User) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidUserID, http.StatusBadRequest, w, err)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		config.ErrorStatus(msgInvalidJSON, http.StatusBadRequest, w, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" {
		config.ErrorStatus("Name and email are required.", http.StatusBadRequest, w, errors.New("missing name or email"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.UpdateDetails(ctx, id, req.Name, req.Email)
	switch {
	case errors.Is(err, databases.ErrNotFound):
		config.ErrorStatus(msgUserNotFound, http.StatusNotFound, w, err)
		return
	case errors.Is(err, databases.ErrDuplicate):
		config.ErrorStatus("User with this email already exists!", http.StatusConflict, w, err)
		return
	case err != nil:
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}

	config.WriteJSON(w, http.StatusOK, user.Summary())
}

// DeleteUserHandler removes a user
func (u User) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidUserID, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err = u.DB.DeleteByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgUserNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("user deleted", "userId", id.Hex())
	config.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "User deleted successfully."})
}

// UserChatsHandler lists the chats a user takes part in
func (u User) UserChatsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidUserID, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	chats, err := u.CDB.FindByMember(ctx, id.Hex())
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	if chats == nil {
		chats = []models.Chat{}
	}
	config.WriteJSON(w, http.StatusOK, chats)
}
