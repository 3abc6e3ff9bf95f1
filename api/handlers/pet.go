package handlers

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petbazaar/petbazaar-api/api"
	"github.com/petbazaar/petbazaar-api/config"
	"github.com/petbazaar/petbazaar-api/databases"
	"github.com/petbazaar/petbazaar-api/models"
)

const (
	msgInvalidPetID = "Invalid pet ID format."
	msgPetNotFound  = "Pet not found."
)

// Pet exported for testing purposes
type Pet struct {
	DB databases.PetDatabase
}

type petRequest struct {
	Name        string  `json:"name"`
	Breed       string  `json:"breed"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	ListingType string  `json:"listingType"`
	Description string  `json:"description"`
	OwnerID     string  `json:"ownerId"`
}

type createPetResponse struct {
	Message string `json:"message"`
	PetID   string `json:"petId"`
}

// invalidReason returns the client message for the first invalid editable
// field, or "" when the request is valid
func (p petRequest) invalidReason() string {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return "Pet name is required."
	case !models.ValidListingType(p.ListingType):
		return "Listing type must be Sale or Adoption."
	case p.Price < 0:
		return "Price must not be negative."
	}
	return ""
}

func (p petRequest) toModel() models.Pet {
	return models.Pet{
		Name:        strings.TrimSpace(p.Name),
		Breed:       p.Breed,
		Image:       p.Image,
		Price:       p.Price,
		ListingType: p.ListingType,
		Description: p.Description,
		OwnerID:     p.OwnerID,
	}
}

// PetsHandler lists pets, optionally for one owner and paginated
func (p Pet) PetsHandler(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	if ownerID != "" && !primitive.IsValidObjectID(ownerID) {
		config.ErrorStatus("Invalid owner ID format.", http.StatusBadRequest, w, errors.Errorf("invalid ownerId %q", ownerID))
		return
	}
	limit, err := intQuery(r, "limit")
	if err != nil {
		config.ErrorStatus("Invalid limit.", http.StatusBadRequest, w, err)
		return
	}
	page, err := intQuery(r, "page")
	if err != nil {
		config.ErrorStatus("Invalid page.", http.StatusBadRequest, w, err)
		return
	}
	if limit > 0 && page > math.MaxInt/limit {
		config.ErrorStatus("Invalid page.", http.StatusBadRequest, w, errors.Errorf("page %d is out of range for limit %d", page, limit))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	pets, err := p.DB.Find(ctx, ownerID, limit, page)
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	if pets == nil {
		pets = []models.Pet{}
	}
	config.WriteJSON(w, http.StatusOK, pets)
}

// CreatePetHandler lists a new pet
func (p Pet) CreatePetHandler(w http.ResponseWriter, r *http.Request) {
	var req petRequest
	if err := decodeJSON(w, r, &req); err != nil {
		config.ErrorStatus(msgInvalidJSON, http.StatusBadRequest, w, err)
		return
	}
	if reason := req.invalidReason(); reason != "" {
		config.ErrorStatus(reason, http.StatusBadRequest, w, errors.New("invalid pet"))
		return
	}
	if !primitive.IsValidObjectID(req.OwnerID) {
		config.ErrorStatus("Invalid owner ID format.", http.StatusBadRequest, w, errors.Errorf("invalid ownerId %q", req.OwnerID))
		return
	}

	pet := req.toModel()
	now := time.Now().UTC()
	pet.CreatedAt = now
	pet.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := p.DB.InsertOne(ctx, pet)
	if err != nil {
		config.ErrorStatus("Something went wrong, could not create pet.", http.StatusInternalServerError, w, err)
		return
	}

	config.WriteJSON(w, http.StatusCreated, createPetResponse{Message: "Pet created successfully!", PetID: id.Hex()})
}

// PetHandler returns a single pet
func (p Pet) PetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidPetID, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	pet, err := p.DB.FindByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgPetNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	config.WriteJSON(w, http.StatusOK, pet)
}

// UpdatePetHandler replaces the editable fields of a pet. The owner is kept.
func (p Pet) UpdatePetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidPetID, http.StatusBadRequest, w, err)
		return
	}

	var req petRequest
	if err := decodeJSON(w, r, &req); err != nil {
		config.ErrorStatus(msgInvalidJSON, http.StatusBadRequest, w, err)
		return
	}
	if reason := req.invalidReason(); reason != "" {
		config.ErrorStatus(reason, http.StatusBadRequest, w, errors.New("invalid pet"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	update := req.toModel()
	update.UpdatedAt = time.Now().UTC()

	pet, err := p.DB.Replace(ctx, id, update)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgPetNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	config.WriteJSON(w, http.StatusOK, pet)
}

// DeletePetHandler removes a pet listing
func (p Pet) DeletePetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		config.ErrorStatus(msgInvalidPetID, http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err = p.DB.DeleteByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus(msgPetNotFound, http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}
	config.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Pet deleted successfully."})
}
