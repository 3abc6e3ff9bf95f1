package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxBodyBytes caps the size of json request bodies
const maxBodyBytes = 1 << 20

const (
	msgInvalidJSON = "Invalid JSON in request body."
	msgServerError = "Something went wrong."
)

// decodeJSON reads the request body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "failed to decode request")
	}
	return nil
}

// objectIDVar parses the route variable key as an ObjectID
func objectIDVar(r *http.Request, key string) (primitive.ObjectID, error) {
	raw := mux.Vars(r)[key]
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(err, "failed to get objectID from hex %q", raw)
	}
	return id, nil
}

// intQuery parses an optional non-negative integer query parameter
func intQuery(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	if n < 0 {
		return 0, errors.Errorf("%s must not be negative", key)
	}
	return n, nil
}
