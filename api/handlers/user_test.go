package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petbazaar/petbazaar-api/api/handlers"
	"github.com/petbazaar/petbazaar-api/databases"
	"github.com/petbazaar/petbazaar-api/databases/mocks"
	"github.com/petbazaar/petbazaar-api/models"
)

func withID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestUser_UsersHandler(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.UserDatabase{}
	db.On("List", mock.Anything).Return([]models.User{{ID: id, Name: "A", Email: "a@b.com", Password: "hash"}}, nil)
	u := handlers.User{DB: db}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UsersHandler).ServeHTTP(rr, httptest.NewRequest("GET", "/api/users", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"`+id.Hex()+`","name":"A","email":"a@b.com"}]`, rr.Body.String())
}

func TestUser_UsersHandlerEmpty(t *testing.T) {
	db := &mocks.UserDatabase{}
	db.On("List", mock.Anything).Return(nil, nil)
	u := handlers.User{DB: db}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UsersHandler).ServeHTTP(rr, httptest.NewRequest("GET", "/api/users", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestUser_UserHandlerInvalidID(t *testing.T) {
	u := handlers.User{DB: &mocks.UserDatabase{}}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserHandler).ServeHTTP(rr, withID(httptest.NewRequest("GET", "/api/users/asdf", nil), "asdf"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid user ID format."}`, rr.Body.String())
}

func TestUser_UserHandlerNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.UserDatabase{}
	db.On("FindByID", mock.Anything, id).Return(nil, errors.Wrap(databases.ErrNotFound, "find"))
	u := handlers.User{DB: db}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserHandler).ServeHTTP(rr, withID(httptest.NewRequest("GET", "/", nil), id.Hex()))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUser_UserHandlerWithPets(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.UserDatabase{}
	db.On("FindByID", mock.Anything, id).Return(&models.User{ID: id, Name: "A", Email: "a@b.com"}, nil)
	pdb := &mocks.PetDatabase{}
	pdb.On("Find", mock.Anything, id.Hex(), 0, 0).Return([]models.Pet{{Name: "Rex", OwnerID: id.Hex(), ListingType: models.ListingTypeSale}}, nil)
	u := handlers.User{DB: db, PDB: pdb}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserHandler).ServeHTTP(rr, withID(httptest.NewRequest("GET", "/", nil), id.Hex()))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "A", body["name"])
	assert.Equal(t, "a@b.com", body["email"])
	assert.Len(t, body["pets"], 1)
	assert.NotContains(t, body, "id")
}

func TestUser_UpdateUserHandlerMissingFields(t *testing.T) {
	db := &mocks.UserDatabase{}
	u := handlers.User{DB: db}

	rr := httptest.NewRecorder()
	req := withID(jsonRequest(t, "PUT", "/", map[string]string{"name": "A"}), primitive.NewObjectID().Hex())
	http.HandlerFunc(u.UpdateUserHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	db.AssertNotCalled(t, "UpdateDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUser_UpdateUserHandler(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.UserDatabase{}
	db.On("UpdateDetails", mock.Anything, id, "B", "b@c.com").Return(&models.User{ID: id, Name: "B", Email: "b@c.com"}, nil)
	u := handlers.User{DB: db}

	rr := httptest.NewRecorder()
	req := withID(jsonRequest(t, "PUT", "/", map[string]string{"name": "B", "email": "b@c.com"}), id.Hex())
	http.HandlerFunc(u.UpdateUserHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"`+id.Hex()+`","name":"B","email":"b@c.com"}`, rr.Body.String())
}

func TestUser_UpdateUserHandlerErrors(t *testing.T) {
	cases := map[error]int{
		databases.ErrNotFound:  http.StatusNotFound,
		databases.ErrDuplicate: http.StatusConflict,
		errors.New("boom"):     http.StatusInternalServerError,
	}
	for dbErr, want := range cases {
		id := primitive.NewObjectID()
		db := &mocks.UserDatabase{}
		db.On("UpdateDetails", mock.Anything, id, "B", "b@c.com").Return(nil, errors.Wrap(dbErr, "update"))
		u := handlers.User{DB: db}

		rr := httptest.NewRecorder()
		req := withID(jsonRequest(t, "PUT", "/", map[string]string{"name": "B", "email": "b@c.com"}), id.Hex())
		http.HandlerFunc(u.UpdateUserHandler).ServeHTTP(rr, req)

		assert.Equal(t, want, rr.Code, dbErr.Error())
	}
}

func TestUser_DeleteUserHandler(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.UserDatabase{}
	db.On("DeleteByID", mock.Anything, id).Return(nil)
	u := handlers.User{DB: db}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.DeleteUserHandler).ServeHTTP(rr, withID(httptest.NewRequest("DELETE", "/", nil), id.Hex()))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully."}`, rr.Body.String())
}

func TestUser_DeleteUserHandlerNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.UserDatabase{}
	db.On("DeleteByID", mock.Anything, id).Return(databases.ErrNotFound)
	u := handlers.User{DB: db}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.DeleteUserHandler).ServeHTTP(rr, withID(httptest.NewRequest("DELETE", "/", nil), id.Hex()))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUser_UserChatsHandler(t *testing.T) {
	id := primitive.NewObjectID()
	cdb := &mocks.ChatDatabase{}
	cdb.On("FindByMember", mock.Anything, id.Hex()).Return(nil, nil)
	u := handlers.User{CDB: cdb}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserChatsHandler).ServeHTTP(rr, withID(httptest.NewRequest("GET", "/", nil), id.Hex()))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
