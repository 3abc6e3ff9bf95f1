package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petbazaar/petbazaar-api/api"
	"github.com/petbazaar/petbazaar-api/api/handlers"
	"github.com/petbazaar/petbazaar-api/databases"
	"github.com/petbazaar/petbazaar-api/databases/mocks"
	"github.com/petbazaar/petbazaar-api/models"
)

var chatTriple = map[string]string{"buyerId": "buyer", "sellerId": "seller", "petId": "pet"}

func TestChat_GetOrCreateChatHandlerMissingFields(t *testing.T) {
	db := &mocks.ChatDatabase{}
	c := handlers.Chat{DB: db}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.GetOrCreateChatHandler).ServeHTTP(rr, jsonRequest(t, "POST", "/api/chats", map[string]string{"buyerId": "buyer"}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Missing required fields: buyerId, sellerId, and petId are required.", decodeBody(t, rr)["message"])
}

func TestChat_GetOrCreateChatHandlerCreatesThenFinds(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.ChatDatabase{}
	db.On("FindByParticipants", mock.Anything, "buyer", "seller", "pet").Return(nil, databases.ErrNotFound).Once()
	db.On("InsertOne", mock.Anything, mock.MatchedBy(func(c models.Chat) bool {
		return c.BuyerID == "buyer" && len(c.MemberIDs) == 2 && c.Messages != nil && len(c.Messages) == 0
	})).Return(id, nil).Once()
	db.On("FindByParticipants", mock.Anything, "buyer", "seller", "pet").Return(&models.Chat{ID: id}, nil).Once()
	c := handlers.Chat{DB: db}

	first := httptest.NewRecorder()
	http.HandlerFunc(c.GetOrCreateChatHandler).ServeHTTP(first, jsonRequest(t, "POST", "/api/chats", chatTriple))
	second := httptest.NewRecorder()
	http.HandlerFunc(c.GetOrCreateChatHandler).ServeHTTP(second, jsonRequest(t, "POST", "/api/chats", chatTriple))

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, id.Hex(), decodeBody(t, first)["chatId"])
	assert.Equal(t, id.Hex(), decodeBody(t, second)["chatId"])
	db.AssertExpectations(t)
}

func TestChat_GetOrCreateChatHandlerDatabaseError(t *testing.T) {
	db := &mocks.ChatDatabase{}
	db.On("FindByParticipants", mock.Anything, "buyer", "seller", "pet").Return(nil, errors.New("boom"))
	c := handlers.Chat{DB: db}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.GetOrCreateChatHandler).ServeHTTP(rr, jsonRequest(t, "POST", "/api/chats", chatTriple))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	db.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestChat_ChatHandler(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.ChatDatabase{}
	db.On("FindByID", mock.Anything, id).Return(&models.Chat{ID: id, BuyerID: "buyer"}, nil)
	c := handlers.Chat{DB: db}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.ChatHandler).ServeHTTP(rr, withID(httptest.NewRequest("GET", "/", nil), id.Hex()))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, id.Hex(), body["id"])
	assert.Equal(t, []interface{}{}, body["messages"])
}

func TestChat_ChatHandlerErrors(t *testing.T) {
	c := handlers.Chat{DB: &mocks.ChatDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.ChatHandler).ServeHTTP(rr, withID(httptest.NewRequest("GET", "/", nil), "bad"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	id := primitive.NewObjectID()
	db := &mocks.ChatDatabase{}
	db.On("FindByID", mock.Anything, id).Return(nil, databases.ErrNotFound)
	c = handlers.Chat{DB: db}
	rr = httptest.NewRecorder()
	http.HandlerFunc(c.ChatHandler).ServeHTTP(rr, withID(httptest.NewRequest("GET", "/", nil), id.Hex()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestChat_PostChatMessageHandlerDefaultsSender(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.ChatDatabase{}
	db.On("AppendMessage", mock.Anything, id, mock.MatchedBy(func(m models.ChatMessage) bool {
		return m.Sender == "You" && m.Text == "hello"
	})).Return(nil)
	c := handlers.Chat{DB: db}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.PostChatMessageHandler).ServeHTTP(rr, withID(jsonRequest(t, "POST", "/", map[string]string{"text": "hello"}), id.Hex()))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, decodeBody(t, rr)["success"])
	db.AssertExpectations(t)
}

func TestChat_PostChatMessageHandlerSessionSender(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.ChatDatabase{}
	db.On("AppendMessage", mock.Anything, id, mock.MatchedBy(func(m models.ChatMessage) bool {
		return m.Sender == "Mia"
	})).Return(nil)
	c := handlers.Chat{DB: db}

	req := withID(jsonRequest(t, "POST", "/", map[string]string{"text": "hello"}), id.Hex())
	req = req.WithContext(api.WithSession(req.Context(), api.Session{UserID: "u1", Name: "Mia"}))
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.PostChatMessageHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	db.AssertExpectations(t)
}

func TestChat_PostChatMessageHandlerValidation(t *testing.T) {
	db := &mocks.ChatDatabase{}
	c := handlers.Chat{DB: db}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.PostChatMessageHandler).ServeHTTP(rr, withID(jsonRequest(t, "POST", "/", map[string]string{"text": " "}), primitive.NewObjectID().Hex()))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	id := primitive.NewObjectID()
	db.On("AppendMessage", mock.Anything, id, mock.Anything).Return(databases.ErrNotFound)
	rr = httptest.NewRecorder()
	http.HandlerFunc(c.PostChatMessageHandler).ServeHTTP(rr, withID(jsonRequest(t, "POST", "/", map[string]string{"text": "hi"}), id.Hex()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
