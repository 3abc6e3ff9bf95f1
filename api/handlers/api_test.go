package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petbazaar/petbazaar-api/api"
	"github.com/petbazaar/petbazaar-api/config"
	"github.com/petbazaar/petbazaar-api/databases/mocks"
	"github.com/petbazaar/petbazaar-api/models"
)

func testConfig() config.Config {
	return config.Config{URL: "mongodb://127.0.0.1:27017", DatabaseName: "test", TokenTTL: time.Hour}
}

func TestHealthCheckHandler(t *testing.T) {
	a := App{Config: testConfig()}
	r := a.New()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"alive":true}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(api.RequestIDHeader))
}

func TestApp_MissingDatabaseConfiguration(t *testing.T) {
	a := App{Config: config.Config{TokenTTL: time.Hour}}
	r := a.New()

	for _, target := range []struct{ method, path string }{
		{"GET", "/api/users"},
		{"POST", "/api/auth/login"},
		{"GET", "/api/users/" + primitive.NewObjectID().Hex() + "/notifications"},
		{"POST", "/api/chats"},
		{"GET", "/api/groups"},
	} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(target.method, target.path, strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code, target.path)
		assert.JSONEq(t, `{"message":"Server configuration error."}`, rr.Body.String())
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestApp_NotificationRouteUsesPush(t *testing.T) {
	id := primitive.NewObjectID()
	coll := &mocks.CollectionHelper{}
	coll.On("UpdateOne", mock.Anything, bson.M{"_id": id}, mock.MatchedBy(func(update bson.M) bool {
		push, ok := update["$push"].(bson.M)
		if !ok {
			return false
		}
		n, ok := push["notifications"].(models.Notification)
		return ok && n.Message == "hello" && !n.IsRead
	})).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	db := &mocks.DatabaseHelper{}
	db.On("Collection", "users").Return(coll)

	a := App{Config: testConfig(), dbHelper: db}
	r := a.New()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/users/"+id.Hex()+"/notifications", strings.NewReader(`{"message":"hello","fromid":"buyer","petId":"pet"}`))
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	coll.AssertExpectations(t)
}

func TestApp_AdminGuard(t *testing.T) {
	conf := testConfig()
	conf.RequireAdminSession = true
	db := &mocks.DatabaseHelper{}

	a := App{Config: conf, dbHelper: db}
	r := a.New()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/api/users", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	token, _, err := a.guard.Issue(httptest.NewRequest("POST", "/", nil), models.User{ID: primitive.NewObjectID(), Name: "B"})
	assert.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/users/"+primitive.NewObjectID().Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	db.AssertNotCalled(t, "Collection", mock.Anything)
}

func TestApp_Logout(t *testing.T) {
	a := App{Config: testConfig(), dbHelper: &mocks.DatabaseHelper{}}
	r := a.New()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("DELETE", "/api/auth/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	token, _, err := a.guard.Issue(httptest.NewRequest("POST", "/", nil), models.User{ID: primitive.NewObjectID(), Name: "B"})
	assert.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	_, err = a.guard.Authenticate(req)
	assert.Error(t, err)
}

func TestApp_UnknownRoute(t *testing.T) {
	a := App{Config: testConfig()}
	r := a.New()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
