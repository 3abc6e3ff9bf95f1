package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/petbazaar/petbazaar-api/api"
	"github.com/petbazaar/petbazaar-api/config"
	"github.com/petbazaar/petbazaar-api/databases"
	"github.com/petbazaar/petbazaar-api/mailer"
	"github.com/petbazaar/petbazaar-api/models"
)

// PasswordCost is the bcrypt cost used for stored password hashes
const PasswordCost = 12

const minPasswordLength = 7

// bcrypt only reads the first 72 bytes of a password
const maxPasswordBytes = 72

const welcomeEmailTimeout = 30 * time.Second

// LoginLimiter tracks failed logins per email
type LoginLimiter interface {
	Blocked(ctx context.Context, email string) (bool, error)
	Failure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// Auth exported for testing purposes
type Auth struct {
	DB      databases.UserDatabase
	Guard   *api.Guard
	Limiter LoginLimiter
	Mailer  mailer.Mailer
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message   string             `json:"message"`
	User      models.SessionUser `json:"user"`
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginHandler verifies credentials and returns the user with a session token
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		config.ErrorStatus(msgInvalidJSON, http.StatusBadRequest, w, err)
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") || req.Password == "" {
		config.ErrorStatus("Invalid input. Email and password are required.", http.StatusBadRequest, w, errors.New("invalid login input"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if a.Limiter != nil {
		blocked, err := a.Limiter.Blocked(ctx, req.Email)
		if err != nil {
			zap.S().Warnw("failed to check login attempts", "error", err)
		}
		if blocked {
			config.ErrorStatus("Too many failed login attempts. Try again later.", http.StatusTooManyRequests, w, errors.Errorf("login blocked for %s", req.Email))
			return
		}
	}

	user, err := a.DB.FindByEmail(ctx, req.Email)
	if errors.Is(err, databases.ErrNotFound) {
		a.recordFailure(ctx, req.Email)
		config.ErrorStatus("Invalid credentials.", http.StatusUnauthorized, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("Something went wrong, could not process login.", http.StatusInternalServerError, w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), passwordBytes(req.Password)); err != nil {
		a.recordFailure(ctx, req.Email)
		config.ErrorStatus("Invalid credentials.", http.StatusUnauthorized, w, err)
		return
	}

	if a.Limiter != nil {
		if err := a.Limiter.Reset(ctx, req.Email); err != nil {
			zap.S().Warnw("failed to reset login attempts", "error", err)
		}
	}

	token, expires, err := a.Guard.Issue(r, *user)
	if err != nil {
		config.ErrorStatus("Something went wrong, could not process login.", http.StatusInternalServerError, w, err)
		return
	}

	config.WriteJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful!",
		User: models.SessionUser{
			ID:      user.ID.Hex(),
			Email:   user.Email,
			Name:    user.Name,
			IsAdmin: user.IsAdmin,
		},
		Token:     token,
		ExpiresAt: expires,
	})
}

// passwordBytes cuts a password down to what bcrypt hashes, so long
// passwords sign up and log in the same way.
func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func (a Auth) recordFailure(ctx context.Context, email string) {
	if a.Limiter == nil {
		return
	}
	if err := a.Limiter.Failure(ctx, email); err != nil {
		zap.S().Warnw("failed to record login attempt", "error", err)
	}
}

// SignupHandler creates a user with a hashed password
func (a Auth) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		config.ErrorStatus(msgInvalidJSON, http.StatusBadRequest, w, err)
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") ||
		len(strings.TrimSpace(req.Password)) < minPasswordLength ||
		strings.TrimSpace(req.Name) == "" {
		config.ErrorStatus("Invalid input. Password should be at least 7 characters long, and all fields are required.", http.StatusBadRequest, w, errors.New("invalid signup input"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := a.DB.FindByEmail(ctx, req.Email)
	if err == nil {
		config.ErrorStatus("User with this email already exists!", http.StatusConflict, w, errors.Errorf("duplicate email %s", req.Email))
		return
	}
	if !errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("Something went wrong, could not create user.", http.StatusInternalServerError, w, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword(passwordBytes(req.Password), PasswordCost)
	if err != nil {
		config.ErrorStatus("Something went wrong, could not create user.", http.StatusInternalServerError, w, err)
		return
	}

	id, err := a.DB.InsertOne(ctx, models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		IsAdmin:   true,
		CreatedAt: time.Now().UTC(),
	})
	if errors.Is(err, databases.ErrDuplicate) {
		config.ErrorStatus("User with this email already exists!", http.StatusConflict, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("Something went wrong, could not create user.", http.StatusInternalServerError, w, err)
		return
	}

	if a.Mailer != nil {
		go a.sendWelcome(req.Name, req.Email)
	}

	config.WriteJSON(w, http.StatusCreated, signupResponse{
		Message: "User created successfully!",
		UserID:  id.Hex(),
	})
}

func (a Auth) sendWelcome(name, email string) {
	ctx, cancel := context.WithTimeout(context.Background(), welcomeEmailTimeout)
	defer cancel()
	if err := a.Mailer.SendWelcome(ctx, name, email); err != nil {
		zap.S().Warnw("failed to send welcome email", "error", err)
	}
}
