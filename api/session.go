package api

import (
	"context"
	"crypto/rand"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/petbazaar/petbazaar-api/config"
	"github.com/petbazaar/petbazaar-api/models"
)

const adminGroup = "admin"

// ErrRevokedToken is returned for a token that was logged out
var ErrRevokedToken = errors.New("token has been revoked")

// Session is the authenticated caller of a request
type Session struct {
	UserID  string
	Name    string
	IsAdmin bool
	Token   string
}

type sessionContextKey struct{}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// SessionFromContext returns the session resolved for the request, if any
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(Session)
	return s, ok
}

type tokenClaims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Guard issues bearer tokens at login and resolves them into sessions.
// Tokens are signed JWTs kept in a go-guardian token cache; a token missing
// from the cache, e.g. after a restart, is accepted again when its signature
// and expiry check out and it was not revoked.
type Guard struct {
	secret        []byte
	ttl           time.Duration
	authenticator auth.Authenticator
	strategy      auth.Strategy

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewGuard sets up the go-guardian token strategy. An empty secret gets a
// random one, so tokens do not outlive the process.
func NewGuard(secret string, ttl time.Duration) *Guard {
	g := &Guard{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: make(map[string]time.Time),
	}
	if len(g.secret) == 0 {
		zap.S().Warn("JWT_SECRET is not set, sessions will not survive a restart")
		g.secret = make([]byte, 32)
		_, _ = rand.Read(g.secret)
	}

	cache := store.NewFIFO(context.Background(), ttl)
	g.strategy = bearer.New(g.verifyToken, cache)
	g.authenticator = auth.New()
	g.authenticator.EnableStrategy(bearer.CachedStrategyKey, g.strategy)
	return g
}

// Issue signs a token for user and registers it with the token cache
func (g *Guard) Issue(r *http.Request, user models.User) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(g.ttl)
	claims := tokenClaims{
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	auth.Append(g.strategy, signed, infoFromClaims(claims), r)
	return signed, expires, nil
}

// Revoke logs a token out
func (g *Guard) Revoke(r *http.Request, token string) {
	g.mu.Lock()
	now := time.Now()
	for t, exp := range g.revoked {
		if now.After(exp) {
			delete(g.revoked, t)
		}
	}
	g.revoked[token] = now.Add(g.ttl)
	g.mu.Unlock()

	auth.Revoke(g.strategy, token, r)
}

// Authenticate resolves the request's bearer token into a session
func (g *Guard) Authenticate(r *http.Request) (Session, error) {
	info, err := g.authenticator.Authenticate(r)
	if err != nil {
		return Session{}, err
	}
	s := Session{
		UserID: info.ID(),
		Name:   info.UserName(),
		Token:  bearerToken(r),
	}
	for _, group := range info.Groups() {
		if group == adminGroup {
			s.IsAdmin = true
		}
	}
	if g.isRevoked(s.Token) {
		return Session{}, ErrRevokedToken
	}
	return s, nil
}

func (g *Guard) isRevoked(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.revoked[token]
	return ok
}

// verifyToken is consulted by the bearer strategy on a cache miss
func (g *Guard) verifyToken(ctx context.Context, r *http.Request, token string) (auth.Info, error) {
	if g.isRevoked(token) {
		return nil, ErrRevokedToken
	}
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	return infoFromClaims(*claims), nil
}

func infoFromClaims(c tokenClaims) auth.Info {
	var groups []string
	if c.IsAdmin {
		groups = []string{adminGroup}
	}
	return auth.NewDefaultUser(c.Name, c.Subject, groups, nil)
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) > len(prefix) && h[:len(prefix)] == prefix {
		return h[len(prefix):]
	}
	return ""
}

// SessionMiddleware attaches the caller's session to the request context when
// a valid bearer token is present. Requests without one pass through.
func (g *Guard) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if bearerToken(r) == "" {
			next.ServeHTTP(w, r)
			return
		}
		s, err := g.Authenticate(r)
		if err != nil {
			zap.S().Debugw("ignoring invalid bearer token", "url", r.URL, "error", err)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

// RequireSession rejects requests without a session
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			config.ErrorStatus("Unauthorized.", http.StatusUnauthorized, w, errors.New("no session"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose session is missing or not an admin
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFromContext(r.Context())
		if !ok {
			config.ErrorStatus("Unauthorized.", http.StatusUnauthorized, w, errors.New("no session"))
			return
		}
		if !s.IsAdmin {
			config.ErrorStatus("Forbidden.", http.StatusForbidden, w, errors.Errorf("user %s is not an admin", s.UserID))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LogoutHandler revokes the caller's token
func (g *Guard) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := SessionFromContext(r.Context())
	if !ok {
		config.ErrorStatus("Unauthorized.", http.StatusUnauthorized, w, errors.New("no session"))
		return
	}
	g.Revoke(r, s.Token)
	config.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Logged out."})
}
