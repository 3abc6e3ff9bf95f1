package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/petbazaar/petbazaar-api/api"
	"github.com/petbazaar/petbazaar-api/api/scheduler"
	"github.com/petbazaar/petbazaar-api/cache"
	"github.com/petbazaar/petbazaar-api/config"
	"github.com/petbazaar/petbazaar-api/databases"
	"github.com/petbazaar/petbazaar-api/mailer"
	"github.com/petbazaar/petbazaar-api/models"
)

const (
	connectTimeout = 20 * time.Second
	requestTimeout = 30 * time.Second
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
	client   databases.ClientHelper

	guard     *api.Guard
	limiter   *cache.LoginAttempts
	mailer    mailer.Mailer
	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.guard == nil {
		a.guard = api.NewGuard(a.Config.JWTSecret, a.Config.TokenTTL)
	}
	if a.mailer == nil {
		a.mailer = mailer.Noop{}
	}

	r := mux.NewRouter()
	r.Use(api.RequestLogger)
	r.Use(api.TimeoutMiddleware(requestTimeout))

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()
	if a.dbHelper == nil {
		apiRouter.Use(api.MissingConfiguration)
	}
	apiRouter.Use(a.guard.SessionMiddleware)

	userDB := databases.NewUserDatabase(a.dbHelper)
	petDB := databases.NewPetDatabase(a.dbHelper)
	chatDB := databases.NewChatDatabase(a.dbHelper)

	auth := Auth{DB: userDB, Guard: a.guard, Mailer: a.mailer}
	if a.limiter != nil {
		auth.Limiter = a.limiter
	}
	u := User{DB: userDB, PDB: petDB, CDB: chatDB}
	n := Notification{DB: userDB}
	p := Pet{DB: petDB}
	c := Chat{DB: chatDB}
	g := Group{DB: databases.NewGroupDatabase(a.dbHelper), MDB: databases.NewMessageDatabase(a.dbHelper)}
	up := Upload{
		CloudName:    a.Config.CloudinaryCloudName,
		APIKey:       a.Config.CloudinaryAPIKey,
		APISecret:    a.Config.CloudinaryAPISecret,
		UploadPreset: a.Config.CloudinaryUploadPreset,
	}

	apiRouter.HandleFunc("/auth/login", auth.LoginHandler).Methods("POST")
	apiRouter.HandleFunc("/auth/signup", auth.SignupHandler).Methods("POST")
	apiRouter.HandleFunc("/auth/logout", a.guard.LogoutHandler).Methods("DELETE")

	apiRouter.Handle("/users", a.adminOnly(u.UsersHandler)).Methods("GET")
	apiRouter.HandleFunc("/users/{id}", u.UserHandler).Methods("GET")
	apiRouter.Handle("/users/{id}", a.adminOnly(u.UpdateUserHandler)).Methods("PUT")
	apiRouter.Handle("/users/{id}", a.adminOnly(u.DeleteUserHandler)).Methods("DELETE")
	apiRouter.HandleFunc("/users/{id}/notifications", n.NotificationsHandler).Methods("GET")
	apiRouter.HandleFunc("/users/{id}/notifications", n.CreateNotificationHandler).Methods("POST")
	apiRouter.HandleFunc("/users/{id}/chats", u.UserChatsHandler).Methods("GET")

	apiRouter.HandleFunc("/pets", p.PetsHandler).Methods("GET")
	apiRouter.HandleFunc("/pets", p.CreatePetHandler).Methods("POST")
	apiRouter.HandleFunc("/pets/{id}", p.PetHandler).Methods("GET")
	apiRouter.HandleFunc("/pets/{id}", p.UpdatePetHandler).Methods("PUT")
	apiRouter.HandleFunc("/pets/{id}", p.DeletePetHandler).Methods("DELETE")

	apiRouter.HandleFunc("/chats", c.GetOrCreateChatHandler).Methods("POST")
	apiRouter.HandleFunc("/chats/{id}", c.ChatHandler).Methods("GET")
	apiRouter.HandleFunc("/chats/{id}", c.PostChatMessageHandler).Methods("POST")

	apiRouter.HandleFunc("/groups", g.GroupsHandler).Methods("GET")
	apiRouter.HandleFunc("/groups", g.CreateGroupHandler).Methods("POST")
	apiRouter.HandleFunc("/groups/{id}", g.GroupHandler).Methods("GET")
	apiRouter.HandleFunc("/groups/{id}", g.DeleteGroupHandler).Methods("DELETE")
	apiRouter.HandleFunc("/groups/{id}/messages", g.PostGroupMessageHandler).Methods("POST")

	apiRouter.HandleFunc("/uploads/signature", up.SignatureHandler).Methods("POST")

	return r
}

// adminOnly guards admin console routes when REQUIRE_ADMIN_SESSION is set
func (a *App) adminOnly(h http.HandlerFunc) http.Handler {
	if a.Config.RequireAdminSession {
		return api.RequireAdmin(h)
	}
	return h
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	api.SetQueryTimeout(a.Config.QueryTimeout)
	a.guard = api.NewGuard(a.Config.JWTSecret, a.Config.TokenTTL)
	a.mailer = mailer.New(a.Config.SendgridAPIKey, a.Config.MailFrom, a.Config.BaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if a.Config.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, a.Config.RedisURL)
		if err != nil {
			// login still works, just without the attempt limit
			zap.S().Errorw("failed to connect to redis, login attempts are not limited", "error", err)
		} else {
			a.limiter = cache.NewLoginAttempts(client, a.Config.LoginMaxAttempts, a.Config.LoginLockout)
		}
	}

	if a.Config.URL == "" {
		a.Router = a.New()
		return nil
	}

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		return errors.Wrap(err, "failed to create new client")
	}
	if err := client.Connect(ctx); err != nil {
		// if we fail to connect to the database, then kill the pod
		return errors.Wrap(err, "failed to connect to database")
	}
	a.client = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	zap.S().Info("petbazaar-api has connected to the database")

	a.ensureIndexes(ctx)

	a.scheduler = scheduler.NewScheduler(databases.NewChatDatabase(a.dbHelper))
	if err := a.scheduler.Start(a.Config.AuditSchedule); err != nil {
		zap.S().Errorw("failed to start scheduler", "error", err)
		a.scheduler = nil
	}

	a.Router = a.New()
	return nil
}

// ensureIndexes creates the indexes the queries rely on. Failures are logged
// and do not stop startup.
func (a *App) ensureIndexes(ctx context.Context) {
	indexers := map[string]interface {
		EnsureIndexes(context.Context) error
	}{
		"users":    databases.NewUserDatabase(a.dbHelper),
		"pets":     databases.NewPetDatabase(a.dbHelper),
		"chats":    databases.NewChatDatabase(a.dbHelper),
		"messages": databases.NewMessageDatabase(a.dbHelper),
	}
	for name, db := range indexers {
		if err := db.EnsureIndexes(ctx); err != nil {
			zap.S().Errorw("failed to create indexes", "collection", name, "error", err)
		}
	}
}

// Close stops background jobs and releases connections
func (a *App) Close(ctx context.Context) {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.limiter != nil {
		if err := a.limiter.Close(); err != nil {
			zap.S().Warnw("failed to close redis client", "error", err)
		}
	}
	if a.client != nil {
		if err := a.client.Disconnect(ctx); err != nil {
			zap.S().Warnw("failed to disconnect from database", "error", err)
		}
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	config.WriteJSON(w, http.StatusOK, models.HealthCheckResponse{Alive: true})
}
