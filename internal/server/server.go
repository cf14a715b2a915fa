package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/config"
	"github.com/Ashupap/ShorelineVision-sub000/internal/db"
	"github.com/Ashupap/ShorelineVision-sub000/internal/handlers"
	"github.com/Ashupap/ShorelineVision-sub000/internal/logger"
	"github.com/Ashupap/ShorelineVision-sub000/internal/mq"
	"github.com/Ashupap/ShorelineVision-sub000/internal/notify"
	"github.com/Ashupap/ShorelineVision-sub000/internal/security"
	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/internal/session"
	"github.com/Ashupap/ShorelineVision-sub000/internal/storage"
	"github.com/Ashupap/ShorelineVision-sub000/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	sessionCleanupInterval = 15 * time.Minute
	limiterCleanupInterval = time.Minute
	stagingMaxAge          = time.Hour
	authRatePerSecond      = 5
	authRateBurst          = 10
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	mq         *mq.MQ
	notifier   *notify.Notifier
	cancel     context.CancelFunc
}

// deps are the long-lived collaborators the router is assembled from.
type deps struct {
	db          *sql.DB
	sessions    *session.PGStore
	objects     *storage.Storage
	local       *storage.LocalStore
	notifier    *notify.Notifier
	limiter     *handlers.RateLimiter
	corsOrigins []string
}

// New constructs a Server. The database and session secret are required;
// object storage and the message broker are disabled when they can not be
// set up.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sessionStore, err := session.New(ctx, dbConn, cfg.Session)
	if err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("init session store: %w", err)
	}

	local, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("init upload dir: %w", err)
	}
	if removed, err := local.SweepStaging(stagingMaxAge); err != nil {
		logger.Log.Warnw("failed to sweep staged uploads", "error", err)
	} else if removed > 0 {
		logger.Log.Infow("removed stale staged uploads", "count", removed)
	}

	objects, err := storage.NewFromConfig(ctx, cfg.Storage)
	if err != nil {
		logger.Log.Warnw("object storage disabled, uploads will be stored on local disk", "backend", cfg.Storage.Backend, "error", err)
		objects = storage.NewStorage(nil, cfg.Storage.PublicPaths)
	}

	broker, err := mq.NewFromConfig(ctx, cfg.MQ)
	if err != nil {
		logger.Log.Warnw("message broker disabled, notifications will be skipped", "backend", cfg.MQ.Backend, "error", err)
		broker = mq.New(nil)
	}
	notifier := notify.NewNotifier(broker)

	bgCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sessionStore.StartCleanup(bgCtx, sessionCleanupInterval)
	limiter := handlers.NewRateLimiter(authRatePerSecond, authRateBurst, 3*time.Minute)
	limiter.StartCleanup(bgCtx, limiterCleanupInterval)

	router := newRouter(deps{
		db:          dbConn,
		sessions:    sessionStore,
		objects:     objects,
		local:       local,
		notifier:    notifier,
		limiter:     limiter,
		corsOrigins: cfg.CORSOrigins,
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Log.Infow("server configured",
		"port", port,
		"object_storage", objects.Available(),
		"broker", broker.Enabled(),
		"mail", cfg.Mail.Enabled(),
	)

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		mq:         broker,
		notifier:   notifier,
		cancel:     cancel,
	}, nil
}

func newRouter(d deps) *chi.Mux {
	userRepo := store.NewUserRepository(d.db)
	authService := services.NewAuthService(userRepo, security.NewHasher())
	userService := services.NewUserService(userRepo)
	mediaService := services.NewMediaService(store.NewMediaRepository(d.db), d.objects, d.local)
	blogService := services.NewBlogService(store.NewBlogRepository(d.db))
	productService := services.NewProductService(store.NewProductRepository(d.db))
	testimonialService := services.NewTestimonialService(store.NewTestimonialRepository(d.db))
	inquiryService := services.NewInquiryService(store.NewInquiryRepository(d.db), d.notifier)
	contentService := services.NewContentService(store.NewContentRepository(d.db))

	gate := handlers.NewGate(d.sessions, authService)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		handlers.RequestLogger,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   d.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	router.Get("/healthz", handlers.Healthz(d.db))

	router.Get(storage.LocalURLPrefix+"*", localMediaHandler(d.local.Dir()))

	router.Route("/objects", func(r chi.Router) {
		handlers.ObjectRouter(r, d.objects)
	})

	var limit func(http.Handler) http.Handler
	if d.limiter != nil {
		limit = d.limiter.Middleware
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(gate.LoadUser)

		handlers.AuthRouter(r, authService, d.sessions, limit)
		r.Route("/users", func(r chi.Router) {
			handlers.UserRouter(r, userService, gate)
		})
		r.Route("/media", func(r chi.Router) {
			handlers.MediaRouter(r, mediaService, gate)
		})
		r.Route("/blog", func(r chi.Router) {
			handlers.BlogRouter(r, blogService, gate)
		})
		r.Route("/products", func(r chi.Router) {
			handlers.ProductRouter(r, productService, gate)
		})
		r.Route("/testimonials", func(r chi.Router) {
			handlers.TestimonialRouter(r, testimonialService, gate)
		})
		r.Route("/inquiries", func(r chi.Router) {
			handlers.InquiryRouter(r, inquiryService, gate, limit)
		})
		r.Route("/content", func(r chi.Router) {
			handlers.ContentRouter(r, contentService, gate)
		})
		r.Route("/settings", func(r chi.Router) {
			handlers.SettingsRouter(r, contentService, gate)
		})
	})

	return router
}

// localMediaHandler serves published fallback uploads. Directory listings
// and hidden staging files are never served.
func localMediaHandler(dir string) http.HandlerFunc {
	fileServer := http.StripPrefix(storage.LocalURLPrefix, http.FileServer(http.Dir(dir)))
	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Base(r.URL.Path)
		if strings.HasSuffix(r.URL.Path, "/") || strings.HasPrefix(name, ".") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "sandbox")
		fileServer.ServeHTTP(w, r)
	}
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server. It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	logger.Log.Infow("server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight requests and
// pending notifications, then releases the database and broker.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.cancel()
	s.notifier.Wait()
	if closeErr := s.mq.Close(); closeErr != nil {
		logger.Log.Warnw("failed to close message broker", "error", closeErr)
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	return err
}
