package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"explorewithme/config"
	_ "explorewithme/docs"
	authadapter "explorewithme/internal/adapters/auth"
	emailadapter "explorewithme/internal/adapters/email"
	statsadapter "explorewithme/internal/adapters/stats"
	deliveryhttp "explorewithme/internal/delivery/http"
	"explorewithme/internal/delivery/http/controllers"
	"explorewithme/internal/delivery/http/middleware"
	"explorewithme/internal/domain"
	"explorewithme/internal/repository/postgres"
	"explorewithme/internal/services"
)

// @title Explore With Me API
// @version 1.0
// @description Event discovery and participation service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin token: "Bearer <token>" from POST /admin/auth/token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.PingContext(startCtx); err != nil {
		cancelStart()
		log.Fatalf("connect to database: %v", err)
	}
	if err := postgres.Migrate(startCtx, db); err != nil {
		cancelStart()
		log.Fatalf("migrate: %v", err)
	}
	cancelStart()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	requestRepo := postgres.NewRequestRepository(db)
	compilationRepo := postgres.NewCompilationRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	tx := postgres.NewTransactor(db)

	// Collaborators
	stats := statsadapter.NewHTTPClient(statsadapter.Config{
		BaseURL: cfg.Stats.ServerURL,
		AppName: cfg.Stats.AppName,
		Timeout: cfg.Stats.Timeout,
	}, nil)
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		log.Fatalf("create mailer: %v", err)
	}
	notifier := services.NewEmailNotifier(mailer, emailadapter.NewTemplateRenderer(), logger)

	// Services
	timeout := cfg.ServiceTimeout
	userSvc := services.NewUserService(userRepo, timeout)
	categorySvc := services.NewCategoryService(categoryRepo, eventRepo, timeout)
	eventSvc := services.NewEventService(eventRepo, categoryRepo, userRepo, requestRepo, tx, stats, notifier, logger, timeout)
	requestSvc := services.NewRequestService(requestRepo, eventRepo, userRepo, tx, notifier,
		services.RequestUniqueness(cfg.RequestUniqueness), logger, timeout)
	compilationSvc := services.NewCompilationService(compilationRepo, eventRepo, requestRepo, tx, stats, logger, timeout)
	commentSvc := services.NewCommentService(commentRepo, eventRepo, userRepo, timeout)
	authSvc := services.NewAdminAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash,
		authadapter.NewBcryptHasher(0), authadapter.NewJWTIssuer(cfg.Admin.JWTSecret), cfg.Admin.TokenTTL)

	var adminGuard func(http.Handler) http.Handler
	if cfg.AdminAuthEnabled() {
		adminGuard = middleware.RequireRole(authadapter.NewJWTVerifier(cfg.Admin.JWTSecret), domain.RoleAdmin, logger)
	} else {
		logger.Warn("ADMIN_JWT_SECRET is not set, /admin routes are open")
	}

	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		User:        controllers.NewUserController(logger, userSvc),
		Category:    controllers.NewCategoryController(logger, categorySvc),
		Event:       controllers.NewEventController(logger, eventSvc),
		Request:     controllers.NewRequestController(logger, requestSvc),
		Compilation: controllers.NewCompilationController(logger, compilationSvc),
		Comment:     controllers.NewCommentController(logger, commentSvc),
		Auth:        controllers.NewAuthController(logger, authSvc),
	}, adminGuard)

	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins)(handler)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
