package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "pa_dog_license/docs"
	"pa_dog_license/internal/adapter/http/handlers"
	"pa_dog_license/internal/adapter/http/middleware"
	"pa_dog_license/internal/adapter/http/views"
	"pa_dog_license/internal/infrastructure/config"
	"pa_dog_license/internal/infrastructure/logger"
	"pa_dog_license/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the use cases and settings the router is built from.
type Dependencies struct {
	Applications  usecase.IApplicationUseCase
	LicenseFees   usecase.ILicenseFeeUseCase
	Logger        *zap.Logger
	Location      *time.Location
	RedirectDelay time.Duration
}

// Run will start the server
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		logger.New("error", "console").Error("failed to load configuration", zap.Error(err))
		return err
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newApplicationRepository(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialise application storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return err
	}
	defer closeRepo()

	loc := cfg.Location()
	router := NewRouter(Dependencies{
		Applications: usecase.NewApplicationUseCase(repo, log,
			usecase.WithLocation(loc),
			usecase.WithLookupDelay(cfg.Wizard.LookupDelay),
		),
		LicenseFees:   usecase.NewLicenseFeeUseCase(),
		Logger:        log,
		Location:      loc,
		RedirectDelay: cfg.Wizard.RedirectDelay,
	})

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.String("storage", cfg.Storage.Driver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to startup the application", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires every page and API route onto a fresh engine.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, deps.Logger)
	router.SetHTMLTemplate(views.MustTemplates())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addPageRoutes(router,
		handlers.NewWizardHandler(deps.Applications, deps.Logger, deps.RedirectDelay),
		handlers.NewTrackingHandler(deps.Applications, deps.Location),
	)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addApplicationRoutes(v1, handlers.NewApplicationHandler(deps.Applications, deps.Logger, deps.Location, deps.RedirectDelay))
	addLicenseFeeRoutes(v1, handlers.NewLicenseFeeHandler(deps.LicenseFees))

	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log.Named("http")))
	router.Use(middleware.Recovery(log.Named("http")))
}
