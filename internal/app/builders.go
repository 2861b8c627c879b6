package app

import (
	"area-api/internal/adapters/in/rest"
	"area-api/internal/adapters/in/rest/openapi"
	"area-api/internal/adapters/out/areas"
	"area-api/internal/adapters/out/events"
	"area-api/internal/adapters/out/fs"
	"area-api/internal/adapters/out/security"
	"area-api/internal/app/api"
	"area-api/internal/app/config"
	"area-api/internal/app/docs"
	"area-api/internal/app/logging"
	"area-api/internal/app/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// bootstrapPrincipal owns the initial data load.
var bootstrapPrincipal = ports.Principal{Username: "bootstrap", Admin: true}

func BuildApiServer(cfg *config.ProgramConfig, bootstrap bool) (ports.ApiServer, error) {
	areaRepo, err := createAreaRepo(cfg, bootstrap)
	if err != nil {
		return nil, err
	}

	fsService, err := CreateFilesystemService(cfg.Storage.Implementation)
	if err != nil {
		return nil, fmt.Errorf("cannot create filesystem service: %w", err)
	}

	imageStorage, err := fs.NewDefaultImageStorageService(cfg.Storage, fsService, bootstrap)
	if err != nil {
		_ = areaRepo.Close()
		return nil, fmt.Errorf("cannot create image storage service: %w", err)
	}

	publisher, err := CreateEventPublisher(cfg.Events)
	if err != nil {
		_ = areaRepo.Close()
		return nil, fmt.Errorf("cannot create event publisher: %w", err)
	}

	apiServer, err := api.NewDefaultApiServer(areaRepo, imageStorage, publisher)
	if err != nil {
		publisher.Close()
		_ = areaRepo.Close()
		return nil, fmt.Errorf("cannot create api server: %w", err)
	}

	if bootstrap && cfg.Repository.LoadInitialData {
		err = loadInitialData(context.Background(), apiServer, cfg)
		if err != nil {
			_ = apiServer.Close()
			return nil, fmt.Errorf("cannot load initial data: %w", err)
		}
	}
	return apiServer, nil
}

func CreateFilesystemService(implementation string) (ports.FilesystemService, error) {
	switch implementation {
	case "none":
		return fs.NewNoneFilesystemService(), nil
	case "inmem":
		return fs.NewInMemFilesystemService(), nil
	case "unix":
		return fs.NewUnixFilesystemService(), nil
	default:
		return nil, fmt.Errorf("unsupported filesystem implementation: '%s'", implementation)
	}
}

func CreateEventPublisher(cfg config.EventsConfig) (ports.EventPublisher, error) {
	switch cfg.Publisher {
	case "", "none":
		return events.NewNoneEventPublisher(), nil
	case "log":
		return events.NewLogEventPublisher(log.Logger), nil
	case "mqtt":
		return events.NewMQTTEventPublisher(cfg.MQTT)
	default:
		return nil, fmt.Errorf("unsupported event publisher: '%s'", cfg.Publisher)
	}
}

func BuildAuthenticator(cfg config.SecurityConfig) (ports.Authenticator, error) {
	hasher, err := security.NewDefaultHasherFromConfig(cfg.Hasher)
	if err != nil {
		return nil, fmt.Errorf("cannot create hasher: %w", err)
	}
	authenticator, err := security.NewMultiAuthenticator(cfg.Authenticator, hasher)
	if err != nil {
		return nil, fmt.Errorf("cannot create authenticator: %w", err)
	}
	return authenticator, nil
}

func BuildRestServer(cfg *config.ProgramConfig, bootstrap bool, actionMetrics ports.ActionMetrics) (*rest.DefaultRestServer, error) {
	apiServer, err := BuildApiServer(cfg, bootstrap)
	if err != nil {
		return nil, fmt.Errorf("cannot create api server: %w", err)
	}

	authenticator, err := BuildAuthenticator(cfg.Security)
	if err != nil {
		_ = apiServer.Close()
		return nil, err
	}

	restServer, err := rest.NewRestServer(cfg.HttpServer, apiServer, authenticator, actionMetrics)
	if err != nil {
		_ = apiServer.Close()
		return nil, fmt.Errorf("cannot create rest server: %w", err)
	}
	return restServer, nil
}

func createAreaRepo(cfg *config.ProgramConfig, bootstrap bool) (areaRepo ports.AreaRepository, err error) {
	switch cfg.Repository.Type {
	case "inmem":
		areaRepo, err = areas.NewInMemAreaRepository(cfg.Repository.InMem)
	case "sqlite":
		areaRepo, err = areas.NewSQLiteAreaRepository(cfg.Repository.Sqlite, bootstrap)
	case "mysql":
		areaRepo, err = areas.NewMySQLAreaRepository(cfg.Repository.MySQL, bootstrap)
	default:
		return nil, fmt.Errorf("unsupported area repository type: %s", cfg.Repository.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot create area repository with type '%s': %w", cfg.Repository.Type, err)
	}
	info, err := areaRepo.GetInfo(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get area repository ('%s') info: %w", cfg.Repository.Type, err)
	}
	log.Info().Str("repository", cfg.Repository.Type).Str("info", info).Msg("area repository ready")
	return areaRepo, nil
}

// loadInitialData mirrors the configured projects and devices; conflicts are logged and skipped.
func loadInitialData(ctx context.Context, apiServer ports.ApiServer, cfg *config.ProgramConfig) error {
	log.Info().Msg("loading initial data")
	var errs []error

	icr, iex, ier := 0, 0, 0
	for _, project := range cfg.Repository.InitialData.Projects {
		_, created, err := apiServer.EnsureProject(ctx, bootstrapPrincipal, project)
		switch {
		case err != nil:
			log.Warn().Err(err).Int64("project_id", project.ID).Msg("project can't be ensured")
			errs = append(errs, err)
			ier++
		case created:
			icr++
		default:
			iex++
		}
	}
	log.Info().Int("existed", iex).Int("loaded", icr).Int("errored", ier).Msg("initial projects")

	icr, iex, ier = 0, 0, 0
	for _, device := range cfg.Repository.InitialData.Devices {
		_, created, err := apiServer.EnsureDevice(ctx, bootstrapPrincipal, device)
		switch {
		case err != nil:
			log.Warn().Err(err).Int64("device_id", device.ID).Msg("device can't be ensured")
			errs = append(errs, err)
			ier++
		case created:
			icr++
		default:
			iex++
		}
	}
	log.Info().Int("existed", iex).Int("loaded", icr).Int("errored", ier).Msg("initial devices")

	for _, err := range errs {
		if !errors.Is(err, ports.ErrConflict) {
			return err
		}
	}
	return nil
}

func BuildRouter(server openapi.ServerInterface, cfg config.HttpServerConfig, logger zerolog.Logger) (*chi.Mux, error) {
	openapiJSON, err := docs.OpenAPIJSON()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}
	// Standard middlewares: request correlation, real client IP, logging, recovery, and server-side request timeout
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		logging.RequestLogger(logger),
		middleware.Recoverer,
		middleware.Timeout(requestTimeout),
	)

	limiter := rest.NewClientRateLimiter(cfg.RateLimit)
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		_ = openapi.HandlerWithOptions(server, openapi.ChiServerOptions{
			BaseRouter:       r,
			ErrorHandlerFunc: rest.HandleParamError,
		})
	})

	// Health and readiness probes
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", server.Health)

	// Index page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(docs.IndexHTML)
	})
	// ReDoc UI
	r.Get("/docs/redoc", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(docs.RedocHTML)
	})
	// Swagger UI
	r.Get("/docs/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(docs.SwaggerHTML)
	})

	// OpenAPI YAML
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(docs.OpenAPIYAML)
	})
	// OpenAPI JSON, validated at startup
	r.Get("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(openapiJSON)
	})
	return r, nil
}
