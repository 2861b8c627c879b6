package main

import (
	"area-api/internal/adapters/out/metrics"
	"area-api/internal/adapters/out/security"
	"area-api/internal/app"
	"area-api/internal/app/config"
	"area-api/internal/app/logging"
	"area-api/internal/app/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var ProgramVersion = "dev"

const (
	ProgramName = "area-api"
)

func main() {
	configFlag := &cli.StringFlag{Name: "config", Value: "config.yml", Usage: "Path to configuration YAML"}
	cliApp := &cli.App{
		Name:    ProgramName,
		Usage:   "HyperIoT area management REST service",
		Version: ProgramVersion,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP server",
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{Name: "pidfile", Usage: "Path to PID file (optional)"},
					&cli.BoolFlag{Name: "bootstrap", Usage: "If the instance is the first instance of its group"},
				},
				Action: func(c *cli.Context) error {
					return serve(c.String("config"), c.String("pidfile"), c.Bool("bootstrap"))
				},
			},
			{
				Name:  "check-config",
				Usage: "load and validate the configuration, then exit",
				Flags: []cli.Flag{configFlag},
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadConfig(c.String("config"))
					if err != nil {
						return cli.Exit(fmt.Sprintf("cannot load --config=%s: %v", c.String("config"), err), 1)
					}
					if _, err := app.BuildAuthenticator(cfg.Security); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Fprintf(c.App.Writer, "configuration %s is valid (repository=%s, storage=%s, events=%s)\n",
						c.String("config"), cfg.Repository.Type, cfg.Storage.Implementation, cfg.Events.Publisher)
					return nil
				},
			},
			{
				Name:      "hash-secret",
				Usage:     "hash a bearer secret with the configured hasher",
				ArgsUsage: "<plain-secret>",
				Flags:     []cli.Flag{configFlag},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("exactly one secret is required", 2)
					}
					cfg, err := config.LoadConfig(c.String("config"))
					if err != nil {
						return cli.Exit(fmt.Sprintf("cannot load --config=%s: %v", c.String("config"), err), 1)
					}
					hasher, err := security.NewDefaultHasherFromConfig(cfg.Security.Hasher)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					hashed, err := hasher.DefaultHash(c.Args().First())
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Fprintln(c.App.Writer, hashed)
					return nil
				},
			},
			{
				Name:  "issue-token",
				Usage: "sign a JWT for a platform user",
				Flags: []cli.Flag{
					configFlag,
					&cli.Int64Flag{Name: "user-id", Required: true},
					&cli.StringFlag{Name: "username", Required: true},
					&cli.BoolFlag{Name: "admin"},
					&cli.DurationFlag{Name: "ttl", Value: time.Hour},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadConfig(c.String("config"))
					if err != nil {
						return cli.Exit(fmt.Sprintf("cannot load --config=%s: %v", c.String("config"), err), 1)
					}
					issuer, err := security.NewJWTAuthenticator(cfg.Security.Authenticator.JWT)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					token, err := issuer.IssueToken(ports.Principal{
						UserID:   c.Int64("user-id"),
						Username: c.String("username"),
						Admin:    c.Bool("admin"),
					}, c.Duration("ttl"))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Fprintln(c.App.Writer, token)
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}

func serve(configFile, pidFile string, bootstrap bool) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("cannot load --config=%s: %w", configFile, err)
	}

	logger := logging.Setup(cfg.Logging, ProgramName, ProgramVersion)

	if pidFile != "" {
		pidCleanup, err := app.CreatePIDFile(pidFile)
		if errors.Is(err, app.ErrAlreadyRunning) {
			return cli.Exit(err.Error(), 2)
		}
		if err != nil {
			return fmt.Errorf("pidfile: %w", err)
		}
		defer pidCleanup()
	}

	cfg.PrintHello(ProgramName, ProgramVersion, pidFile, bootstrap)

	reg := prometheus.NewRegistry()

	// add standard Go/process collectors (they are NOT in reg by default)
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	actionMetrics, err := metrics.NewAreaActionMetrics(ProgramName, ProgramVersion, cfg.Metrics, reg)
	if err != nil {
		return err
	}

	restServer, err := app.BuildRestServer(cfg, bootstrap, actionMetrics)
	if err != nil {
		return fmt.Errorf("cannot build rest server: %w", err)
	}
	// Runs after WaitAndShutdown has drained the listeners.
	defer func() {
		if err := restServer.Close(); err != nil {
			log.Warn().Err(err).Msg("cannot release resources")
		}
	}()

	router, err := app.BuildRouter(restServer, cfg.HttpServer, logger)
	if err != nil {
		return fmt.Errorf("cannot build router: %w", err)
	}

	// Wrap router to expose /metrics alongside all existing routes.
	mux := http.NewServeMux()
	mux.Handle(cfg.HttpServer.TelemetryPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// / is the root of the API
	mux.Handle("/", router)

	servers, err := app.NewMultiHTTPServer(cfg.HttpServer, mux)
	if err != nil {
		return err
	}
	servers.Start()
	return servers.WaitAndShutdown(context.Background())
}
