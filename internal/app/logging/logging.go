// Package logging builds the process logger from LoggingConfig.
package logging

import (
	"area-api/internal/app/config"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger writing to w with the program name and version attached.
func New(cfg config.LoggingConfig, w io.Writer, programName, programVersion string) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if strings.EqualFold(cfg.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("program", programName).
		Str("version", programVersion).
		Logger()
}

// Setup installs the logger as the global zerolog logger.
func Setup(cfg config.LoggingConfig, programName, programVersion string) zerolog.Logger {
	logger := New(cfg, os.Stdout, programName, programVersion)
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	return logger
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// RequestLogger is a chi middleware that logs one line per request.
func RequestLogger(logger zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			reqLogger := logger.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				ev := reqLogger.Info()
				if status >= http.StatusInternalServerError {
					ev = reqLogger.Error()
				}
				ev.Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote", r.RemoteAddr).
					Int("status", status).
					Int("bytes", ww.BytesWritten()).
					Dur("duration", time.Since(start)).
					Msg("request")
			}()
			next.ServeHTTP(ww, r.WithContext(reqLogger.WithContext(r.Context())))
		})
	}
}
