package config

import (
	"area-api/internal/app/ports"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mcuadros/go-defaults"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type ProgramConfig struct {
	HttpServer HttpServerConfig `yaml:"http_server"`
	Repository RepositoryConfig `yaml:"repository"`
	Storage    StorageConfig    `yaml:"storage"`
	Security   SecurityConfig   `yaml:"security"`
	Metrics    MetricsContext   `yaml:"metrics"`
	Events     EventsConfig     `yaml:"events"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type MetricsContext struct {
	Namespace   string `yaml:"namespace" default:"areas"`
	Environment string `yaml:"environment" env:"AREA_API_ENVIRONMENT"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" default:"info" env:"AREA_API_LOG_LEVEL"`
	Format string `yaml:"format" default:"json"`
}

type StorageConfig struct {
	Implementation      string   `yaml:"implementation" default:"unix"`
	ImagesBaseDir       string   `yaml:"images_base_dir" env:"AREA_API_IMAGES_DIR"`
	CreateImagesBaseDir bool     `yaml:"create_images_base_dir" default:"false"`
	MaxFileSize         int64    `yaml:"max_file_size" default:"1048576"`
	SupportedExtensions []string `yaml:"supported_extensions" default:"[.jpg,.jpeg,.png,.svg]"`
}

type HttpServerConfig struct {
	Banner         string          `yaml:"banner" default:"Area API"`
	ListenAddress  string          `yaml:"listen_address" default:":8080" env:"AREA_API_LISTEN_ADDRESS"`
	UnixSocketPath string          `yaml:"unix_socket_path"`
	TelemetryPath  string          `yaml:"telemetry_path" default:"/metrics"`
	RequestTimeout time.Duration   `yaml:"request_timeout" default:"60s"`
	ShutdownGrace  time.Duration   `yaml:"shutdown_grace" default:"15s"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig limits requests per API client; a zero rate disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst" default:"20"`
}

type SecurityConfig struct {
	Authenticator AuthenticatorConfig `yaml:"authenticator"`
	Hasher        HasherConfig        `yaml:"hasher"`
}

type AuthenticatorConfig struct {
	EnabledAuthenticators []string                   `yaml:"enabled_authenticators" default:"[hmac,bearer,jwt]"`
	WindowSeconds         int                        `yaml:"window_seconds" default:"60"`
	AccessKeys            map[string]AccessKeyConfig `yaml:"access_keys"`
	JWT                   JWTConfig                  `yaml:"jwt"`
}

// AccessKeyConfig binds an API key to the platform user it acts for.
// Secret is a hex string, or a crypt(3) hash usable by the bearer scheme only.
type AccessKeyConfig struct {
	Secret   string `yaml:"secret"`
	UserID   int64  `yaml:"user_id"`
	Username string `yaml:"username"`
	Admin    bool   `yaml:"admin"`
}

type JWTConfig struct {
	Secret   string        `yaml:"secret" env:"AREA_API_JWT_SECRET"`
	Issuer   string        `yaml:"issuer"`
	Audience string        `yaml:"audience"`
	Leeway   time.Duration `yaml:"leeway" default:"30s"`
}

type HasherConfig struct {
	DefaultAlgorithm string `yaml:"default_algorithm" default:"crypt-sha256"`
	DefaultRounds    int    `yaml:"default_rounds" default:"5000"`
	DefaultSaltLen   int    `yaml:"default_salt_len" default:"16"`
}

type RepositoryConfig struct {
	Type            string                 `yaml:"type" default:"inmem" env:"AREA_API_REPOSITORY_TYPE"`
	LoadInitialData bool                   `yaml:"load_initial_data" default:"false"`
	InitialData     RepositoryInitialData  `yaml:"initial_data"`
	InMem           RepositoryInMemConfig  `yaml:"inmem"`
	Sqlite          RepositorySqliteConfig `yaml:"sqlite"`
	MySQL           RepositoryMySqlConfig  `yaml:"mysql"`
}

type RepositoryInitialData struct {
	Projects []ports.Project `yaml:"projects"`
	Devices  []ports.Device  `yaml:"devices"`
}

type RepositoryInMemConfig struct {
	EntitiesLimit int `yaml:"entities_limit" default:"10000"`
}

type RepositorySqliteConfig struct {
	DbFilePath   string        `yaml:"db_file_path" env:"AREA_API_SQLITE_PATH"`
	CreateDbDir  bool          `yaml:"create_db_dir" default:"false"`
	QueryTimeout time.Duration `yaml:"query_timeout" default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" default:"5s"`
}

type RepositoryMySqlConfig struct {
	Database     string        `yaml:"database" env:"AREA_API_MYSQL_DATABASE"`
	Host         string        `yaml:"host" env:"AREA_API_MYSQL_HOST"`
	Port         int           `yaml:"port" default:"3306"`
	User         string        `yaml:"user" env:"AREA_API_MYSQL_USER"`
	Password     string        `yaml:"password" env:"AREA_API_MYSQL_PASSWORD"`
	IgnoreSSL    bool          `yaml:"ignore_ssl"`
	SSLCaPath    string        `yaml:"ssl_ca_path"`
	QueryTimeout time.Duration `yaml:"query_timeout" default:"5s"`
}

type EventsConfig struct {
	Publisher string     `yaml:"publisher" default:"none"`
	MQTT      MQTTConfig `yaml:"mqtt"`
}

type MQTTConfig struct {
	BrokerURL      string        `yaml:"broker_url" env:"AREA_API_MQTT_BROKER_URL"`
	ClientID       string        `yaml:"client_id" default:"area-api"`
	Username       string        `yaml:"username" env:"AREA_API_MQTT_USERNAME"`
	Password       string        `yaml:"password" env:"AREA_API_MQTT_PASSWORD"`
	TopicPrefix    string        `yaml:"topic_prefix" default:"hyperiot"`
	QoS            int           `yaml:"qos" default:"1"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" default:"10s"`
	PublishTimeout time.Duration `yaml:"publish_timeout" default:"5s"`
}

func LoadConfig(path string) (*ProgramConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfigString(string(data))
}

// LoadConfigString parses YAML, then applies struct defaults and finally AREA_API_* environment overrides.
func LoadConfigString(data string) (*ProgramConfig, error) {
	expanded := ExpandEnvWithDefaults(data)
	var config ProgramConfig
	err := yaml.Unmarshal([]byte(expanded), &config)
	if err != nil {
		return nil, err
	}
	defaults.SetDefaults(&config)
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects settings that would silently disable a limit.
func (c *ProgramConfig) Validate() error {
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if c.HttpServer.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("http_server.rate_limit.requests_per_second must not be negative, got %v", c.HttpServer.RateLimit.RequestsPerSecond)
	}
	return nil
}

func (c StorageConfig) Validate() error {
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("storage.max_file_size must be positive, got %d", c.MaxFileSize)
	}
	if len(c.SupportedExtensions) == 0 {
		return errors.New("storage.supported_extensions must not be empty")
	}
	for _, ext := range c.SupportedExtensions {
		if strings.TrimSpace(ext) == "" {
			return errors.New("storage.supported_extensions must not contain blank entries")
		}
	}
	return nil
}

func (c *ProgramConfig) PrintHello(programName, programVersion string, pidFile string, bootstrap bool) {
	log.Info().
		Str("program", programName).
		Str("version", programVersion).
		Int("pid", os.Getpid()).
		Str("pidfile", pidFile).
		Bool("bootstrap", bootstrap).
		Str("repository", c.Repository.Type).
		Str("events", c.Events.Publisher).
		Msg("starting")
}

func (c *ProgramConfig) GetAccessKey(key string) (AccessKeyConfig, error) {
	if c.Security.Authenticator.AccessKeys == nil {
		return AccessKeyConfig{}, fmt.Errorf("access key %q not found", key)
	}
	if val, ok := c.Security.Authenticator.AccessKeys[key]; ok {
		return val, nil
	}
	return AccessKeyConfig{}, fmt.Errorf("access key %q not found", key)
}

var varWithDefault = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-(.*?))?}`)

// ExpandEnvWithDefaults handles ${VAR:-default} and ${VAR}; an unset ${VAR} without default becomes empty.
// Bare $VAR is left untouched so crypt(3) hashes like $5$rounds=... survive.
func ExpandEnvWithDefaults(s string) string {
	return varWithDefault.ReplaceAllStringFunc(s, func(m string) string {
		sub := varWithDefault.FindStringSubmatch(m)
		name, defaultVal := sub[1], sub[2]
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v
		}
		return defaultVal
	})
}
