package config_test

import (
	"os"
	"time"

	"area-api/internal/app/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const TestConfigPath = "../../../config.test.yml"

var _ = Describe("LoadConfig", func() {

	When("the file does not exist", func() {
		It("returns an error and nil config", func() {
			cfg, err := config.LoadConfig("this-file-does-not-exist.yaml")
			Expect(err).To(HaveOccurred())
			Expect(cfg).To(BeNil())
		})
	})

	When("the file contains invalid YAML", func() {
		It("returns a parse error and nil config", func() {
			f, err := os.CreateTemp("", "invalid-*.yaml")
			Expect(err).ToNot(HaveOccurred())
			defer func(name string) {
				_ = os.Remove(name)
			}(f.Name())

			_, err = f.WriteString("not valid yaml: : :")
			Expect(err).ToNot(HaveOccurred())
			_ = f.Close()

			cfg, loadErr := config.LoadConfig(f.Name())
			Expect(loadErr).To(HaveOccurred())
			Expect(cfg).To(BeNil())
		})
	})

	When("loading from an in-memory YAML string", func() {
		It("parses, expands env vars and applies defaults", func() {
			Expect(os.Setenv("IMAGES_DIR", "/var/lib/area-images")).To(Succeed())
			defer func() {
				_ = os.Unsetenv("IMAGES_DIR")
			}()

			yamlStr := `
storage:
  implementation: unix
  images_base_dir: ${IMAGES_DIR:-/default/images}
http_server: {}
security:
  authenticator:
    access_keys:
      api1:
        secret: "00ff"
        user_id: 7
repository:
  type: inmem
metrics: {}
`
			cfg, err := config.LoadConfigString(yamlStr)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg).ToNot(BeNil())

			Expect(cfg.Storage.ImagesBaseDir).To(Equal("/var/lib/area-images"))

			// defaults from struct tags (go-defaults)
			Expect(cfg.Metrics.Namespace).To(Equal("areas"))
			Expect(cfg.HttpServer.ListenAddress).To(Equal(":8080"))
			Expect(cfg.HttpServer.TelemetryPath).To(Equal("/metrics"))
			Expect(cfg.HttpServer.RequestTimeout).To(Equal(60 * time.Second))
			Expect(cfg.HttpServer.ShutdownGrace).To(Equal(15 * time.Second))
			Expect(cfg.HttpServer.RateLimit.Burst).To(Equal(20))
			Expect(cfg.Storage.MaxFileSize).To(Equal(int64(1048576)))
			Expect(cfg.Storage.SupportedExtensions).To(ConsistOf(".jpg", ".jpeg", ".png", ".svg"))

			Expect(cfg.Security.Authenticator.WindowSeconds).To(Equal(60))
			Expect(cfg.Security.Authenticator.EnabledAuthenticators).
				To(ConsistOf("hmac", "bearer", "jwt"))
			Expect(cfg.Security.Authenticator.JWT.Leeway).To(Equal(30 * time.Second))

			Expect(cfg.Repository.InMem.EntitiesLimit).To(Equal(10000))
			Expect(cfg.Events.Publisher).To(Equal("none"))
			Expect(cfg.Events.MQTT.TopicPrefix).To(Equal("hyperiot"))
			Expect(cfg.Logging.Level).To(Equal("info"))
		})
	})

	When("YAML uses default part in ${VAR:-default}", func() {
		It("uses the default when env is missing", func() {
			_ = os.Unsetenv("MISSING_ENV")

			yamlStr := `
storage:
  images_base_dir: ${MISSING_ENV:-/fallback/dir}
repository:
  type: inmem
`
			cfg, err := config.LoadConfigString(yamlStr)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Storage.ImagesBaseDir).To(Equal("/fallback/dir"))
		})
	})

	When("AREA_API_* variables are set", func() {
		It("overrides YAML values", func() {
			Expect(os.Setenv("AREA_API_REPOSITORY_TYPE", "sqlite")).To(Succeed())
			Expect(os.Setenv("AREA_API_JWT_SECRET", "from-env")).To(Succeed())
			defer func() {
				_ = os.Unsetenv("AREA_API_REPOSITORY_TYPE")
				_ = os.Unsetenv("AREA_API_JWT_SECRET")
			}()

			yamlStr := `
repository:
  type: inmem
security:
  authenticator:
    jwt:
      secret: from-yaml
`
			cfg, err := config.LoadConfigString(yamlStr)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Repository.Type).To(Equal("sqlite"))
			Expect(cfg.Security.Authenticator.JWT.Secret).To(Equal("from-env"))
		})
	})

	When("real test file exists", func() {
		It("loads it successfully (smoke test)", func() {
			if _, err := os.Stat(TestConfigPath); err != nil {
				Skip("test config file not found: " + TestConfigPath)
			}
			cfg, err := config.LoadConfig(TestConfigPath)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg).ToNot(BeNil())
		})
	})
})

var _ = Describe("ProgramConfig utility methods", func() {
	It("returns access key by id", func() {
		yamlStr := `
security:
  authenticator:
    access_keys:
      keyA:
        secret: "0a0b"
        user_id: 42
        username: alice
`
		cfg, err := config.LoadConfigString(yamlStr)
		Expect(err).ToNot(HaveOccurred())

		key, err := cfg.GetAccessKey("keyA")
		Expect(err).ToNot(HaveOccurred())
		Expect(key.Secret).To(Equal("0a0b"))
		Expect(key.UserID).To(Equal(int64(42)))
		Expect(key.Username).To(Equal("alice"))
		Expect(key.Admin).To(BeFalse())

		_, err = cfg.GetAccessKey("nope")
		Expect(err).To(HaveOccurred())
	})

	It("reads initial projects and devices", func() {
		yamlStr := `
repository:
  type: inmem
  load_initial_data: true
  initial_data:
    projects:
      - id: 1
        name: plant
        owner_user_id: 42
    devices:
      - id: 10
        device_name: sensor-a
        project_id: 1
`
		cfg, err := config.LoadConfigString(yamlStr)
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Repository.InitialData.Projects).To(HaveLen(1))
		Expect(cfg.Repository.InitialData.Projects[0].OwnerUserID).To(Equal(int64(42)))
		Expect(cfg.Repository.InitialData.Devices).To(HaveLen(1))
		Expect(cfg.Repository.InitialData.Devices[0].DeviceName).To(Equal("sensor-a"))
		Expect(cfg.Repository.InitialData.Devices[0].ProjectID).To(Equal(int64(1)))
	})
})

var _ = Describe("DB-related defaults", func() {
	It("applies sqlite timeouts", func() {
		yamlStr := `
repository:
  type: sqlite
  sqlite:
    db_file_path: "/tmp/test.db"
`
		cfg, err := config.LoadConfigString(yamlStr)
		Expect(err).ToNot(HaveOccurred())

		Expect(cfg.Repository.Sqlite.DbFilePath).To(Equal("/tmp/test.db"))
		Expect(cfg.Repository.Sqlite.QueryTimeout).To(Equal(5 * time.Second))
		Expect(cfg.Repository.Sqlite.WriteTimeout).To(Equal(5 * time.Second))
		Expect(cfg.Repository.MySQL.Port).To(Equal(3306))
	})
})

var _ = Describe("Validation", func() {
	DescribeTable("rejects settings that would lift a limit",
		func(yamlStr, message string) {
			cfg, err := config.LoadConfigString(yamlStr)
			Expect(err).To(MatchError(ContainSubstring(message)))
			Expect(cfg).To(BeNil())
		},
		Entry("negative max_file_size", "storage:\n  max_file_size: -1\n", "max_file_size must be positive"),
		Entry("blank extension", "storage:\n  supported_extensions: [\".png\", \" \"]\n", "blank entries"),
		Entry("negative rate", "http_server:\n  rate_limit:\n    requests_per_second: -5\n", "requests_per_second must not be negative"),
	)

	It("refuses a storage config without extensions", func() {
		err := config.StorageConfig{MaxFileSize: 1024}.Validate()
		Expect(err).To(MatchError(ContainSubstring("supported_extensions must not be empty")))
	})

	It("fills empty extensions from the defaults", func() {
		cfg, err := config.LoadConfigString("storage:\n  supported_extensions: []\n")
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Storage.SupportedExtensions).To(ContainElement(".png"))
	})

	It("accepts the defaults", func() {
		cfg, err := config.LoadConfigString("storage: {}\n")
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Storage.MaxFileSize).To(Equal(int64(1048576)))
		Expect(cfg.Storage.SupportedExtensions).ToNot(BeEmpty())
	})
})

var _ = Describe("ExpandEnvWithDefaults (unit)", func() {
	It("replaces ${VAR} unresolved to empty string if no env and no default", func() {
		_ = os.Unsetenv("NOPE")
		out := config.ExpandEnvWithDefaults("${NOPE}")
		Expect(out).To(Equal(""))
	})

	It("replaces ${VAR:-def} with def when unset", func() {
		_ = os.Unsetenv("NOPE2")
		out := config.ExpandEnvWithDefaults("${NOPE2:-abc}")
		Expect(out).To(Equal("abc"))
	})

	It("replaces ${VAR} with value when set", func() {
		Expect(os.Setenv("REAL", "value")).To(Succeed())
		defer func() {
			_ = os.Unsetenv("REAL")
		}()

		out := config.ExpandEnvWithDefaults("${REAL}")
		Expect(out).To(Equal("value"))
	})

	It("keeps crypt hashes intact", func() {
		hash := "$5$rounds=5000$abcdefgh$xyz"
		Expect(config.ExpandEnvWithDefaults(hash)).To(Equal(hash))
	})
})
