package api_test

import (
	"area-api/internal/app"
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"context"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ptr[T any](v T) *T { return &v }

var (
	owner    = ports.Principal{UserID: 1, Username: "owner", KeyID: "key1"}
	stranger = ports.Principal{UserID: 2, Username: "stranger", KeyID: "key2"}
	admin    = ports.Principal{UserID: 99, Username: "admin", KeyID: "admin", Admin: true}
)

// --- Seedable server ---
func newTestServerFromConfig(configPath string) ports.ApiServer {
	data, err := os.ReadFile(configPath)
	Expect(err).NotTo(HaveOccurred())

	tmpDir := filepath.Join(GinkgoT().TempDir(), "area-api-test")
	err = os.MkdirAll(tmpDir, 0755)
	Expect(err).NotTo(HaveOccurred())

	dataStr := string(data)
	dataStr = strings.ReplaceAll(dataStr, "TEST_TEMP_DIR_PLACEHOLDER", tmpDir)

	cfg, err := config.LoadConfigString(dataStr)
	Expect(err).NotTo(HaveOccurred())

	err = os.MkdirAll(cfg.Storage.ImagesBaseDir, 0755)
	Expect(err).NotTo(HaveOccurred())

	rs, err := app.BuildApiServer(cfg, true)
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(rs.Close)

	return rs
}

func mustSaveArea(s ports.ApiServer, name string, projectID int64, parentID *int64) ports.Area {
	a, err := s.SaveArea(context.Background(), admin, ports.Area{
		Name:         name,
		ProjectID:    projectID,
		ParentAreaID: parentID,
	})
	Expect(err).NotTo(HaveOccurred())
	return a
}
