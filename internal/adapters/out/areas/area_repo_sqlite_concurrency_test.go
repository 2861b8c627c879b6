package areas

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"context"
	"errors"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SQLiteAreaRepository concurrency (multi-instance)", Ordered, func() {
	var (
		repo1 *SQLiteAreaRepository
		repo2 *SQLiteAreaRepository
	)

	BeforeAll(func() {
		cfg := config.RepositorySqliteConfig{
			DbFilePath:   filepath.Join(GinkgoT().TempDir(), "areas.db"),
			WriteTimeout: 100 * time.Millisecond,
			QueryTimeout: 100 * time.Millisecond,
		}
		var err error
		repo1, err = NewSQLiteAreaRepository(cfg, true)
		Expect(err).ToNot(HaveOccurred())
		repo2, err = NewSQLiteAreaRepository(cfg, false)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterAll(func() {
		if repo1 != nil {
			_ = repo1.Close()
		}
		if repo2 != nil {
			_ = repo2.Close()
		}
	})

	It("allows write and read on all nodes", func(ctx context.Context) {
		_, err := repo1.AddProject(ctx, ports.Project{ID: 1, Name: "p1", OwnerUserID: 1})
		if err != nil && !errors.Is(err, ports.ErrAlreadyExists) {
			Fail("cannot add project: " + err.Error())
		}
		_, err = repo2.AddProject(ctx, ports.Project{ID: 2, Name: "p2", OwnerUserID: 1})
		if err != nil && !errors.Is(err, ports.ErrAlreadyExists) {
			Fail("cannot add project: " + err.Error())
		}
		a1, err := repo1.AddArea(ctx, ports.Area{Name: "a1", AreaViewType: ports.AreaViewImage, ProjectID: 2})
		Expect(err).ToNot(HaveOccurred())
		a2, err := repo2.AddArea(ctx, ports.Area{Name: "a2", AreaViewType: ports.AreaViewImage, ProjectID: 1})
		Expect(err).ToNot(HaveOccurred())

		timeout := 1 * time.Second
		for _, repo := range []*SQLiteAreaRepository{repo1, repo2} {
			Eventually(func() bool {
				a, err := repo.GetArea(ctx, a1.ID)
				return err == nil && a.Name == "a1"
			}).WithTimeout(timeout).Should(BeTrue(), "every node should see area a1 within: "+timeout.String())
			Eventually(func() bool {
				a, err := repo.GetArea(ctx, a2.ID)
				return err == nil && a.Name == "a2"
			}).WithTimeout(timeout).Should(BeTrue(), "every node should see area a2 within: "+timeout.String())
		}
	})

	It("detects a concurrent update from another node", func(ctx context.Context) {
		a, err := repo1.FindAreaByKey(ctx, 2, nil, "a1")
		Expect(err).ToNot(HaveOccurred())

		first := a
		first.Description = ptr("node 1")
		first.EntityVersion = a.EntityVersion + 1
		_, err = repo1.UpdateArea(ctx, first, a.EntityVersion)
		Expect(err).ToNot(HaveOccurred())

		second := a
		second.Description = ptr("node 2")
		second.EntityVersion = a.EntityVersion + 1
		_, err = repo2.UpdateArea(ctx, second, a.EntityVersion)
		Expect(err).To(MatchError(ports.ErrConflict))
	})
})
