package api_test

import (
	"area-api/internal/app/ports"
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Projects and devices", func() {
	var (
		s   ports.ApiServer
		ctx context.Context
	)

	BeforeEach(func() {
		s = newTestServerFromConfig(TestConfigPath)
		ctx = context.Background()
	})

	Describe("projects", func() {
		It("lists only accessible projects", func() {
			mine, err := s.ListProjects(ctx, owner)
			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(HaveLen(1))
			Expect(mine[0].Name).To(Equal("plant-a"))

			all, err := s.ListProjects(ctx, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
		})

		It("gets a project", func() {
			pr, err := s.GetProject(ctx, owner, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(pr.OwnerUserID).To(Equal(int64(1)))

			_, err = s.GetProject(ctx, owner, 2)
			Expect(errors.Is(err, ports.ErrForbidden)).To(BeTrue())

			_, err = s.GetProject(ctx, owner, 999)
			Expect(errors.Is(err, ports.ErrNotFound)).To(BeTrue())
		})

		It("ensures projects idempotently", func() {
			pr, created, err := s.EnsureProject(ctx, owner, ports.Project{ID: 1, Name: "plant-a", OwnerUserID: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
			Expect(pr.ID).To(Equal(int64(1)))

			pr, created, err = s.EnsureProject(ctx, admin, ports.Project{ID: 3, Name: "plant-c", OwnerUserID: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())
			Expect(pr.EntityVersion).To(Equal(int64(1)))

			_, created, err = s.EnsureProject(ctx, owner, ports.Project{ID: 3, Name: "plant-c", OwnerUserID: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
		})

		It("reports conflicting project data", func() {
			_, _, err := s.EnsureProject(ctx, owner, ports.Project{ID: 1, Name: "renamed", OwnerUserID: 1})
			Expect(errors.Is(err, ports.ErrConflict)).To(BeTrue())
		})

		It("lets only admins register new projects", func() {
			_, _, err := s.EnsureProject(ctx, owner, ports.Project{ID: 3, Name: "plant-c", OwnerUserID: 1})
			Expect(errors.Is(err, ports.ErrForbidden)).To(BeTrue())

			_, _, err = s.EnsureProject(ctx, owner, ports.Project{ID: 3, Name: "plant-c", OwnerUserID: 2})
			Expect(errors.Is(err, ports.ErrForbidden)).To(BeTrue())

			_, err = s.GetProject(ctx, admin, 3)
			Expect(errors.Is(err, ports.ErrNotFound)).To(BeTrue())
		})

		It("validates projects", func() {
			_, _, err := s.EnsureProject(ctx, owner, ports.Project{ID: 0, Name: "", OwnerUserID: 0})
			var ve *ports.ValidationError
			Expect(errors.As(err, &ve)).To(BeTrue())
			Expect(ve.Fields).To(HaveLen(3))
		})

		It("updates a project", func() {
			pr, err := s.UpdateProject(ctx, owner, 1, func(p ports.Project) (ports.Project, error) {
				p.Name = "plant-a2"
				p.Description = ptr("renamed")
				return p, nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(pr.Name).To(Equal("plant-a2"))
			Expect(pr.EntityVersion).To(Equal(int64(2)))

			stored, err := s.GetProject(ctx, owner, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(*stored.Description).To(Equal("renamed"))
		})

		It("forbids handing a project over without admin rights", func() {
			_, err := s.UpdateProject(ctx, owner, 1, func(p ports.Project) (ports.Project, error) {
				p.OwnerUserID = 2
				return p, nil
			})
			Expect(errors.Is(err, ports.ErrForbidden)).To(BeTrue())

			pr, err := s.UpdateProject(ctx, admin, 1, func(p ports.Project) (ports.Project, error) {
				p.OwnerUserID = 2
				return p, nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(pr.OwnerUserID).To(Equal(int64(2)))
		})

		It("propagates mutate errors", func() {
			boom := errors.New("boom")
			_, err := s.UpdateProject(ctx, owner, 1, func(p ports.Project) (ports.Project, error) {
				return p, boom
			})
			Expect(err).To(MatchError(boom))
		})

		It("deletes a project with its areas", func() {
			root := mustSaveArea(s, "Root", 1, nil)
			mustSaveArea(s, "Leaf", 1, &root.ID)

			Expect(s.DeleteProject(ctx, stranger, 1)).To(MatchError(ports.ErrForbidden))
			Expect(s.DeleteProject(ctx, owner, 1)).To(Succeed())

			_, err := s.FindArea(ctx, admin, root.ID)
			Expect(errors.Is(err, ports.ErrNotFound)).To(BeTrue())
			_, err = s.GetDevice(ctx, admin, 100)
			Expect(errors.Is(err, ports.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("devices", func() {
		It("lists devices of accessible projects", func() {
			mine, err := s.ListDevices(ctx, owner, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(HaveLen(2))

			one, err := s.ListDevices(ctx, owner, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(one).To(HaveLen(2))

			_, err = s.ListDevices(ctx, owner, 2)
			Expect(errors.Is(err, ports.ErrForbidden)).To(BeTrue())

			all, err := s.ListDevices(ctx, admin, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))
		})

		It("gets a device", func() {
			d, err := s.GetDevice(ctx, owner, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.DeviceName).To(Equal("thermo-1"))

			_, err = s.GetDevice(ctx, owner, 200)
			Expect(errors.Is(err, ports.ErrForbidden)).To(BeTrue())

			_, err = s.GetDevice(ctx, owner, 999)
			Expect(errors.Is(err, ports.ErrNotFound)).To(BeTrue())
		})

		It("ensures devices", func() {
			_, created, err := s.EnsureDevice(ctx, owner, ports.Device{ID: 102, DeviceName: "thermo-3", ProjectID: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			_, created, err = s.EnsureDevice(ctx, owner, ports.Device{ID: 102, DeviceName: "thermo-3", ProjectID: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())

			_, _, err = s.EnsureDevice(ctx, owner, ports.Device{ID: 102, DeviceName: "thermo-x", ProjectID: 1})
			Expect(errors.Is(err, ports.ErrConflict)).To(BeTrue())

			_, _, err = s.EnsureDevice(ctx, owner, ports.Device{ID: 201, DeviceName: "intruder", ProjectID: 2})
			Expect(errors.Is(err, ports.ErrForbidden)).To(BeTrue())

			_, _, err = s.EnsureDevice(ctx, owner, ports.Device{ID: 103, DeviceName: "", ProjectID: 1})
			Expect(errors.Is(err, ports.ErrInvalidInput)).To(BeTrue())
		})

		It("deletes devices", func() {
			Expect(s.DeleteDevice(ctx, stranger, 100)).To(MatchError(ports.ErrForbidden))
			Expect(s.DeleteDevice(ctx, owner, 100)).To(Succeed())
			Expect(s.DeleteDevice(ctx, owner, 100)).To(MatchError(ports.ErrNotFound))
		})
	})
})
