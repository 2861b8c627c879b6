package api_test

import (
	"area-api/internal/app/ports"
	"bytes"
	"context"
	"errors"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Area images", func() {
	var (
		s    ports.ApiServer
		ctx  context.Context
		area ports.Area
	)

	pngData := []byte("\x89PNG\r\n\x1a\nfake-image")

	readImage := func(id int64) ([]byte, string) {
		rc, contentType, err := s.GetAreaImage(ctx, owner, id)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = rc.Close() }()
		data, err := io.ReadAll(rc)
		Expect(err).NotTo(HaveOccurred())
		return data, contentType
	}

	BeforeEach(func() {
		s = newTestServerFromConfig(TestConfigPath)
		ctx = context.Background()
		area = mustSaveArea(s, "Floor plan", 1, nil)
	})

	It("stores and serves an image", func() {
		updated, err := s.SetAreaImage(ctx, owner, area.ID, "plan.PNG", bytes.NewReader(pngData))
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.ImagePath).NotTo(BeNil())
		Expect(updated.EntityVersion).To(Equal(int64(2)))

		data, contentType := readImage(area.ID)
		Expect(data).To(Equal(pngData))
		Expect(contentType).To(Equal("image/png"))
	})

	It("replaces a previous image", func() {
		_, err := s.SetAreaImage(ctx, owner, area.ID, "old.png", bytes.NewReader(pngData))
		Expect(err).NotTo(HaveOccurred())

		svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
		updated, err := s.SetAreaImage(ctx, owner, area.ID, "new.svg", bytes.NewReader(svg))
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.EntityVersion).To(Equal(int64(3)))

		data, contentType := readImage(area.ID)
		Expect(data).To(Equal(svg))
		Expect(contentType).To(HavePrefix("image/svg+xml"))
	})

	It("rejects unsupported extensions", func() {
		_, err := s.SetAreaImage(ctx, owner, area.ID, "plan.gif", bytes.NewReader(pngData))
		var ve *ports.ValidationError
		Expect(errors.As(err, &ve)).To(BeTrue())
		Expect(ve.Fields[0].Field).To(Equal("imageFile"))
	})

	It("rejects files over the size limit", func() {
		_, err := s.SetAreaImage(ctx, owner, area.ID, "big.png", bytes.NewReader(make([]byte, 4097)))
		var ve *ports.ValidationError
		Expect(errors.As(err, &ve)).To(BeTrue())
		Expect(ve.Fields[0].Field).To(Equal("imageFile"))
	})

	It("accepts a file of exactly the size limit", func() {
		_, err := s.SetAreaImage(ctx, owner, area.ID, "edge.png", bytes.NewReader(make([]byte, 4096)))
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects empty files", func() {
		_, err := s.SetAreaImage(ctx, owner, area.ID, "empty.png", bytes.NewReader(nil))
		Expect(errors.Is(err, ports.ErrInvalidInput)).To(BeTrue())
	})

	It("keeps the image across area updates", func() {
		withImage, err := s.SetAreaImage(ctx, owner, area.ID, "plan.png", bytes.NewReader(pngData))
		Expect(err).NotTo(HaveOccurred())

		withImage.ImagePath = nil
		withImage.Name = "Floor plan v2"
		updated, err := s.UpdateArea(ctx, owner, withImage)
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.ImagePath).NotTo(BeNil())

		data, _ := readImage(area.ID)
		Expect(data).To(Equal(pngData))
	})

	It("unsets the image", func() {
		_, err := s.SetAreaImage(ctx, owner, area.ID, "plan.png", bytes.NewReader(pngData))
		Expect(err).NotTo(HaveOccurred())

		updated, err := s.UnsetAreaImage(ctx, owner, area.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.ImagePath).To(BeNil())

		_, _, err = s.GetAreaImage(ctx, owner, area.ID)
		Expect(errors.Is(err, ports.ErrNotFound)).To(BeTrue())

		_, err = s.UnsetAreaImage(ctx, owner, area.ID)
		Expect(errors.Is(err, ports.ErrNotFound)).To(BeTrue())
	})

	It("returns not found for areas without image", func() {
		_, _, err := s.GetAreaImage(ctx, owner, area.ID)
		Expect(errors.Is(err, ports.ErrNotFound)).To(BeTrue())
	})

	It("forbids strangers", func() {
		_, err := s.SetAreaImage(ctx, stranger, area.ID, "plan.png", bytes.NewReader(pngData))
		Expect(errors.Is(err, ports.ErrForbidden)).To(BeTrue())

		_, _, err = s.GetAreaImage(ctx, stranger, area.ID)
		Expect(errors.Is(err, ports.ErrForbidden)).To(BeTrue())

		_, err = s.UnsetAreaImage(ctx, stranger, area.ID)
		Expect(errors.Is(err, ports.ErrForbidden)).To(BeTrue())
	})
})
