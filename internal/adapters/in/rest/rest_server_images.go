package rest

import (
	"area-api/internal/adapters/in/rest/openapi" // generated
	"area-api/internal/app/ports"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

const (
	imageFormField = "image_file"
	// multipartOverhead leaves room for boundaries and part headers around the file.
	multipartOverhead = 64 << 10
)

func (s *DefaultRestServer) SetAreaImage(w http.ResponseWriter, r *http.Request, id openapi.AreaIdParam, params openapi.SetAreaImageParams) {
	p, aa, ok := s.begin(w, r, "setAreaImage")
	if !ok {
		return
	}
	view, err := parseView(params.View)
	if err != nil {
		s.done(aa, err)
		HandleParamError(w, r, err)
		return
	}

	maxSize := s.apis.GetAreaConfig().MaxFileSize
	if maxSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)
	}
	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrNotMultipart):
			s.done(aa, ports.ErrInvalidInput)
			writeError(w, http.StatusUnsupportedMediaType, "UnsupportedMediaType", []string{"Content-Type must be multipart/form-data"}, nil)
		case errors.As(err, &tooLarge):
			s.fail(w, r, aa, ports.NewValidationError("imageFile", "file is larger than "+strconv.FormatInt(maxSize, 10)+" bytes", ""))
		case errors.Is(err, http.ErrMissingFile):
			s.fail(w, r, aa, ports.NewValidationError("imageFile", "multipart field "+imageFormField+" is required", ""))
		default:
			s.done(aa, ports.ErrInvalidInput)
			writeError(w, http.StatusBadRequest, "MalformedRequest", []string{fmt.Sprintf("invalid multipart body: %v", err)}, nil)
		}
		return
	}
	defer func() {
		_ = file.Close()
	}()

	area, err := s.apis.SetAreaImage(r.Context(), p, id, header.Filename, file)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, s.renderer(r.Context(), p, view, area).area(area))
}

func (s *DefaultRestServer) GetAreaImage(w http.ResponseWriter, r *http.Request, id openapi.AreaIdParam) {
	p, aa, ok := s.begin(w, r, "getAreaImage")
	if !ok {
		return
	}
	rc, contentType, err := s.apis.GetAreaImage(r.Context(), p, id)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	defer func() {
		_ = rc.Close()
	}()
	s.done(aa, nil)
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	// Stored images are user content: never let them run script on the API origin.
	h.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")
	if contentType == "image/svg+xml" {
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"area-%d.svg\"", id))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Int64("area_id", id).Msg("image download interrupted")
	}
}

func (s *DefaultRestServer) UnsetAreaImage(w http.ResponseWriter, r *http.Request, id openapi.AreaIdParam, params openapi.UnsetAreaImageParams) {
	p, aa, ok := s.begin(w, r, "unsetAreaImage")
	if !ok {
		return
	}
	view, err := parseView(params.View)
	if err != nil {
		s.done(aa, err)
		HandleParamError(w, r, err)
		return
	}
	area, err := s.apis.UnsetAreaImage(r.Context(), p, id)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, s.renderer(r.Context(), p, view, area).area(area))
}
