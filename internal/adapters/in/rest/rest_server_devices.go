package rest

import (
	"area-api/internal/adapters/in/rest/openapi" // generated
	"area-api/internal/app/ports"
	"errors"
	"fmt"
	"net/http"
)

func (s *DefaultRestServer) ListDevices(w http.ResponseWriter, r *http.Request, params openapi.ListDevicesParams) {
	p, aa, ok := s.begin(w, r, "listDevices")
	if !ok {
		return
	}
	items, err := s.apis.ListDevices(r.Context(), p, deref(params.ProjectId))
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	out := make([]openapi.Device, 0, len(items))
	for _, d := range items {
		out = append(out, deviceResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *DefaultRestServer) GetDevice(w http.ResponseWriter, r *http.Request, deviceId openapi.DeviceIdParam) {
	p, aa, ok := s.begin(w, r, "getDevice")
	if !ok {
		return
	}
	d, err := s.apis.GetDevice(r.Context(), p, deviceId)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, deviceResponse(d))
}

func (s *DefaultRestServer) EnsureDevice(w http.ResponseWriter, r *http.Request, deviceId openapi.DeviceIdParam) {
	p, aa, ok := s.begin(w, r, "ensureDevice")
	if !ok {
		return
	}
	var in openapi.EnsureDeviceJSONRequestBody
	if err := decodeJSON(w, r, &in); err != nil {
		s.done(aa, err)
		return
	}

	d, created, err := s.apis.EnsureDevice(r.Context(), p, ports.Device{
		ID:          deviceId,
		DeviceName:  in.DeviceName,
		Description: in.Description,
		ProjectID:   in.ProjectId,
	})
	if err != nil {
		if errors.Is(err, ports.ErrConflict) {
			s.done(aa, err)
			writeError(w, http.StatusConflict, "DuplicateEntity", []string{"device exists with different attributes"}, nil)
			return
		}
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)

	w.Header().Set("Location", fmt.Sprintf("/api/devices/%d", d.ID))
	if created {
		writeJSON(w, http.StatusCreated, deviceResponse(d))
	} else {
		writeJSON(w, http.StatusOK, deviceResponse(d))
	}
}

func (s *DefaultRestServer) DeleteDevice(w http.ResponseWriter, r *http.Request, deviceId openapi.DeviceIdParam) {
	p, aa, ok := s.begin(w, r, "deleteDevice")
	if !ok {
		return
	}
	if err := s.apis.DeleteDevice(r.Context(), p, deviceId); err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	w.WriteHeader(http.StatusNoContent)
}
