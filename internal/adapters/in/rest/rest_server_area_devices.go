package rest

import (
	"area-api/internal/adapters/in/rest/openapi" // generated
	"net/http"
)

func (s *DefaultRestServer) AddAreaDevice(w http.ResponseWriter, r *http.Request, id openapi.AreaIdParam) {
	p, aa, ok := s.begin(w, r, "addAreaDevice")
	if !ok {
		return
	}
	var in openapi.AddAreaDeviceJSONRequestBody
	if err := decodeJSON(w, r, &in); err != nil {
		s.done(aa, err)
		return
	}
	ad, err := s.apis.AddAreaDevice(r.Context(), p, id, in.DeviceId)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, areaDeviceResponse(ad))
}

func (s *DefaultRestServer) GetAreaDeviceList(w http.ResponseWriter, r *http.Request, id openapi.AreaIdParam) {
	p, aa, ok := s.begin(w, r, "getAreaDeviceList")
	if !ok {
		return
	}
	items, err := s.apis.GetAreaDeviceList(r.Context(), p, id)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	out := make([]openapi.AreaDevice, 0, len(items))
	for _, ad := range items {
		out = append(out, areaDeviceResponse(ad))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *DefaultRestServer) RemoveAreaDevice(w http.ResponseWriter, r *http.Request, id openapi.AreaIdParam, areaDeviceId openapi.AreaDeviceIdParam) {
	p, aa, ok := s.begin(w, r, "removeAreaDevice")
	if !ok {
		return
	}
	if err := s.apis.RemoveAreaDevice(r.Context(), p, id, areaDeviceId); err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	w.WriteHeader(http.StatusOK)
}
