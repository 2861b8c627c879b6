package rest

import (
	"area-api/internal/adapters/in/rest/openapi" // generated
	"net/http"
)

func (s *DefaultRestServer) SaveArea(w http.ResponseWriter, r *http.Request, params openapi.SaveAreaParams) {
	p, aa, ok := s.begin(w, r, "saveArea")
	if !ok {
		return
	}
	view, err := parseView(params.View)
	if err != nil {
		s.done(aa, err)
		HandleParamError(w, r, err)
		return
	}
	var in openapi.SaveAreaJSONRequestBody
	if err := decodeJSON(w, r, &in); err != nil {
		s.done(aa, err)
		return
	}
	area, err := s.apis.SaveArea(r.Context(), p, areaFromRequest(in))
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, s.renderer(r.Context(), p, view, area).area(area))
}

func (s *DefaultRestServer) UpdateArea(w http.ResponseWriter, r *http.Request, params openapi.UpdateAreaParams) {
	p, aa, ok := s.begin(w, r, "updateArea")
	if !ok {
		return
	}
	view, err := parseView(params.View)
	if err != nil {
		s.done(aa, err)
		HandleParamError(w, r, err)
		return
	}
	var in openapi.UpdateAreaJSONRequestBody
	if err := decodeJSON(w, r, &in); err != nil {
		s.done(aa, err)
		return
	}
	area, err := s.apis.UpdateArea(r.Context(), p, areaFromRequest(in))
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, s.renderer(r.Context(), p, view, area).area(area))
}

func (s *DefaultRestServer) FindArea(w http.ResponseWriter, r *http.Request, id openapi.AreaIdParam, params openapi.FindAreaParams) {
	p, aa, ok := s.begin(w, r, "findArea")
	if !ok {
		return
	}
	view, err := parseView(params.View)
	if err != nil {
		s.done(aa, err)
		HandleParamError(w, r, err)
		return
	}
	area, err := s.apis.FindArea(r.Context(), p, id)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, s.renderer(r.Context(), p, view, area).area(area))
}

func (s *DefaultRestServer) DeleteArea(w http.ResponseWriter, r *http.Request, id openapi.AreaIdParam) {
	p, aa, ok := s.begin(w, r, "deleteArea")
	if !ok {
		return
	}
	if err := s.apis.DeleteArea(r.Context(), p, id); err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	w.WriteHeader(http.StatusOK)
}

func (s *DefaultRestServer) FindAllAreas(w http.ResponseWriter, r *http.Request, params openapi.FindAllAreasParams) {
	p, aa, ok := s.begin(w, r, "findAllAreas")
	if !ok {
		return
	}
	view, err := parseView(params.View)
	if err != nil {
		s.done(aa, err)
		HandleParamError(w, r, err)
		return
	}
	areas, err := s.apis.FindAllAreas(r.Context(), p)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, s.renderer(r.Context(), p, view, areas...).list(areas))
}

func (s *DefaultRestServer) FindAllAreasPaginated(w http.ResponseWriter, r *http.Request, params openapi.FindAllAreasPaginatedParams) {
	p, aa, ok := s.begin(w, r, "findAllAreasPaginated")
	if !ok {
		return
	}
	view, err := parseView(params.View)
	if err != nil {
		s.done(aa, err)
		HandleParamError(w, r, err)
		return
	}
	page, err := s.apis.FindAllAreasPaginated(r.Context(), p, deref(params.Delta), deref(params.Page))
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, openapi.AreaPage{
		Results:     s.renderer(r.Context(), p, view, page.Results...).list(page.Results),
		NumPages:    page.NumPages,
		CurrentPage: page.CurrentPage,
		NextPage:    page.NextPage,
		Delta:       page.Delta,
		Total:       ptr(page.Total),
	})
}

func (s *DefaultRestServer) FindAreasByProject(w http.ResponseWriter, r *http.Request, projectId openapi.ProjectIdParam, params openapi.FindAreasByProjectParams) {
	p, aa, ok := s.begin(w, r, "findAreasByProject")
	if !ok {
		return
	}
	view, err := parseView(params.View)
	if err != nil {
		s.done(aa, err)
		HandleParamError(w, r, err)
		return
	}
	areas, err := s.apis.FindAreasByProject(r.Context(), p, projectId)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, s.renderer(r.Context(), p, view, areas...).list(areas))
}

func (s *DefaultRestServer) GetAreaConfig(w http.ResponseWriter, r *http.Request) {
	_, aa, ok := s.begin(w, r, "getAreaConfig")
	if !ok {
		return
	}
	cfg := s.apis.GetAreaConfig()
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, openapi.AreaConfig{
		MaxFileSize:         cfg.MaxFileSize,
		SupportedExtensions: cfg.SupportedExtensions,
	})
}

func (s *DefaultRestServer) GetAreaTree(w http.ResponseWriter, r *http.Request, id openapi.AreaIdParam, params openapi.GetAreaTreeParams) {
	p, aa, ok := s.begin(w, r, "getAreaTree")
	if !ok {
		return
	}
	view, err := parseView(params.View)
	if err != nil {
		s.done(aa, err)
		HandleParamError(w, r, err)
		return
	}
	tree, err := s.apis.GetAreaTree(r.Context(), p, id)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, s.renderer(r.Context(), p, view, tree.Area).tree(tree))
}

func (s *DefaultRestServer) GetAreaPath(w http.ResponseWriter, r *http.Request, id openapi.AreaIdParam, params openapi.GetAreaPathParams) {
	p, aa, ok := s.begin(w, r, "getAreaPath")
	if !ok {
		return
	}
	view, err := parseView(params.View)
	if err != nil {
		s.done(aa, err)
		HandleParamError(w, r, err)
		return
	}
	path, err := s.apis.GetAreaPath(r.Context(), p, id)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, s.renderer(r.Context(), p, view, path...).list(path))
}
