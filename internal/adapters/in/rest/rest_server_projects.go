package rest

import (
	"area-api/internal/adapters/in/rest/openapi" // generated
	"area-api/internal/app/ports"
	"errors"
	"fmt"
	"net/http"
)

func (s *DefaultRestServer) ListProjects(w http.ResponseWriter, r *http.Request) {
	p, aa, ok := s.begin(w, r, "listProjects")
	if !ok {
		return
	}
	items, err := s.apis.ListProjects(r.Context(), p)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	out := make([]openapi.Project, 0, len(items))
	for _, pr := range items {
		out = append(out, projectResponse(pr))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *DefaultRestServer) GetProject(w http.ResponseWriter, r *http.Request, projectId openapi.ProjectIdParam) {
	p, aa, ok := s.begin(w, r, "getProject")
	if !ok {
		return
	}
	pr, err := s.apis.GetProject(r.Context(), p, projectId)
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, projectResponse(pr))
}

func (s *DefaultRestServer) EnsureProject(w http.ResponseWriter, r *http.Request, projectId openapi.ProjectIdParam) {
	p, aa, ok := s.begin(w, r, "ensureProject")
	if !ok {
		return
	}
	var in openapi.EnsureProjectJSONRequestBody
	if err := decodeJSON(w, r, &in); err != nil {
		s.done(aa, err)
		return
	}

	pr, created, err := s.apis.EnsureProject(r.Context(), p, ports.Project{
		ID:          projectId,
		Name:        in.Name,
		Description: in.Description,
		OwnerUserID: in.OwnerUserId,
	})
	if err != nil {
		if errors.Is(err, ports.ErrConflict) {
			s.done(aa, err)
			writeError(w, http.StatusConflict, "DuplicateEntity", []string{"project exists with different attributes"}, nil)
			return
		}
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)

	w.Header().Set("Location", fmt.Sprintf("/api/projects/%d", pr.ID))
	if created {
		writeJSON(w, http.StatusCreated, projectResponse(pr))
	} else {
		writeJSON(w, http.StatusOK, projectResponse(pr))
	}
}

func (s *DefaultRestServer) UpdateProject(w http.ResponseWriter, r *http.Request, projectId openapi.ProjectIdParam) {
	p, aa, ok := s.begin(w, r, "updateProject")
	if !ok {
		return
	}
	var in openapi.UpdateProjectJSONRequestBody
	if err := decodeJSON(w, r, &in); err != nil {
		s.done(aa, err)
		return
	}

	pr, err := s.apis.UpdateProject(r.Context(), p, projectId, func(project ports.Project) (ports.Project, error) {
		if in.Name != nil {
			project.Name = *in.Name
		}
		if in.Description != nil {
			project.Description = in.Description
		}
		if in.OwnerUserId != nil {
			project.OwnerUserID = *in.OwnerUserId
		}
		return project, nil
	})
	if err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	writeJSON(w, http.StatusOK, projectResponse(pr))
}

func (s *DefaultRestServer) DeleteProject(w http.ResponseWriter, r *http.Request, projectId openapi.ProjectIdParam) {
	p, aa, ok := s.begin(w, r, "deleteProject")
	if !ok {
		return
	}
	if err := s.apis.DeleteProject(r.Context(), p, projectId); err != nil {
		s.fail(w, r, aa, err)
		return
	}
	s.done(aa, nil)
	w.WriteHeader(http.StatusNoContent)
}
