package api

import (
	"area-api/internal/app/ports"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

func (s *DefaultApiServer) SaveArea(ctx context.Context, p ports.Principal, area ports.Area) (ports.Area, error) {
	area.ID = 0
	area.ImagePath = nil

	if ve := validateArea(&area); ve.HasErrors() {
		return ports.Area{}, ve
	}
	if _, err := s.permittedProject(ctx, p, area.ProjectID); err != nil {
		return ports.Area{}, err
	}
	if area.ParentAreaID != nil {
		ve := &ports.ValidationError{}
		if s.checkParent(ctx, area, ve); ve.HasErrors() {
			return ports.Area{}, ve
		}
	}
	if err := s.checkUniqueArea(ctx, area); err != nil {
		return ports.Area{}, err
	}

	saved, err := s.repo.AddArea(ctx, area)
	if err != nil {
		if errors.Is(err, ports.ErrAlreadyExists) {
			return ports.Area{}, duplicateArea(area)
		}
		return ports.Area{}, err
	}
	s.publish(ctx, p, ports.EventAreaCreated, saved, nil)
	return saved, nil
}

func (s *DefaultApiServer) UpdateArea(ctx context.Context, p ports.Principal, area ports.Area) (ports.Area, error) {
	stored, err := s.permittedArea(ctx, p, area.ID)
	if err != nil {
		return ports.Area{}, err
	}
	if area.ProjectID == 0 {
		area.ProjectID = stored.ProjectID
	}

	ve := validateArea(&area)
	if area.ProjectID != stored.ProjectID {
		ve.Add("project", "project of an area cannot be changed", strconv.FormatInt(area.ProjectID, 10))
	}
	if area.ParentAreaID != nil && area.ProjectID == stored.ProjectID {
		s.checkParent(ctx, area, ve)
	}
	if ve.HasErrors() {
		return ports.Area{}, ve
	}
	if area.EntityVersion != stored.EntityVersion {
		return ports.Area{}, fmt.Errorf("area %d has version %d, got %d: %w", area.ID, stored.EntityVersion, area.EntityVersion, ports.ErrConflict)
	}
	if err := s.checkUniqueArea(ctx, area); err != nil {
		return ports.Area{}, err
	}

	area.ImagePath = stored.ImagePath
	area.EntityCreateDate = stored.EntityCreateDate
	area.EntityVersion = stored.EntityVersion + 1
	updated, err := s.repo.UpdateArea(ctx, area, stored.EntityVersion)
	if err != nil {
		if errors.Is(err, ports.ErrAlreadyExists) {
			return ports.Area{}, duplicateArea(area)
		}
		return ports.Area{}, err
	}
	s.publish(ctx, p, ports.EventAreaUpdated, updated, nil)
	return updated, nil
}

// checkParent adds a parentArea entry to ve when the parent is missing,
// belongs to another project, or would close a cycle.
func (s *DefaultApiServer) checkParent(ctx context.Context, area ports.Area, ve *ports.ValidationError) {
	parentID := *area.ParentAreaID
	value := strconv.FormatInt(parentID, 10)
	if area.ID != 0 && parentID == area.ID {
		ve.Add("parentArea", "an area cannot be its own parent", value)
		return
	}
	parent, err := s.repo.GetArea(ctx, parentID)
	if err != nil {
		ve.Add("parentArea", "parent area not found", value)
		return
	}
	if parent.ProjectID != area.ProjectID {
		ve.Add("parentArea", "parent area belongs to another project", value)
		return
	}
	if area.ID == 0 {
		return
	}
	seen := map[int64]bool{parent.ID: true}
	for parent.ParentAreaID != nil {
		if *parent.ParentAreaID == area.ID {
			ve.Add("parentArea", "parent area is an inner area of this area", value)
			return
		}
		if seen[*parent.ParentAreaID] {
			return
		}
		seen[*parent.ParentAreaID] = true
		if parent, err = s.repo.GetArea(ctx, *parent.ParentAreaID); err != nil {
			return
		}
	}
}

func (s *DefaultApiServer) checkUniqueArea(ctx context.Context, area ports.Area) error {
	other, err := s.repo.FindAreaByKey(ctx, area.ProjectID, area.ParentAreaID, area.Name)
	if err == nil && other.ID != area.ID {
		return duplicateArea(area)
	}
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return err
	}
	return nil
}

func (s *DefaultApiServer) FindArea(ctx context.Context, p ports.Principal, id int64) (ports.Area, error) {
	return s.permittedArea(ctx, p, id)
}

func (s *DefaultApiServer) DeleteArea(ctx context.Context, p ports.Principal, id int64) error {
	area, err := s.permittedArea(ctx, p, id)
	if err != nil {
		return err
	}
	doomed, err := s.subtreePostOrder(ctx, area)
	if err != nil {
		return err
	}
	for _, a := range doomed {
		if err := s.repo.DeleteArea(ctx, a.ID); err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		s.dropImage(ctx, a)
		s.publish(ctx, p, ports.EventAreaDeleted, a, nil)
	}
	return nil
}

// subtreePostOrder lists inner areas before the areas that contain them, root last.
func (s *DefaultApiServer) subtreePostOrder(ctx context.Context, root ports.Area) ([]ports.Area, error) {
	var out []ports.Area
	seen := map[int64]bool{}
	var walk func(a ports.Area) error
	walk = func(a ports.Area) error {
		if seen[a.ID] {
			return nil
		}
		seen[a.ID] = true
		children, err := s.repo.ListChildAreas(ctx, a.ID)
		if err != nil {
			return err
		}
		for _, c := range children {
			if err := walk(c); err != nil {
				return err
			}
		}
		out = append(out, a)
		return nil
	}
	return out, walk(root)
}

// dropImage removes the stored image of an area that no longer exists.
func (s *DefaultApiServer) dropImage(ctx context.Context, a ports.Area) {
	if !a.HasImage() {
		return
	}
	if err := s.images.DeleteAreaImage(*a.ImagePath); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("area_id", a.ID).Str("image", *a.ImagePath).Msg("cannot remove area image")
	}
}

func (s *DefaultApiServer) FindAllAreas(ctx context.Context, p ports.Principal) ([]ports.Area, error) {
	q, err := s.permittedAreaQuery(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.repo.ListAreas(ctx, q)
}

func (s *DefaultApiServer) FindAllAreasPaginated(ctx context.Context, p ports.Principal, delta, page int) (ports.Page[ports.Area], error) {
	q, err := s.permittedAreaQuery(ctx, p)
	if err != nil {
		return ports.Page[ports.Area]{}, err
	}
	total, err := s.repo.CountAreas(ctx, q)
	if err != nil {
		return ports.Page[ports.Area]{}, err
	}
	w := paginate(total, delta, page)
	results := []ports.Area{}
	if !w.Empty {
		q.Offset, q.Limit = w.Offset, w.Delta
		if results, err = s.repo.ListAreas(ctx, q); err != nil {
			return ports.Page[ports.Area]{}, err
		}
	}
	return ports.Page[ports.Area]{
		Results:     results,
		NumPages:    w.NumPages,
		CurrentPage: w.Page,
		NextPage:    w.NextPage,
		Delta:       w.Delta,
		Total:       total,
	}, nil
}

func (s *DefaultApiServer) FindAreasByProject(ctx context.Context, p ports.Principal, projectID int64) ([]ports.Area, error) {
	if _, err := s.permittedProject(ctx, p, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListAreas(ctx, ports.AreaQuery{ProjectIDs: []int64{projectID}})
}

func (s *DefaultApiServer) GetAreaConfig() ports.AreaConfig {
	return s.images.Config()
}

func (s *DefaultApiServer) GetAreaTree(ctx context.Context, p ports.Principal, id int64) (ports.AreaTree, error) {
	area, err := s.permittedArea(ctx, p, id)
	if err != nil {
		return ports.AreaTree{}, err
	}
	return s.buildTree(ctx, area, map[int64]bool{})
}

func (s *DefaultApiServer) buildTree(ctx context.Context, area ports.Area, seen map[int64]bool) (ports.AreaTree, error) {
	seen[area.ID] = true
	tree := ports.AreaTree{Area: area, InnerAreas: []ports.AreaTree{}}
	children, err := s.repo.ListChildAreas(ctx, area.ID)
	if err != nil {
		return ports.AreaTree{}, err
	}
	for _, c := range children {
		if seen[c.ID] {
			continue
		}
		sub, err := s.buildTree(ctx, c, seen)
		if err != nil {
			return ports.AreaTree{}, err
		}
		tree.InnerAreas = append(tree.InnerAreas, sub)
	}
	return tree, nil
}

func (s *DefaultApiServer) GetAreaPath(ctx context.Context, p ports.Principal, id int64) ([]ports.Area, error) {
	area, err := s.permittedArea(ctx, p, id)
	if err != nil {
		return nil, err
	}
	path := []ports.Area{area}
	seen := map[int64]bool{area.ID: true}
	for area.ParentAreaID != nil && !seen[*area.ParentAreaID] {
		seen[*area.ParentAreaID] = true
		if area, err = s.repo.GetArea(ctx, *area.ParentAreaID); err != nil {
			return nil, fmt.Errorf("path of area %d: %w", id, err)
		}
		path = append(path, area)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
