package rest

import (
	"area-api/internal/adapters/in/rest/openapi" // generated
	"area-api/internal/app/ports"
	"context"
	"fmt"
)

func parseView(v *openapi.ViewParam) (openapi.ViewParam, error) {
	if v == nil || *v == "" {
		return openapi.ViewParamPublic, nil
	}
	switch *v {
	case openapi.ViewParamCompact, openapi.ViewParamPublic, openapi.ViewParamExtended:
		return *v, nil
	default:
		return "", fmt.Errorf("unknown view %q, expected compact, public or extended: %w", *v, ports.ErrInvalidInput)
	}
}

// areaRenderer shapes areas for one view, resolving parent and project names on demand.
type areaRenderer struct {
	ctx      context.Context
	apis     ports.ApiServer
	p        ports.Principal
	view     openapi.ViewParam
	areas    map[int64]string
	projects map[int64]string
}

func (s *DefaultRestServer) renderer(ctx context.Context, p ports.Principal, view openapi.ViewParam, known ...ports.Area) *areaRenderer {
	rd := &areaRenderer{
		ctx:      ctx,
		apis:     s.apis,
		p:        p,
		view:     view,
		areas:    make(map[int64]string, len(known)),
		projects: map[int64]string{},
	}
	for _, a := range known {
		rd.areas[a.ID] = a.Name
	}
	return rd
}

func (rd *areaRenderer) areaName(id int64) *string {
	if name, ok := rd.areas[id]; ok {
		return &name
	}
	a, err := rd.apis.FindArea(rd.ctx, rd.p, id)
	if err != nil {
		return nil
	}
	rd.areas[id] = a.Name
	return &a.Name
}

func (rd *areaRenderer) projectName(id int64) *string {
	if name, ok := rd.projects[id]; ok {
		return &name
	}
	pr, err := rd.apis.GetProject(rd.ctx, rd.p, id)
	if err != nil {
		return nil
	}
	rd.projects[id] = pr.Name
	return &pr.Name
}

func (rd *areaRenderer) area(a ports.Area) openapi.Area {
	out := openapi.Area{
		Id:            ptr(a.ID),
		Name:          a.Name,
		Description:   a.Description,
		EntityVersion: ptr(a.EntityVersion),
	}
	if rd.view == openapi.ViewParamCompact {
		return out
	}

	if a.MapInfo != nil {
		out.MapInfo = &openapi.MapInfo{
			X:    ptr(a.MapInfo.X),
			Y:    ptr(a.MapInfo.Y),
			Z:    ptr(a.MapInfo.Z),
			Icon: ptr(a.MapInfo.Icon),
		}
	}
	out.AreaViewType = ptr(openapi.AreaAreaViewType(a.AreaViewType))
	out.ImagePath = a.ImagePath
	if a.ParentAreaID != nil {
		out.ParentArea = &openapi.AreaRef{Id: *a.ParentAreaID, Name: rd.areaName(*a.ParentAreaID)}
	}
	out.Project = &openapi.ProjectRef{Id: a.ProjectID}
	if rd.view == openapi.ViewParamPublic {
		return out
	}

	out.AreaConfiguration = a.AreaConfiguration
	out.Project.Name = rd.projectName(a.ProjectID)
	out.EntityCreateDate = ptr(a.EntityCreateDate)
	out.EntityModifyDate = ptr(a.EntityModifyDate)
	return out
}

func (rd *areaRenderer) list(areas []ports.Area) []openapi.Area {
	out := make([]openapi.Area, 0, len(areas))
	for _, a := range areas {
		out = append(out, rd.area(a))
	}
	return out
}

func (rd *areaRenderer) tree(t ports.AreaTree) openapi.AreaTree {
	a := rd.area(t.Area)
	out := openapi.AreaTree{
		AreaConfiguration: a.AreaConfiguration,
		Description:       a.Description,
		EntityCreateDate:  a.EntityCreateDate,
		EntityModifyDate:  a.EntityModifyDate,
		EntityVersion:     a.EntityVersion,
		Id:                a.Id,
		ImagePath:         a.ImagePath,
		InnerAreas:        make([]openapi.AreaTree, 0, len(t.InnerAreas)),
		MapInfo:           a.MapInfo,
		Name:              a.Name,
		ParentArea:        a.ParentArea,
		Project:           a.Project,
	}
	if a.AreaViewType != nil {
		out.AreaViewType = ptr(openapi.AreaTreeAreaViewType(*a.AreaViewType))
	}
	for _, inner := range t.InnerAreas {
		out.InnerAreas = append(out.InnerAreas, rd.tree(inner))
	}
	return out
}

// areaFromRequest maps a request body onto the domain area; references travel as {id} objects.
func areaFromRequest(in openapi.Area) ports.Area {
	a := ports.Area{
		Name:              in.Name,
		Description:       in.Description,
		AreaConfiguration: in.AreaConfiguration,
	}
	if in.Id != nil {
		a.ID = *in.Id
	}
	if in.EntityVersion != nil {
		a.EntityVersion = *in.EntityVersion
	}
	if in.MapInfo != nil {
		a.MapInfo = &ports.MapInfo{
			X:    deref(in.MapInfo.X),
			Y:    deref(in.MapInfo.Y),
			Z:    deref(in.MapInfo.Z),
			Icon: deref(in.MapInfo.Icon),
		}
	}
	if in.AreaViewType != nil {
		a.AreaViewType = ports.AreaViewType(*in.AreaViewType)
	}
	if in.ParentArea != nil {
		a.ParentAreaID = ptr(in.ParentArea.Id)
	}
	if in.Project != nil {
		a.ProjectID = in.Project.Id
	}
	return a
}

func projectResponse(p ports.Project) openapi.Project {
	return openapi.Project{
		Id:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		OwnerUserId:      p.OwnerUserID,
		EntityVersion:    p.EntityVersion,
		EntityCreateDate: ptr(p.EntityCreateDate),
		EntityModifyDate: ptr(p.EntityModifyDate),
	}
}

func deviceResponse(d ports.Device) openapi.Device {
	return openapi.Device{
		Id:               d.ID,
		DeviceName:       d.DeviceName,
		Description:      d.Description,
		ProjectId:        d.ProjectID,
		EntityVersion:    d.EntityVersion,
		EntityCreateDate: ptr(d.EntityCreateDate),
		EntityModifyDate: ptr(d.EntityModifyDate),
	}
}

func areaDeviceResponse(ad ports.AreaDevice) openapi.AreaDevice {
	return openapi.AreaDevice{Id: ad.ID, AreaId: ad.AreaID, DeviceId: ad.DeviceID}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
