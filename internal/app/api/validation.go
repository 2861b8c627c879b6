package api

import (
	"area-api/internal/app/ports"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength              = 255
	maxDescriptionLength       = 3000
	maxAreaConfigurationLength = 64 << 10
)

var markupPatterns = []string{
	"<script", "</script", "javascript:", "vbscript:",
	"onload=", "onerror=", "<iframe", "eval(", "expression(",
}

// containsMarkup reports whether s carries any script or frame injection pattern.
func containsMarkup(s string) bool {
	l := strings.ToLower(s)
	for _, p := range markupPatterns {
		if strings.Contains(l, p) {
			return true
		}
	}
	return false
}

// validateArea checks the area fields and normalizes its view type in place.
func validateArea(area *ports.Area) *ports.ValidationError {
	ve := &ports.ValidationError{}

	switch {
	case strings.TrimSpace(area.Name) == "":
		ve.Add("name", "must not be blank", area.Name)
	case utf8.RuneCountInString(area.Name) > maxNameLength:
		ve.Add("name", "size must be between 1 and "+strconv.Itoa(maxNameLength), truncate(area.Name))
	case containsMarkup(area.Name):
		ve.Add("name", "must not contain markup", area.Name)
	}

	if area.Description != nil {
		d := *area.Description
		if utf8.RuneCountInString(d) > maxDescriptionLength {
			ve.Add("description", "size must be at most "+strconv.Itoa(maxDescriptionLength), truncate(d))
		} else if containsMarkup(d) {
			ve.Add("description", "must not contain markup", d)
		}
	}

	if area.MapInfo != nil && containsMarkup(area.MapInfo.Icon) {
		ve.Add("mapInfo.icon", "must not contain markup", area.MapInfo.Icon)
	}

	vt, err := ports.ParseAreaViewType(string(area.AreaViewType))
	if err != nil {
		ve.Add("areaViewType", "unknown area view type", string(area.AreaViewType))
	} else {
		area.AreaViewType = vt
	}

	if area.AreaConfiguration != nil && len(*area.AreaConfiguration) > maxAreaConfigurationLength {
		ve.Add("areaConfiguration", "size must be at most "+strconv.Itoa(maxAreaConfigurationLength)+" bytes", "")
	}

	if area.ProjectID <= 0 {
		ve.Add("project", "must not be null", strconv.FormatInt(area.ProjectID, 10))
	}
	return ve
}

func validateProject(project ports.Project) *ports.ValidationError {
	ve := &ports.ValidationError{}
	if project.ID <= 0 {
		ve.Add("id", "must be positive", strconv.FormatInt(project.ID, 10))
	}
	if strings.TrimSpace(project.Name) == "" {
		ve.Add("name", "must not be blank", project.Name)
	} else if containsMarkup(project.Name) {
		ve.Add("name", "must not contain markup", project.Name)
	}
	if project.OwnerUserID <= 0 {
		ve.Add("ownerUserId", "must be positive", strconv.FormatInt(project.OwnerUserID, 10))
	}
	return ve
}

func validateDevice(device ports.Device) *ports.ValidationError {
	ve := &ports.ValidationError{}
	if device.ID <= 0 {
		ve.Add("id", "must be positive", strconv.FormatInt(device.ID, 10))
	}
	if strings.TrimSpace(device.DeviceName) == "" {
		ve.Add("deviceName", "must not be blank", device.DeviceName)
	} else if containsMarkup(device.DeviceName) {
		ve.Add("deviceName", "must not contain markup", device.DeviceName)
	}
	if device.ProjectID <= 0 {
		ve.Add("projectId", "must be positive", strconv.FormatInt(device.ProjectID, 10))
	}
	return ve
}

// truncate keeps long rejected values out of error bodies.
func truncate(s string) string {
	const keep = 64
	if utf8.RuneCountInString(s) <= keep {
		return s
	}
	return string([]rune(s)[:keep]) + "..."
}

func duplicateArea(area ports.Area) *ports.DuplicateEntityError {
	parent := ""
	if area.ParentAreaID != nil {
		parent = strconv.FormatInt(*area.ParentAreaID, 10)
	}
	return &ports.DuplicateEntityError{
		Entity: "Area",
		Fields: []ports.FieldError{
			{Field: "name", Message: "must be unique", InvalidValue: area.Name},
			{Field: "project", Message: "must be unique", InvalidValue: strconv.FormatInt(area.ProjectID, 10)},
			{Field: "parentArea", Message: "must be unique", InvalidValue: parent},
		},
	}
}

func duplicateAreaDevice(areaID, deviceID int64) *ports.DuplicateEntityError {
	return &ports.DuplicateEntityError{
		Entity: "AreaDevice",
		Fields: []ports.FieldError{
			{Field: "area", Message: "must be unique", InvalidValue: strconv.FormatInt(areaID, 10)},
			{Field: "device", Message: "must be unique", InvalidValue: strconv.FormatInt(deviceID, 10)},
		},
	}
}
