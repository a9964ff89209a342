package entities

import "fmt"

// ProjectType selects the coefficient table used for an estimate.
type ProjectType string

const (
	ProjectTypeResidential    ProjectType = "residential"
	ProjectTypeCommercial     ProjectType = "commercial"
	ProjectTypeIndustrial     ProjectType = "industrial"
	ProjectTypeInfrastructure ProjectType = "infrastructure"
)

// ProjectTypes lists every supported project type in display order.
func ProjectTypes() []ProjectType {
	return []ProjectType{
		ProjectTypeResidential,
		ProjectTypeCommercial,
		ProjectTypeIndustrial,
		ProjectTypeInfrastructure,
	}
}

func (p ProjectType) IsValid() bool {
	switch p {
	case ProjectTypeResidential, ProjectTypeCommercial, ProjectTypeIndustrial, ProjectTypeInfrastructure:
		return true
	}
	return false
}

func (p ProjectType) String() string { return string(p) }

// ParseProjectType converts raw input to a ProjectType. Matching is exact.
func ParseProjectType(raw string) (ProjectType, error) {
	p := ProjectType(raw)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown project type %q", raw)
	}
	return p, nil
}
