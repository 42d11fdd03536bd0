package dto

import "github.com/zaheerabbaspac-hue/PAC/internal/entity"

type CreateClassRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type CreateSectionRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// ClassOption is one entry of the flattened class selector. Value is the
// composite "{class}-{section}" key used everywhere a roster subset is
// addressed.
type ClassOption struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	ClassName string `json:"className"`
	Section   string `json:"section"`
}

type RosterResponse struct {
	Selector string           `json:"selector"`
	Students []entity.Profile `json:"students"`
}
