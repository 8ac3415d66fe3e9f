package contract

import (
	"bizindustry/cmd/internal/domain/entity"
	"bizindustry/cmd/internal/utils/apierror"
)

type SearchRequest struct {
	Query  string `form:"query" validate:"max=120"`
	Sector string `form:"sector" validate:"max=80"`
	Region string `form:"region" validate:"region"`
}

// Descriptor returns the query as it is stored for the results page.
func (r *SearchRequest) Descriptor() *entity.SearchQuery {
	region := r.Region
	if region == "" {
		region = entity.RegionGlobal
	}
	return &entity.SearchQuery{Query: r.Query, Sector: r.Sector, Region: region}
}

type ExploreRequest struct {
	Region string `form:"region" validate:"required,region"`
}

type HomeOptions struct {
	Sectors   []*entity.Sector
	Countries []*entity.Country
}

type RegionTile struct {
	Name      string
	Countries int
	Selected  bool
}

type HomePage struct {
	Page
	Sectors []*entity.Sector
	Regions []*RegionTile
	Form    *SearchRequest
	Errors  *apierror.StructuredError
}

func (h *HomePage) FieldError(field string) string {
	if h.Errors == nil {
		return ""
	}
	return h.Errors.First(field)
}
