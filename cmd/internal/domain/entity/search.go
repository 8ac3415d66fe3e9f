package entity

import "strings"

const RegionGlobal = "Global"

// Regions lists the quick-select regions in display order.
var Regions = []string{
	RegionGlobal,
	"América do Sul",
	"América do Norte",
	"Europa",
	"Ásia",
	"África",
	"Oceania",
}

func IsKnownRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}

// SearchQuery describes the search that produced a result set. It renders
// the filter chips on the results page. Revision identifies the stored
// search and is assigned when the handoff is saved.
type SearchQuery struct {
	Query    string `json:"query"`
	Sector   string `json:"sector"`
	Region   string `json:"region"`
	Revision int64  `json:"revision,omitempty"`
}

type Filter string

const (
	FilterAll     Filter = "all"
	FilterActive  Filter = "active"
	FilterSeeking Filter = "seeking"
)

var Filters = []Filter{FilterAll, FilterActive, FilterSeeking}

// ParseFilter never fails, unknown values select every company.
func ParseFilter(raw string) Filter {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active", "ativo":
		return FilterActive
	case "seeking":
		return FilterSeeking
	default:
		return FilterAll
	}
}

func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Disponíveis para Exportação"
	case FilterSeeking:
		return "Buscando Parceiros"
	default:
		return "Todas"
	}
}
