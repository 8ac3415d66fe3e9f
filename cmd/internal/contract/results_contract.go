package contract

import "bizindustry/cmd/internal/domain/entity"

const NoCompaniesMessage = "Nenhuma empresa encontrada com os filtros atuais."

type ResultsRequest struct {
	Filter string `query:"filter"`
}

type Chip struct {
	Label string
	Value string
}

type FilterButton struct {
	Value  entity.Filter
	Label  string
	Count  int
	Active bool
}

type CompanyCard struct {
	ID          string
	Name        string
	Description string
	Sector      string
	Country     string
	Region      string
	StatusLabel string
	Active      bool
}

type ResultsPage struct {
	Page
	Filter     entity.Filter
	FromSearch bool
	SearchID   string
	Chips      []*Chip
	Filters    []*FilterButton
	Cards      []*CompanyCard
}

func (r *ResultsPage) Empty() bool {
	return len(r.Cards) == 0
}

func (r *ResultsPage) EmptyMessage() string {
	return NoCompaniesMessage
}
