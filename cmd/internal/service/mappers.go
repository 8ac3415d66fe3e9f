package service

import (
	"net/url"
	"strings"

	"bizindustry/cmd/internal/contract"
	"bizindustry/cmd/internal/domain/entity"
	"bizindustry/cmd/internal/domain/policy"
	"bizindustry/cmd/internal/utils"
	"bizindustry/cmd/internal/utils/apierror"
)

const mailSubjectPrefix = "Contato via Businesses of the Industry - "

// NewHomePage settles the home page. opts is nil when loading failed.
func NewHomePage(opts *contract.HomeOptions, loadErr apierror.ErrorResponse, form *contract.SearchRequest, formErr *apierror.StructuredError, selected string) *contract.HomePage {
	page := &contract.HomePage{
		Page:   contract.NewPage("", "home"),
		Form:   form,
		Errors: formErr,
	}
	if page.Form == nil {
		page.Form = &contract.SearchRequest{Region: entity.RegionGlobal}
	}
	if selected == "" {
		selected = entity.RegionGlobal
	}

	if loadErr != nil {
		page.Fail(apierror.AsView(loadErr))
		return page
	}

	page.Sectors = opts.Sectors
	page.Regions = toRegionTiles(opts.Countries, selected)
	page.Ready()
	return page
}

func toRegionTiles(countries []*entity.Country, selected string) []*contract.RegionTile {
	perRegion := make(map[string]int, len(entity.Regions))
	for _, c := range countries {
		perRegion[c.Region]++
	}

	tiles := make([]*contract.RegionTile, len(entity.Regions))
	for i, region := range entity.Regions {
		count := perRegion[region]
		if region == entity.RegionGlobal {
			count = len(countries)
		}
		tiles[i] = &contract.RegionTile{
			Name:      region,
			Countries: count,
			Selected:  region == selected,
		}
	}
	return tiles
}

func toChips(q *entity.SearchQuery) []*contract.Chip {
	if q == nil {
		return nil
	}

	var chips []*contract.Chip
	if q.Query != "" {
		chips = append(chips, &contract.Chip{Label: "Termo", Value: q.Query})
	}
	if q.Sector != "" {
		chips = append(chips, &contract.Chip{Label: "Setor", Value: q.Sector})
	}
	if q.Region != "" && q.Region != entity.RegionGlobal {
		chips = append(chips, &contract.Chip{Label: "Região", Value: q.Region})
	}
	return chips
}

func toFilterButtons(companies []*entity.Company, current entity.Filter) []*contract.FilterButton {
	counts := policy.CountByFilter(companies)
	buttons := make([]*contract.FilterButton, len(entity.Filters))
	for i, f := range entity.Filters {
		buttons[i] = &contract.FilterButton{
			Value:  f,
			Label:  f.Label(),
			Count:  counts[f],
			Active: f == current,
		}
	}
	return buttons
}

func toCompanyCards(companies []*entity.Company) []*contract.CompanyCard {
	cards := make([]*contract.CompanyCard, len(companies))
	for i, c := range companies {
		status := c.Status()
		cards[i] = &contract.CompanyCard{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Sector:      c.Sector,
			Country:     c.Country,
			Region:      c.Region,
			StatusLabel: status.Label(),
			Active:      status.IsActive(),
		}
	}
	return cards
}

func toCompanyDetail(c *entity.Company) *contract.CompanyDetail {
	status := c.Status()
	detail := &contract.CompanyDetail{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Sector:         c.Sector,
		StatusLabel:    status.Label(),
		Active:         status.IsActive(),
		Founded:        c.Founded,
		Employees:      c.Employees,
		Revenue:        c.Revenue,
		Products:       c.Products,
		Certifications: c.Certifications,
		Location:       companyLocation(c),
		Website:        c.Website,
		WebsiteDisplay: utils.StripScheme(c.Website),
		ContactEmail:   c.ContactEmail,
	}
	if c.ContactEmail != "" {
		detail.MailtoURL = mailtoURL(c.ContactEmail, mailSubjectPrefix+c.Name)
	}
	return detail
}

// mailtoURL encodes spaces as %20, mail clients show a literal "+".
func mailtoURL(email, subject string) string {
	return "mailto:" + email + "?subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
}

// companyLocation prefers the street address, falling back to "country, region".
func companyLocation(c *entity.Company) string {
	if addr := strings.TrimSpace(c.Address); addr != "" {
		return addr
	}

	parts := make([]string, 0, 2)
	for _, p := range []string{c.Country, c.Region} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
