package catalogapi

import "bizindustry/cmd/internal/domain/entity"

// envelope is the {data: ...} wrapper every list and item endpoint uses.
type envelope[T any] struct {
	Data T `json:"data"`
}

// HealthStatus is the body of /api/health, returned as-is.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ListFilters narrows ListIndustries. Empty fields are not sent.
type ListFilters struct {
	Sector  string
	Country string
	Status  string
}

type companyResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Sector         string   `json:"sector"`
	Country        string   `json:"country"`
	Region         string   `json:"region"`
	Founded        int      `json:"founded"`
	Employees      int      `json:"employees"`
	Revenue        string   `json:"revenue"`
	Status         string   `json:"status"`
	Website        string   `json:"website"`
	ContactEmail   string   `json:"contact_email"`
	Address        string   `json:"address"`
	Certifications []string `json:"certifications"`
	Products       []string `json:"products"`
}

func (c *companyResponse) ToDomain() *entity.Company {
	return &entity.Company{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Sector:         c.Sector,
		Country:        c.Country,
		Region:         c.Region,
		Founded:        c.Founded,
		Employees:      c.Employees,
		Revenue:        c.Revenue,
		RawStatus:      c.Status,
		Website:        c.Website,
		ContactEmail:   c.ContactEmail,
		Address:        c.Address,
		Certifications: c.Certifications,
		Products:       c.Products,
	}
}

func toCompanies(rs []*companyResponse) []*entity.Company {
	companies := make([]*entity.Company, 0, len(rs))
	for _, r := range rs {
		if r == nil {
			continue
		}
		companies = append(companies, r.ToDomain())
	}
	return companies
}

type sectorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type countryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

func toSectors(rs []*sectorResponse) []*entity.Sector {
	sectors := make([]*entity.Sector, 0, len(rs))
	for _, r := range rs {
		if r == nil {
			continue
		}
		sectors = append(sectors, &entity.Sector{ID: r.ID, Name: r.Name})
	}
	return sectors
}

func toCountries(rs []*countryResponse) []*entity.Country {
	countries := make([]*entity.Country, 0, len(rs))
	for _, r := range rs {
		if r == nil {
			continue
		}
		countries = append(countries, &entity.Country{ID: r.ID, Name: r.Name, Region: r.Region})
	}
	return countries
}
