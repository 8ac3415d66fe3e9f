package entity

import "strings"

// Status is the normalized export status of a company.
//
// The catalog returns it as free text ("Ativo", "Seeking", ...). Only a
// case-insensitive "ativo", with nothing around it, means the company is
// actively exporting. Anything else is treated as looking for partners.
type Status string

const (
	StatusActive  Status = "active"
	StatusSeeking Status = "seeking"
)

const activeStatusText = "ativo"

func ParseStatus(raw string) Status {
	if strings.EqualFold(raw, activeStatusText) {
		return StatusActive
	}
	return StatusSeeking
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

// Label is the text shown on the status badge.
func (s Status) Label() string {
	if s.IsActive() {
		return "Disponível para Exportação"
	}
	return "Buscando Parceiros"
}

type Company struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Sector         string   `json:"sector"`
	Country        string   `json:"country"`
	Region         string   `json:"region"`
	Founded        int      `json:"founded"`
	Employees      int      `json:"employees"`
	Revenue        string   `json:"revenue"`
	RawStatus      string   `json:"status"`
	Website        string   `json:"website"`
	ContactEmail   string   `json:"contact_email"`
	Address        string   `json:"address,omitempty"`
	Certifications []string `json:"certifications"`
	Products       []string `json:"products"`
}

func (c *Company) Status() Status {
	return ParseStatus(c.RawStatus)
}

type Sector struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Country struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}
