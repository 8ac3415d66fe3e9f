package contract

type CompanyRequest struct {
	ID string `param:"id" validate:"required,catalogid"`
}

type CompanyPage struct {
	Page
	Company *CompanyDetail
}

type CompanyDetail struct {
	ID             string
	Name           string
	Description    string
	Sector         string
	StatusLabel    string
	Active         bool
	Founded        int
	Employees      int
	Revenue        string
	Products       []string
	Certifications []string
	Location       string
	Website        string
	WebsiteDisplay string
	ContactEmail   string
	MailtoURL      string
}
