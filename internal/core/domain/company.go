package domain

import "time"

// Company is a directory record for a business. The full record includes
// confidential fields (siret, revenue, employees, financial support) that are
// only returned to the owning user or an administrator; everyone else gets
// the public CompanySummary view.
type Company struct {
	ID               string    `json:"id"`
	Description      string    `json:"description,omitempty"`
	Email            string    `json:"email"`
	LegalName        string    `json:"legal_name"`
	SiretNumber      string    `json:"siret_number,omitempty"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	Sectors          []string  `json:"sectors,omitempty"`
	Stage            string    `json:"stage,omitempty"`
	Type             string    `json:"type,omitempty"`
	Revenue          string    `json:"revenue,omitempty"`
	Country          string    `json:"country,omitempty"`
	City             string    `json:"city,omitempty"`
	LogoURL          string    `json:"logo_url,omitempty"`
	WebsiteURL       string    `json:"website_url,omitempty"`
	TeamPhotoURL     string    `json:"team_photo_url,omitempty"`
	WorksURL         []string  `json:"works_url"`
	EmployeesID      []string  `json:"employees_id,omitempty"`
	FinancialSupport bool      `json:"financial_support,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CompanySummary is the public projection of a Company.
type CompanySummary struct {
	ID           string   `json:"id"`
	Description  string   `json:"description,omitempty"`
	Email        string   `json:"email"`
	LegalName    string   `json:"legal_name"`
	Sectors      []string `json:"sectors,omitempty"`
	Stage        string   `json:"stage,omitempty"`
	Type         string   `json:"type,omitempty"`
	Country      string   `json:"country,omitempty"`
	City         string   `json:"city,omitempty"`
	LogoURL      string   `json:"logo_url,omitempty"`
	WebsiteURL   string   `json:"website_url,omitempty"`
	TeamPhotoURL string   `json:"team_photo_url,omitempty"`
	WorksURL     []string `json:"works_url"`
}

// Summary strips the confidential fields from a Company.
func (c *Company) Summary() CompanySummary {
	return CompanySummary{
		ID:           c.ID,
		Description:  c.Description,
		Email:        c.Email,
		LegalName:    c.LegalName,
		Sectors:      c.Sectors,
		Stage:        c.Stage,
		Type:         c.Type,
		Country:      c.Country,
		City:         c.City,
		LogoURL:      c.LogoURL,
		WebsiteURL:   c.WebsiteURL,
		TeamPhotoURL: c.TeamPhotoURL,
		WorksURL:     c.WorksURL,
	}
}
