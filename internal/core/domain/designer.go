package domain

import "time"

// DesignerEvent is a calendar entry on a designer's public agenda.
type DesignerEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date,omitempty"`
	Color       string    `json:"color,omitempty"`
}

// Designer is a directory profile. It is linked to its owning user through
// User.DesignerID; admin-created profiles carry CreatedBy until they are
// transferred to a user.
type Designer struct {
	ID                 string          `json:"id"`
	Email              string          `json:"email"`
	Firstname          string          `json:"firstname"`
	Lastname           string          `json:"lastname"`
	ProfilePicture     string          `json:"profile_picture,omitempty"`
	Biography          string          `json:"biography,omitempty"`
	PhoneNumber        string          `json:"phone_number,omitempty"`
	Profession         string          `json:"profession,omitempty"`
	Specialties        []string        `json:"specialties,omitempty"`
	SpheresOfInfluence []string        `json:"spheres_of_influence,omitempty"`
	FavoriteSectors    []string        `json:"favorite_sectors,omitempty"`
	CountryOfOrigin    string          `json:"country_of_origin,omitempty"`
	CountryOfResidence string          `json:"country_of_residence,omitempty"`
	ProfessionalLevel  string          `json:"professional_level,omitempty"`
	MajorWorks         []string        `json:"major_works"`
	PortfolioURL       string          `json:"portfolio_url,omitempty"`
	Events             []DesignerEvent `json:"events"`
	CreatedBy          string          `json:"created_by,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// MaxWorksPerUpload caps how many major-works images a single request may add.
const MaxWorksPerUpload = 3
