package domain

import "time"

// AccountType tells which kind of directory record, if any, a user account
// is linked to.
type AccountType string

const (
	AccountNone     AccountType = "NONE"
	AccountDesigner AccountType = "DESIGNER"
	AccountCompany  AccountType = "COMPANY"
)

// User models an authenticated account. A user may own at most one designer
// record and at most one company record; those links are the basis of every
// ownership check.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	DesignerID   string    `json:"designer_id,omitempty"`
	CompanyID    string    `json:"company_id,omitempty"`
	FriendsID    []string  `json:"friends_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AccountType derives the linked account kind from the record itself.
func (u *User) AccountType() AccountType {
	switch {
	case u.DesignerID != "":
		return AccountDesigner
	case u.CompanyID != "":
		return AccountCompany
	default:
		return AccountNone
	}
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
