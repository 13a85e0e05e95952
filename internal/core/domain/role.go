package domain

// Role is the closed set of application roles. Tokens and authorization
// rules work with these values directly; the ROLE_-prefixed wire labels the
// front end expects are produced only through Authority.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Authority returns the wire-format authority label for this role.
func (r Role) Authority() string {
	return "ROLE_" + string(r)
}

// RoleFromAuthority maps a wire-format authority label back to a Role.
func RoleFromAuthority(authority string) (Role, bool) {
	switch authority {
	case "ROLE_USER":
		return RoleUser, true
	case "ROLE_ADMIN":
		return RoleAdmin, true
	}
	return "", false
}
