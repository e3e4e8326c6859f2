package entity

import "slices"

// Role is the access level carried by an API token.
type Role string

const (
	// RoleAdmin may trigger syncs and clear snapshots.
	RoleAdmin Role = "admin"
	// RoleReader may only read catalog snapshots.
	RoleReader Role = "reader"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r.rank() > 0
}

// rank orders roles so that a higher role grants everything a lower one does.
func (r Role) rank() int {
	switch r {
	case RoleReader:
		return 1
	case RoleAdmin:
		return 2
	default:
		return 0
	}
}

// Roles is the set of roles granted to a token subject.
type Roles []Role

// Allows reports whether any granted role reaches required.
func (rs Roles) Allows(required Role) bool {
	if !required.IsValid() {
		return false
	}

	return slices.ContainsFunc(rs, func(r Role) bool {
		return r.rank() >= required.rank()
	})
}

// ToStrings converts Roles to the string slice stored in token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts token claims to Roles, dropping unknown and duplicate names.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() && !slices.Contains(result, role) {
			result = append(result, role)
		}
	}

	return result
}
