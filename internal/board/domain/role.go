package domain

// Role is an account role. There are exactly two: regular members and
// administrators.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

// String returns the storage form.
func (r Role) String() string { return string(r) }
