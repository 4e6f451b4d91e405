package model

import "time"

// Role gates every donation and coupon operation.
type Role string

const (
	RoleDonor Role = "donor"
	RoleNGO   Role = "ngo"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleDonor || r == RoleNGO
}

// User is a registered platform account.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the verified caller of a request.
type Identity struct {
	UserID string
	Role   Role
}

// Is reports whether the identity holds the given role.
func (i Identity) Is(role Role) bool {
	return i.UserID != "" && i.Role == role
}
