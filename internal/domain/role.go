package domain

// Role is a reviewer's privilege level. Absence of a UserRole row means
// RoleOrdinary.
type Role int

const (
	RoleOrdinary   Role = 0
	RolePrivileged Role = 1
)

// UserRole maps a recipient identity to its review role.
type UserRole struct {
	RecipientID string `json:"recipient_id"`
	Role        Role   `json:"role"`
}
