// File: internal/common/model.go
package common

// Roles recognized across the API. Role values are not validated on write
// (any string is persisted); these constants cover the values the API itself
// assigns or checks.
const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// User account statuses.
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)
