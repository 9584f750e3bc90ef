package membership

import "time"

// RoleType tags the membership's role string so the resolver does not
// have to re-infer what it denotes on every request. The tag is decided
// once, at assignment time.
type RoleType string

const (
	// RoleTypePredefined means Role is one of the fixed predefined role
	// identifiers.
	RoleTypePredefined RoleType = "predefined"
	// RoleTypeCustom means Role is the name of a custom role row scoped
	// to the membership's business.
	RoleTypeCustom RoleType = "custom"
)

// Membership associates a user with a business and a role. A user may
// hold memberships in any number of businesses; every permission check
// is scoped by membership.
type Membership struct {
	ID         string
	UserID     string
	BusinessID string
	RoleType   RoleType
	Role       string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join fields
	UserEmail    *string
	BusinessName *string
}
