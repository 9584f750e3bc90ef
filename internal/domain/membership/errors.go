package membership

import "errors"

var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrMembershipExists   = errors.New("user is already a member of this business")
)
