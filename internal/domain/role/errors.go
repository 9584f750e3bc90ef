package role

import "errors"

var (
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleNameExists     = errors.New("role name already exists in this business")
	ErrUnknownPredefined  = errors.New("unknown predefined role identifier")
	ErrUnknownRole        = errors.New("role is neither a predefined identifier nor an existing custom role")
	ErrPredefinedReadOnly = errors.New("predefined role rows cannot be renamed")
)
