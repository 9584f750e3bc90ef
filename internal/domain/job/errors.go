package job

import "errors"

var (
	ErrPostNotFound           = errors.New("job post not found")
	ErrPostClosed             = errors.New("job post is closed")
	ErrAlreadyApplied         = errors.New("already applied to this job post")
	ErrApplicationNotFound    = errors.New("application not found")
	ErrConnectionNotFound     = errors.New("connection not found")
	ErrConnectionExists       = errors.New("connection already exists")
	ErrConnectionSelf         = errors.New("cannot connect with yourself")
	ErrConnectionNotRecipient = errors.New("only the recipient may accept a connection")
)
