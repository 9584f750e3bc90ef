package job

import "time"

type PostStatus string

const (
	PostOpen   PostStatus = "open"
	PostClosed PostStatus = "closed"
)

type Post struct {
	ID          string
	BusinessID  string
	Title       string
	Description string
	Position    string
	HourlyRate  *float64
	Status      PostStatus
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID          string
	PostID      string
	ApplicantID string
	Message     *string
	Status      ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
)

// Connection links two users as colleagues.
type Connection struct {
	ID          string
	RequesterID string
	RecipientID string
	Status      ConnectionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
