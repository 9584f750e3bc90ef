package role

import (
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
)

// CustomRole is a business-defined role stored in the database. Its
// name is unique within the owning business and never shared across
// businesses.
type CustomRole struct {
	ID           string
	BusinessID   string
	Name         string
	Permissions  permission.Blob
	IsPredefined bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
