package business

import "time"

type Business struct {
	ID        string
	OwnerID   string
	Name      string
	Industry  *string
	Address   *string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
