package permission

import "context"

type CatalogRepository interface {
	// ListSections returns all sections with their permissions, ordered
	// by sort order.
	ListSections(ctx context.Context) ([]Section, error)
	// SeedDefaults inserts any catalog rows missing from the database.
	// Existing rows are left untouched.
	SeedDefaults(ctx context.Context, sections []Section) error
}

// CatalogService exposes the current set of valid section/permission
// pairs and validates custom-role permission blobs against it.
type CatalogService interface {
	GetCatalog(ctx context.Context) ([]Section, error)
	Validate(ctx context.Context, blob Blob) error
}
