package postgresql

import (
	"context"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
)

type catalogRepositoryImpl struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) permission.CatalogRepository {
	return &catalogRepositoryImpl{db: db}
}

// ListSections implements permission.CatalogRepository.
func (r *catalogRepositoryImpl) ListSections(ctx context.Context) ([]permission.Section, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.code, s.title, s.sort_order, p.code, p.label, p.sort_order
		FROM permission_sections s
		LEFT JOIN permissions p ON p.section_code = s.code
		ORDER BY s.sort_order, p.sort_order
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []permission.Section
	index := make(map[string]int)
	for rows.Next() {
		var (
			sectionCode  string
			sectionTitle string
			sectionOrder int
			permCode     *string
			permLabel    *string
			permOrder    *int
		)
		if err := rows.Scan(&sectionCode, &sectionTitle, &sectionOrder, &permCode, &permLabel, &permOrder); err != nil {
			return nil, err
		}

		i, ok := index[sectionCode]
		if !ok {
			sections = append(sections, permission.Section{
				Code:      sectionCode,
				Title:     sectionTitle,
				SortOrder: sectionOrder,
			})
			i = len(sections) - 1
			index[sectionCode] = i
		}

		if permCode != nil {
			sections[i].Permissions = append(sections[i].Permissions, permission.Permission{
				Code:        permission.Code(*permCode),
				Label:       *permLabel,
				SectionCode: sectionCode,
				SortOrder:   *permOrder,
			})
		}
	}
	return sections, rows.Err()
}

// SeedDefaults implements permission.CatalogRepository.
func (r *catalogRepositoryImpl) SeedDefaults(ctx context.Context, sections []permission.Section) error {
	q := GetQuerier(ctx, r.db)

	for _, section := range sections {
		_, err := q.Exec(ctx, `
			INSERT INTO permission_sections (code, title, sort_order)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO NOTHING
		`, section.Code, section.Title, section.SortOrder)
		if err != nil {
			return err
		}

		for _, p := range section.Permissions {
			_, err := q.Exec(ctx, `
				INSERT INTO permissions (code, label, section_code, sort_order)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (code) DO NOTHING
			`, p.Code, p.Label, p.SectionCode, p.SortOrder)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
