package permission

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	sections []permission.Section
	calls    int
}

func (f *fakeCatalogRepo) ListSections(ctx context.Context) ([]permission.Section, error) {
	f.calls++
	return f.sections, nil
}

func (f *fakeCatalogRepo) SeedDefaults(ctx context.Context, sections []permission.Section) error {
	return nil
}

func testCatalogService() (permission.CatalogService, *fakeCatalogRepo) {
	repo := &fakeCatalogRepo{sections: fixtures.DefaultCatalog()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCatalogService(repo, logger), repo
}

func TestGetCatalog_CachesBetweenCalls(t *testing.T) {
	service, repo := testCatalogService()
	ctx := context.Background()

	first, err := service.GetCatalog(ctx)
	require.NoError(t, err)
	second, err := service.GetCatalog(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestValidate_CanonicalBlob(t *testing.T) {
	service, _ := testCatalogService()

	blob := permission.Blob{Sections: map[string][]string{
		permission.SectionScheduling: {
			string(permission.ViewSchedule),
			string(permission.CreateShifts),
		},
		permission.SectionLeave: {
			string(permission.RequestLeave),
		},
	}}

	assert.NoError(t, service.Validate(context.Background(), blob))
}

func TestValidate_AliasedSectionKey(t *testing.T) {
	service, _ := testCatalogService()

	blob := permission.Blob{Sections: map[string][]string{
		"shiftOps": {string(permission.OpenShift)},
	}}

	assert.NoError(t, service.Validate(context.Background(), blob))
}

func TestValidate_UnknownSection(t *testing.T) {
	service, _ := testCatalogService()

	blob := permission.Blob{Sections: map[string][]string{
		"payroll": {"run_payroll"},
	}}

	err := service.Validate(context.Background(), blob)
	var invalid *permission.InvalidPermissionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "payroll", invalid.Section)
	assert.Empty(t, invalid.Code)
}

func TestValidate_UnknownCode(t *testing.T) {
	service, _ := testCatalogService()

	blob := permission.Blob{Sections: map[string][]string{
		permission.SectionScheduling: {"fire_everyone"},
	}}

	err := service.Validate(context.Background(), blob)
	var invalid *permission.InvalidPermissionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, permission.SectionScheduling, invalid.Section)
	assert.Equal(t, "fire_everyone", invalid.Code)
}

func TestValidate_CodeUnderWrongSection(t *testing.T) {
	service, _ := testCatalogService()

	// clock_in_out belongs to attendance, not scheduling.
	blob := permission.Blob{Sections: map[string][]string{
		permission.SectionScheduling: {string(permission.ClockInOut)},
	}}

	err := service.Validate(context.Background(), blob)
	var invalid *permission.InvalidPermissionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, string(permission.ClockInOut), invalid.Code)
}

func TestValidate_EmptyBlob(t *testing.T) {
	service, _ := testCatalogService()

	assert.NoError(t, service.Validate(context.Background(), permission.Blob{}))
}

func TestDefaultCatalogCoversPredefinedRoles(t *testing.T) {
	sections := fixtures.DefaultCatalog()

	known := make(map[string]struct{})
	for _, section := range sections {
		for _, p := range section.Permissions {
			known[string(p.Code)] = struct{}{}
		}
	}

	// Every code any predefined role can grant must exist in the seeded
	// catalog, otherwise instantiation would silently drop it.
	for _, r := range role.AllPredefined() {
		codes := role.PermissionsFor(r)
		assert.NotEmpty(t, codes, "%s grants nothing", r)
		for _, code := range codes {
			_, ok := known[string(code)]
			assert.True(t, ok, "catalog missing %s (granted by %s)", code, r)
		}
	}
}

func TestValidate_CatalogRoundTrip(t *testing.T) {
	service, _ := testCatalogService()
	ctx := context.Background()

	sections, err := service.GetCatalog(ctx)
	require.NoError(t, err)

	// A blob built purely from catalog codes always validates.
	blob := permission.Blob{Sections: make(map[string][]string, len(sections))}
	for _, section := range sections {
		for _, p := range section.Permissions {
			blob.Sections[section.Code] = append(blob.Sections[section.Code], string(p.Code))
		}
	}

	assert.NoError(t, service.Validate(ctx, blob))
}
