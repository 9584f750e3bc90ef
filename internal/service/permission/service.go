package permission

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/permission"
)

// catalogTTL bounds how stale the in-memory catalog copy may get. The
// catalog only changes on deploy, so a short TTL is plenty.
const catalogTTL = 5 * time.Minute

type catalogServiceImpl struct {
	catalogRepo permission.CatalogRepository
	logger      *slog.Logger

	mu        sync.RWMutex
	cached    []permission.Section
	cachedAt  time.Time
}

func NewCatalogService(catalogRepo permission.CatalogRepository, logger *slog.Logger) permission.CatalogService {
	return &catalogServiceImpl{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetCatalog implements permission.CatalogService.
func (s *catalogServiceImpl) GetCatalog(ctx context.Context) ([]permission.Section, error) {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.cachedAt) < catalogTTL {
		sections := s.cached
		s.mu.RUnlock()
		return sections, nil
	}
	s.mu.RUnlock()

	sections, err := s.catalogRepo.ListSections(ctx)
	if err != nil {
		s.logger.Error("failed to load permission catalog", slog.Any("error", err))
		return nil, err
	}

	s.mu.Lock()
	s.cached = sections
	s.cachedAt = time.Now()
	s.mu.Unlock()

	return sections, nil
}

// Validate implements permission.CatalogService. Every section and code
// in the blob must exist in the catalog, with codes under the sections
// they belong to. The first offender is returned.
func (s *catalogServiceImpl) Validate(ctx context.Context, blob permission.Blob) error {
	sections, err := s.GetCatalog(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]map[string]struct{}, len(sections))
	for _, section := range sections {
		codes := make(map[string]struct{}, len(section.Permissions))
		for _, p := range section.Permissions {
			codes[string(p.Code)] = struct{}{}
		}
		known[section.Code] = codes
	}

	for sectionCode, codes := range blob.Sections {
		sectionCodes, ok := known[permission.NormalizeSectionCode(sectionCode)]
		if !ok {
			return &permission.InvalidPermissionError{Section: sectionCode}
		}
		for _, code := range codes {
			if _, ok := sectionCodes[code]; !ok {
				return &permission.InvalidPermissionError{Section: sectionCode, Code: code}
			}
		}
	}
	return nil
}
