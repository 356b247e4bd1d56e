package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
)

// Service сервис каталога исторических локаций
// Справочник загружается один раз при старте и далее не изменяется,
// поэтому все чтения идут из памяти без обращений к БД
type Service struct {
	repo   SiteRepository
	logger Logger

	sites []*domain.Site
	byID  map[int64]*domain.Site
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo SiteRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		byID:   make(map[int64]*domain.Site),
	}
}

// Load загружает каталог из БД в память
// Вызывается один раз при старте сервиса, до начала обработки запросов
func (s *Service) Load(ctx context.Context) error {
	sites, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Catalog: failed to load sites: %v", err)
		return fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	if len(sites) == 0 {
		s.logger.Error("Catalog: historical_sites table is empty")
		return ErrEmptyCatalog
	}

	s.sites = sites
	for _, site := range sites {
		s.byID[site.ID] = site
	}

	s.logger.Info("Catalog: loaded %d historical sites", len(sites))
	return nil
}

// List возвращает все локации каталога
func (s *Service) List(ctx context.Context) []*domain.Site {
	return s.sites
}

// GetByID возвращает локацию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Site, error) {
	site, ok := s.byID[id]
	if !ok {
		s.logger.Warn("Catalog: site id=%d not found", id)
		return nil, ErrSiteNotFound
	}
	return site, nil
}
