package get_site

import (
	"context"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
)

// CatalogService интерфейс каталога локаций
type CatalogService interface {
	GetByID(ctx context.Context, id int64) (*domain.Site, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
