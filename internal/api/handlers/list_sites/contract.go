package list_sites

import (
	"context"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
)

// CatalogService интерфейс каталога локаций
type CatalogService interface {
	List(ctx context.Context) []*domain.Site
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
