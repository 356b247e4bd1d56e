package site

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MHT-StorefrontService/internal/domain"
	"github.com/m04kA/MHT-StorefrontService/pkg/psqlbuilder"
)

// siteColumns колонки таблицы historical_sites в порядке сканирования
var siteColumns = []string{
	"id",
	"name",
	"name_arabic",
	"description",
	"significance",
	"duration",
	"image",
	"price",
	"rating",
	"created_at",
}

// Repository репозиторий справочника исторических локаций
// Каталог неизменяемый: репозиторий поддерживает только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория локаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все локации каталога, упорядоченные по id
func (r *Repository) List(ctx context.Context) ([]*domain.Site, error) {
	query, args, err := psqlbuilder.Select(siteColumns...).
		From("historical_sites").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var sites []*domain.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return sites, nil
}

// GetByID возвращает локацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Site, error) {
	query, args, err := psqlbuilder.Select(siteColumns...).
		From("historical_sites").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	site, err := scanSite(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSiteNotFound
		}
		return nil, err
	}

	return site, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSite(row rowScanner) (*domain.Site, error) {
	var s domain.Site
	var createdAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.NameArabic,
		&s.Description,
		&s.Significance,
		&s.Duration,
		&s.Image,
		&s.Price,
		&s.Rating,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	return &s, nil
}
