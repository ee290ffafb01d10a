package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"shortly/internal/config"
	"shortly/internal/model"

	gosqlmysql "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Unique index names declared in the model tags. The MySQL duplicate-key
// message carries the index name, which is how a 1062 is classified as a
// code conflict versus a URL conflict.
const (
	codeIndexName = "uk_short_links_code"
	urlIndexName  = "uk_short_links_target_url"
)

const mysqlDuplicateEntry = 1062

// MySQLStore handles MySQL operations
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore creates a new MySQL store
func NewMySQLStore(cfg *config.MySQLConfig) *MySQLStore {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.ShortLink{}, &model.SystemConfig{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLStore{db: db}
}

// GetDB returns the GORM DB instance
func (s *MySQLStore) GetDB() *gorm.DB {
	return s.db
}

// Insert atomically creates a short link row. The unique constraints are the
// single source of truth for conflicts: a duplicate key error on the code
// index maps to ErrDuplicateCode, on the URL index to ErrDuplicateURL.
func (s *MySQLStore) Insert(ctx context.Context, link *model.ShortLink) error {
	err := s.db.WithContext(ctx).Create(link).Error
	if err == nil {
		return nil
	}

	var mysqlErr *gosqlmysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		switch {
		case strings.Contains(mysqlErr.Message, codeIndexName):
			return ErrDuplicateCode
		case strings.Contains(mysqlErr.Message, urlIndexName):
			return ErrDuplicateURL
		}
	}
	return err
}

// FindByCode retrieves a short link by code, active or not. Callers decide
// how to treat inactive rows.
func (s *MySQLStore) FindByCode(ctx context.Context, code string) (*model.ShortLink, error) {
	var link model.ShortLink
	err := s.db.WithContext(ctx).
		Where("code = ?", code).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindByURL retrieves a short link by target URL (idempotent re-shortening)
func (s *MySQLStore) FindByURL(ctx context.Context, targetURL string) (*model.ShortLink, error) {
	var link model.ShortLink
	err := s.db.WithContext(ctx).
		Where("target_url = ?", targetURL).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// IncrementClick bumps the click counter and refreshes last_accessed_at in a
// single UPDATE. The increment happens in SQL, never read-modify-write in
// application memory, so concurrent redirects cannot lose counts. Returns
// false when the code does not exist or has been deactivated.
func (s *MySQLStore) IncrementClick(ctx context.Context, code string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&model.ShortLink{}).
		Where("code = ? AND is_active = ?", code, true).
		Updates(map[string]interface{}{
			"click_count":      gorm.Expr("click_count + 1"),
			"last_accessed_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Deactivate soft-deletes a short link. The row stays so the code is never
// recycled; it only stops resolving.
func (s *MySQLStore) Deactivate(ctx context.Context, code string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&model.ShortLink{}).
		Where("code = ? AND is_active = ?", code, true).
		Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListLinks returns a page of short links plus the total row count
func (s *MySQLStore) ListLinks(ctx context.Context, offset, limit int) ([]model.ShortLink, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.ShortLink{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var links []model.ShortLink
	err := s.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&links).Error
	if err != nil {
		return nil, 0, err
	}
	return links, total, nil
}

// CountLinks returns total and active row counts
func (s *MySQLStore) CountLinks(ctx context.Context) (total, active int64, err error) {
	if err = s.db.WithContext(ctx).Model(&model.ShortLink{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = s.db.WithContext(ctx).
		Model(&model.ShortLink{}).
		Where("is_active = ?", true).
		Count(&active).Error
	if err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

// TotalClicks returns the click total across all short links
func (s *MySQLStore) TotalClicks(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&model.ShortLink{}).
		Select("COALESCE(SUM(click_count), 0)").
		Scan(&total).Error
	return total, err
}

// SaveConfig upserts a dynamic config entry
func (s *MySQLStore) SaveConfig(ctx context.Context, cfg *model.SystemConfig) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
		}).
		Create(cfg).Error
}

// ListConfigs returns all dynamic config entries
func (s *MySQLStore) ListConfigs(ctx context.Context) ([]model.SystemConfig, error) {
	var configs []model.SystemConfig
	err := s.db.WithContext(ctx).Order("`key`").Find(&configs).Error
	return configs, err
}

// Ping checks database connectivity
func (s *MySQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *MySQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
