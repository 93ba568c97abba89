package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trading-platform-backend/internal/features/market/models"
	"trading-platform-backend/internal/features/market/repository"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.MarketRepository {
	return &postgresRepository{db: db}
}

// Get получает котировку по символу
func (r *postgresRepository) Get(ctx context.Context, symbol string) (*models.MarketQuote, error) {
	var q models.MarketQuote
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get market data: %w", err)
	}
	return &q, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]*models.MarketQuote, error) {
	quotes := make([]*models.MarketQuote, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("failed to list market data: %w", err)
	}
	return quotes, nil
}

// Upsert вставляет котировку или обновляет существующую по symbol;
// RETURNING отдает id существующей строки
func (r *postgresRepository) Upsert(ctx context.Context, req models.UpsertQuoteRequest) (*models.MarketQuote, error) {
	q := req.Quote(0, time.Now().UTC())
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"price", "change_24h", "change_percent_24h", "volume_24h", "last_updated",
		}),
	}).Create(&q).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert market data: %w", err)
	}
	return &q, nil
}

func (r *postgresRepository) Delete(ctx context.Context, symbol string) (bool, error) {
	res := r.db.WithContext(ctx).Where("symbol = ?", symbol).Delete(&models.MarketQuote{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete market data: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
