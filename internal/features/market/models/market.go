package models

import (
	"time"

	"trading-platform-backend/internal/common/validation"
)

// MarketQuote представляет последнюю котировку торговой пары
// @Description Котировка
type MarketQuote struct {
	ID               int64     `json:"id" gorm:"primaryKey" example:"1"`
	Symbol           string    `json:"symbol" gorm:"column:symbol;not null;uniqueIndex" example:"BTC/USD"`
	Price            string    `json:"price" gorm:"column:price;type:numeric(18,8);not null" example:"42350.00000000"`
	Change24h        string    `json:"change24h" gorm:"column:change_24h;type:numeric(5,2);not null" example:"2.30"`
	ChangePercent24h string    `json:"changePercent24h" gorm:"column:change_percent_24h;type:numeric(5,2);not null" example:"2.30"`
	Volume24h        *string   `json:"volume24h" gorm:"column:volume_24h;type:numeric(18,2)" example:"1250000.00"`
	LastUpdated      time.Time `json:"lastUpdated" gorm:"column:last_updated;not null"`
}

func (MarketQuote) TableName() string {
	return "market_data"
}

// UpsertQuoteRequest replaces every field of the quote for Symbol.
type UpsertQuoteRequest struct {
	Symbol           string  `json:"symbol" binding:"required,max=32" example:"BTC/USD"`
	Price            string  `json:"price" binding:"required,decimal=18:8" example:"42350.00"`
	Change24h        string  `json:"change24h" binding:"required,decimal=5:2" example:"2.30"`
	ChangePercent24h string  `json:"changePercent24h" binding:"required,decimal=5:2" example:"2.30"`
	Volume24h        *string `json:"volume24h" binding:"omitempty,decimal=18:2" example:"1250000.00"`
}

// Quote builds the stored record with normalised decimals.
func (r UpsertQuoteRequest) Quote(id int64, now time.Time) MarketQuote {
	q := MarketQuote{
		ID:               id,
		Symbol:           r.Symbol,
		Price:            validation.FormatDecimal(r.Price, validation.Price),
		Change24h:        validation.FormatDecimal(r.Change24h, validation.Percent),
		ChangePercent24h: validation.FormatDecimal(r.ChangePercent24h, validation.Percent),
		LastUpdated:      now,
	}
	if r.Volume24h != nil {
		v := validation.FormatDecimal(*r.Volume24h, validation.Volume)
		q.Volume24h = &v
	}
	return q
}

// DefaultQuotes are upserted at startup when seeding is enabled.
var DefaultQuotes = []UpsertQuoteRequest{
	{Symbol: "BTC/USD", Price: "42350.00", Change24h: "2.3", ChangePercent24h: "2.3"},
	{Symbol: "ETH/USD", Price: "2580.00", Change24h: "1.8", ChangePercent24h: "1.8"},
	{Symbol: "BNB/USD", Price: "315.20", Change24h: "-0.5", ChangePercent24h: "-0.5"},
	{Symbol: "ADA/USD", Price: "0.485", Change24h: "3.2", ChangePercent24h: "3.2"},
	{Symbol: "SOL/USD", Price: "98.45", Change24h: "4.1", ChangePercent24h: "4.1"},
	{Symbol: "DOT/USD", Price: "7.23", Change24h: "-1.2", ChangePercent24h: "-1.2"},
	{Symbol: "MATIC/USD", Price: "0.89", Change24h: "2.7", ChangePercent24h: "2.7"},
	{Symbol: "LINK/USD", Price: "14.56", Change24h: "1.4", ChangePercent24h: "1.4"},
	{Symbol: "XRP/USD", Price: "0.62", Change24h: "-0.8", ChangePercent24h: "-0.8"},
	{Symbol: "AVAX/USD", Price: "38.92", Change24h: "3.5", ChangePercent24h: "3.5"},
}
