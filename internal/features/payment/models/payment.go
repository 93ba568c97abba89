package models

import (
	"cmp"
	"time"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/common/validation"
)

const StatusPending = "pending"

// PaymentSubmission представляет заявку на пополнение со скриншотом оплаты
// @Description Заявка на пополнение
type PaymentSubmission struct {
	ID              int64      `json:"id" gorm:"primaryKey" example:"1"`
	UserID          int64      `json:"userId" gorm:"column:user_id;not null;index" example:"1"`
	Amount          string     `json:"amount" gorm:"column:amount;type:numeric(10,2);not null" example:"500.00"`
	ScreenshotURL   string     `json:"screenshotUrl" gorm:"column:screenshot_url;not null"`
	Status          string     `json:"status" gorm:"column:status;not null;default:pending" example:"pending" enums:"pending,confirmed,rejected"`
	SubmittedAt     time.Time  `json:"submittedAt" gorm:"column:submitted_at;not null"`
	ProcessedAt     *time.Time `json:"processedAt" gorm:"column:processed_at"`
	ProcessingNotes *string    `json:"processingNotes" gorm:"column:processing_notes"`
}

func (PaymentSubmission) TableName() string {
	return "payment_submissions"
}

// NewestFirst orders by submission time descending, newer ids first on ties.
func NewestFirst(a, b *PaymentSubmission) int {
	if c := b.SubmittedAt.Compare(a.SubmittedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

type CreatePaymentRequest struct {
	UserID          int64   `json:"userId" binding:"required,gt=0" example:"1"`
	Amount          string  `json:"amount" binding:"required,decimal=10:2" example:"500.00"`
	ScreenshotURL   string  `json:"screenshotUrl" binding:"required,max=2048"`
	Status          *string `json:"status" binding:"omitempty,oneof=pending confirmed rejected" example:"pending"`
	ProcessingNotes *string `json:"processingNotes" binding:"omitempty,max=1000"`
}

func NewPaymentSubmission(req CreatePaymentRequest, id int64, now time.Time) PaymentSubmission {
	p := PaymentSubmission{
		ID:              id,
		UserID:          req.UserID,
		Amount:          validation.FormatDecimal(req.Amount, validation.Money),
		ScreenshotURL:   req.ScreenshotURL,
		Status:          StatusPending,
		SubmittedAt:     now,
		ProcessingNotes: req.ProcessingNotes,
	}
	if req.Status != nil && *req.Status != "" {
		p.Status = *req.Status
	}
	return p
}

type UpdatePaymentRequest struct {
	UserID          optional.Field[int64]     `json:"userId" swaggertype:"integer"`
	Amount          optional.Field[string]    `json:"amount" swaggertype:"string"`
	ScreenshotURL   optional.Field[string]    `json:"screenshotUrl" swaggertype:"string"`
	Status          optional.Field[string]    `json:"status" swaggertype:"string"`
	ProcessedAt     optional.Field[time.Time] `json:"processedAt" swaggertype:"string" format:"date-time"`
	ProcessingNotes optional.Field[string]    `json:"processingNotes" swaggertype:"string"`
}

func (r *UpdatePaymentRequest) Validate() error {
	c := &validation.Checker{}

	if validation.NotNull(c, "userId", r.UserID) {
		c.Add("userId", validation.ValidatePositiveInt(r.UserID.Value, "userId"))
	}
	if validation.NotNull(c, "amount", r.Amount) {
		_, err := validation.ParseDecimal(r.Amount.Value, validation.Money)
		c.Add("amount", err)
	}
	if validation.NotNull(c, "screenshotUrl", r.ScreenshotURL) {
		c.Add("screenshotUrl", validation.ValidateRequiredString(r.ScreenshotURL.Value, validation.MaxURLLength))
	}
	if validation.NotNull(c, "status", r.Status) {
		c.Add("status", validation.ValidateOneOf(r.Status.Value, validation.PaymentStatuses))
	}
	if r.ProcessingNotes.Present() {
		c.Add("processingNotes", validation.ValidateMaxLength(r.ProcessingNotes.Value, validation.MaxNotesLength))
	}

	return c.Err("Invalid update data")
}

func (r *UpdatePaymentRequest) ApplyTo(p *PaymentSubmission) {
	r.UserID.Apply(&p.UserID)
	if r.Amount.Present() {
		p.Amount = validation.FormatDecimal(r.Amount.Value, validation.Money)
	}
	r.ScreenshotURL.Apply(&p.ScreenshotURL)
	r.Status.Apply(&p.Status)
	r.ProcessedAt.ApplyNullable(&p.ProcessedAt)
	r.ProcessingNotes.ApplyNullable(&p.ProcessingNotes)
}

func (r *UpdatePaymentRequest) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if r.UserID.Present() {
		cols["user_id"] = r.UserID.Value
	}
	if r.Amount.Present() {
		cols["amount"] = validation.FormatDecimal(r.Amount.Value, validation.Money)
	}
	if r.ScreenshotURL.Present() {
		cols["screenshot_url"] = r.ScreenshotURL.Value
	}
	if r.Status.Present() {
		cols["status"] = r.Status.Value
	}
	if r.ProcessedAt.Set {
		cols["processed_at"] = r.ProcessedAt.Ptr()
	}
	if r.ProcessingNotes.Set {
		cols["processing_notes"] = r.ProcessingNotes.Ptr()
	}
	return cols
}
