package models

import (
	"cmp"
	"time"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/common/validation"
)

const StatusPending = "pending"

// Transaction представляет движение средств по счету пользователя
// @Description Транзакция
type Transaction struct {
	ID          int64     `json:"id" gorm:"primaryKey" example:"1"`
	UserID      int64     `json:"userId" gorm:"column:user_id;not null;index" example:"1"`
	Type        string    `json:"type" gorm:"column:type;not null" example:"deposit" enums:"deposit,withdrawal,profit,bonus"`
	Amount      string    `json:"amount" gorm:"column:amount;type:numeric(10,2);not null" example:"250.00"`
	Status      string    `json:"status" gorm:"column:status;not null;default:pending" example:"pending" enums:"pending,completed,failed,cancelled"`
	Description *string   `json:"description" gorm:"column:description"`
	Reference   *string   `json:"reference" gorm:"column:reference"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at;not null"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// NewestFirst orders by creation time descending, newer ids first on ties.
func NewestFirst(a, b *Transaction) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

type CreateTransactionRequest struct {
	UserID      int64   `json:"userId" binding:"required,gt=0" example:"1"`
	Type        string  `json:"type" binding:"required,oneof=deposit withdrawal profit bonus" example:"deposit"`
	Amount      string  `json:"amount" binding:"required,decimal=10:2" example:"250.00"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending completed failed cancelled" example:"pending"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Reference   *string `json:"reference" binding:"omitempty,max=128"`
}

// NewTransaction builds the stored record; status defaults to pending.
func NewTransaction(req CreateTransactionRequest, id int64, now time.Time) Transaction {
	t := Transaction{
		ID:          id,
		UserID:      req.UserID,
		Type:        req.Type,
		Amount:      validation.FormatDecimal(req.Amount, validation.Money),
		Status:      StatusPending,
		Description: req.Description,
		Reference:   req.Reference,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Status != nil && *req.Status != "" {
		t.Status = *req.Status
	}
	return t
}

type UpdateTransactionRequest struct {
	UserID      optional.Field[int64]  `json:"userId" swaggertype:"integer"`
	Type        optional.Field[string] `json:"type" swaggertype:"string"`
	Amount      optional.Field[string] `json:"amount" swaggertype:"string"`
	Status      optional.Field[string] `json:"status" swaggertype:"string"`
	Description optional.Field[string] `json:"description" swaggertype:"string"`
	Reference   optional.Field[string] `json:"reference" swaggertype:"string"`
}

func (r *UpdateTransactionRequest) Validate() error {
	c := &validation.Checker{}

	if validation.NotNull(c, "userId", r.UserID) {
		c.Add("userId", validation.ValidatePositiveInt(r.UserID.Value, "userId"))
	}
	if validation.NotNull(c, "type", r.Type) {
		c.Add("type", validation.ValidateOneOf(r.Type.Value, validation.TransactionTypes))
	}
	if validation.NotNull(c, "amount", r.Amount) {
		_, err := validation.ParseDecimal(r.Amount.Value, validation.Money)
		c.Add("amount", err)
	}
	if validation.NotNull(c, "status", r.Status) {
		c.Add("status", validation.ValidateOneOf(r.Status.Value, validation.TransactionStatuses))
	}
	if r.Description.Present() {
		c.Add("description", validation.ValidateMaxLength(r.Description.Value, validation.MaxDescriptionLength))
	}
	if r.Reference.Present() {
		c.Add("reference", validation.ValidateMaxLength(r.Reference.Value, validation.MaxReferenceLength))
	}

	return c.Err("Invalid update data")
}

func (r *UpdateTransactionRequest) ApplyTo(t *Transaction, now time.Time) {
	r.UserID.Apply(&t.UserID)
	r.Type.Apply(&t.Type)
	if r.Amount.Present() {
		t.Amount = validation.FormatDecimal(r.Amount.Value, validation.Money)
	}
	r.Status.Apply(&t.Status)
	r.Description.ApplyNullable(&t.Description)
	r.Reference.ApplyNullable(&t.Reference)
	t.UpdatedAt = now
}

func (r *UpdateTransactionRequest) Columns(now time.Time) map[string]interface{} {
	cols := map[string]interface{}{"updated_at": now}
	if r.UserID.Present() {
		cols["user_id"] = r.UserID.Value
	}
	if r.Type.Present() {
		cols["type"] = r.Type.Value
	}
	if r.Amount.Present() {
		cols["amount"] = validation.FormatDecimal(r.Amount.Value, validation.Money)
	}
	if r.Status.Present() {
		cols["status"] = r.Status.Value
	}
	if r.Description.Set {
		cols["description"] = r.Description.Ptr()
	}
	if r.Reference.Set {
		cols["reference"] = r.Reference.Ptr()
	}
	return cols
}
