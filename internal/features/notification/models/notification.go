package models

import (
	"cmp"
	"time"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/common/validation"
)

// Notification представляет уведомление в ленте пользователя
// @Description Уведомление
type Notification struct {
	ID        int64     `json:"id" gorm:"primaryKey" example:"1"`
	UserID    int64     `json:"userId" gorm:"column:user_id;not null;index" example:"1"`
	Type      string    `json:"type" gorm:"column:type;not null" example:"info" enums:"success,warning,info,trading"`
	Title     string    `json:"title" gorm:"column:title;not null" example:"Deposit received"`
	Message   string    `json:"message" gorm:"column:message;not null" example:"Your deposit of $250.00 is confirmed"`
	IsRead    bool      `json:"isRead" gorm:"column:is_read;not null;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NewestFirst orders by creation time descending, newer ids first on ties.
func NewestFirst(a, b *Notification) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

type CreateNotificationRequest struct {
	UserID  int64  `json:"userId" binding:"required,gt=0" example:"1"`
	Type    string `json:"type" binding:"required,oneof=success warning info trading" example:"info"`
	Title   string `json:"title" binding:"required,max=200" example:"Deposit received"`
	Message string `json:"message" binding:"required,max=2000" example:"Your deposit of $250.00 is confirmed"`
	IsRead  *bool  `json:"isRead"`
}

func NewNotification(req CreateNotificationRequest, id int64, now time.Time) Notification {
	n := Notification{
		ID:        id,
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		CreatedAt: now,
	}
	if req.IsRead != nil {
		n.IsRead = *req.IsRead
	}
	return n
}

type UpdateNotificationRequest struct {
	UserID  optional.Field[int64]  `json:"userId" swaggertype:"integer"`
	Type    optional.Field[string] `json:"type" swaggertype:"string"`
	Title   optional.Field[string] `json:"title" swaggertype:"string"`
	Message optional.Field[string] `json:"message" swaggertype:"string"`
	IsRead  optional.Field[bool]   `json:"isRead" swaggertype:"boolean"`
}

func (r *UpdateNotificationRequest) Validate() error {
	c := &validation.Checker{}

	if validation.NotNull(c, "userId", r.UserID) {
		c.Add("userId", validation.ValidatePositiveInt(r.UserID.Value, "userId"))
	}
	if validation.NotNull(c, "type", r.Type) {
		c.Add("type", validation.ValidateOneOf(r.Type.Value, validation.NotificationTypes))
	}
	if validation.NotNull(c, "title", r.Title) {
		c.Add("title", validation.ValidateRequiredString(r.Title.Value, validation.MaxTitleLength))
	}
	if validation.NotNull(c, "message", r.Message) {
		c.Add("message", validation.ValidateRequiredString(r.Message.Value, validation.MaxMessageLength))
	}
	validation.NotNull(c, "isRead", r.IsRead)

	return c.Err("Invalid update data")
}

// ApplyTo merges the supplied fields; notifications carry no update timestamp.
func (r *UpdateNotificationRequest) ApplyTo(n *Notification) {
	r.UserID.Apply(&n.UserID)
	r.Type.Apply(&n.Type)
	r.Title.Apply(&n.Title)
	r.Message.Apply(&n.Message)
	r.IsRead.Apply(&n.IsRead)
}

// Columns may be empty when nothing was supplied.
func (r *UpdateNotificationRequest) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if r.UserID.Present() {
		cols["user_id"] = r.UserID.Value
	}
	if r.Type.Present() {
		cols["type"] = r.Type.Value
	}
	if r.Title.Present() {
		cols["title"] = r.Title.Value
	}
	if r.Message.Present() {
		cols["message"] = r.Message.Value
	}
	if r.IsRead.Present() {
		cols["is_read"] = r.IsRead.Value
	}
	return cols
}
