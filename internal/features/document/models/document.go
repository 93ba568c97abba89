package models

import (
	"cmp"
	"time"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/common/validation"
)

const StatusPending = "pending"

// DocumentVerification представляет заявку на проверку документа (KYC)
// @Description Проверка документа
type DocumentVerification struct {
	ID            int64      `json:"id" gorm:"primaryKey" example:"1"`
	UserID        int64      `json:"userId" gorm:"column:user_id;not null;index" example:"1"`
	DocumentType  string     `json:"documentType" gorm:"column:document_type;not null" example:"passport" enums:"passport,drivers_license,national_id"`
	FrontImageURL string     `json:"frontImageUrl" gorm:"column:front_image_url;not null"`
	BackImageURL  string     `json:"backImageUrl" gorm:"column:back_image_url;not null"`
	Status        string     `json:"status" gorm:"column:status;not null;default:pending" example:"pending" enums:"pending,approved,rejected"`
	SubmittedAt   time.Time  `json:"submittedAt" gorm:"column:submitted_at;not null"`
	ReviewedAt    *time.Time `json:"reviewedAt" gorm:"column:reviewed_at"`
	ReviewNotes   *string    `json:"reviewNotes" gorm:"column:review_notes"`
}

func (DocumentVerification) TableName() string {
	return "document_verifications"
}

// NewestFirst orders by submission time descending, newer ids first on ties.
func NewestFirst(a, b *DocumentVerification) int {
	if c := b.SubmittedAt.Compare(a.SubmittedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

type CreateDocumentRequest struct {
	UserID        int64   `json:"userId" binding:"required,gt=0" example:"1"`
	DocumentType  string  `json:"documentType" binding:"required,oneof=passport drivers_license national_id" example:"passport"`
	FrontImageURL string  `json:"frontImageUrl" binding:"required,max=2048"`
	BackImageURL  string  `json:"backImageUrl" binding:"required,max=2048"`
	Status        *string `json:"status" binding:"omitempty,oneof=pending approved rejected" example:"pending"`
	ReviewNotes   *string `json:"reviewNotes" binding:"omitempty,max=1000"`
}

func NewDocumentVerification(req CreateDocumentRequest, id int64, now time.Time) DocumentVerification {
	d := DocumentVerification{
		ID:            id,
		UserID:        req.UserID,
		DocumentType:  req.DocumentType,
		FrontImageURL: req.FrontImageURL,
		BackImageURL:  req.BackImageURL,
		Status:        StatusPending,
		SubmittedAt:   now,
		ReviewNotes:   req.ReviewNotes,
	}
	if req.Status != nil && *req.Status != "" {
		d.Status = *req.Status
	}
	return d
}

type UpdateDocumentRequest struct {
	UserID        optional.Field[int64]     `json:"userId" swaggertype:"integer"`
	DocumentType  optional.Field[string]    `json:"documentType" swaggertype:"string"`
	FrontImageURL optional.Field[string]    `json:"frontImageUrl" swaggertype:"string"`
	BackImageURL  optional.Field[string]    `json:"backImageUrl" swaggertype:"string"`
	Status        optional.Field[string]    `json:"status" swaggertype:"string"`
	ReviewedAt    optional.Field[time.Time] `json:"reviewedAt" swaggertype:"string" format:"date-time"`
	ReviewNotes   optional.Field[string]    `json:"reviewNotes" swaggertype:"string"`
}

func (r *UpdateDocumentRequest) Validate() error {
	c := &validation.Checker{}

	if validation.NotNull(c, "userId", r.UserID) {
		c.Add("userId", validation.ValidatePositiveInt(r.UserID.Value, "userId"))
	}
	if validation.NotNull(c, "documentType", r.DocumentType) {
		c.Add("documentType", validation.ValidateOneOf(r.DocumentType.Value, validation.DocumentTypes))
	}
	if validation.NotNull(c, "frontImageUrl", r.FrontImageURL) {
		c.Add("frontImageUrl", validation.ValidateRequiredString(r.FrontImageURL.Value, validation.MaxURLLength))
	}
	if validation.NotNull(c, "backImageUrl", r.BackImageURL) {
		c.Add("backImageUrl", validation.ValidateRequiredString(r.BackImageURL.Value, validation.MaxURLLength))
	}
	if validation.NotNull(c, "status", r.Status) {
		c.Add("status", validation.ValidateOneOf(r.Status.Value, validation.DocumentStatuses))
	}
	if r.ReviewNotes.Present() {
		c.Add("reviewNotes", validation.ValidateMaxLength(r.ReviewNotes.Value, validation.MaxNotesLength))
	}

	return c.Err("Invalid update data")
}

func (r *UpdateDocumentRequest) ApplyTo(d *DocumentVerification) {
	r.UserID.Apply(&d.UserID)
	r.DocumentType.Apply(&d.DocumentType)
	r.FrontImageURL.Apply(&d.FrontImageURL)
	r.BackImageURL.Apply(&d.BackImageURL)
	r.Status.Apply(&d.Status)
	r.ReviewedAt.ApplyNullable(&d.ReviewedAt)
	r.ReviewNotes.ApplyNullable(&d.ReviewNotes)
}

func (r *UpdateDocumentRequest) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if r.UserID.Present() {
		cols["user_id"] = r.UserID.Value
	}
	if r.DocumentType.Present() {
		cols["document_type"] = r.DocumentType.Value
	}
	if r.FrontImageURL.Present() {
		cols["front_image_url"] = r.FrontImageURL.Value
	}
	if r.BackImageURL.Present() {
		cols["back_image_url"] = r.BackImageURL.Value
	}
	if r.Status.Present() {
		cols["status"] = r.Status.Value
	}
	if r.ReviewedAt.Set {
		cols["reviewed_at"] = r.ReviewedAt.Ptr()
	}
	if r.ReviewNotes.Set {
		cols["review_notes"] = r.ReviewNotes.Ptr()
	}
	return cols
}
