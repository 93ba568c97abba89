package validation

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"trading-platform-backend/internal/common/errors"
	"trading-platform-backend/internal/common/optional"
)

const (
	// Максимальные длины для различных полей
	MaxEmailLength       = 254
	MaxNameLength        = 64
	MaxPhoneLength       = 32
	MaxCountryLength     = 64
	MaxCurrencyLength    = 8
	MaxTitleLength       = 200
	MaxMessageLength     = 2000
	MaxDescriptionLength = 1000
	MaxReferenceLength   = 128
	MaxURLLength         = 2048
	MaxNotesLength       = 1000
	MaxSymbolLength      = 32
)

// Точность денежных колонок (precision, scale)
var (
	Money   = DecimalSpec{Precision: 10, Scale: 2}
	BTC     = DecimalSpec{Precision: 10, Scale: 8}
	Price   = DecimalSpec{Precision: 18, Scale: 8}
	Percent = DecimalSpec{Precision: 5, Scale: 2}
	Volume  = DecimalSpec{Precision: 18, Scale: 2}
)

// Допустимые значения перечислимых полей
var (
	TransactionTypes    = []string{"deposit", "withdrawal", "profit", "bonus"}
	TransactionStatuses = []string{"pending", "completed", "failed", "cancelled"}
	NotificationTypes   = []string{"success", "warning", "info", "trading"}
	DocumentTypes       = []string{"passport", "drivers_license", "national_id"}
	DocumentStatuses    = []string{"pending", "approved", "rejected"}
	PaymentStatuses     = []string{"pending", "confirmed", "rejected"}
)

// DecimalSpec describes a fixed-point column.
type DecimalSpec struct {
	Precision int32
	Scale     int32
}

func (s DecimalSpec) String() string {
	return fmt.Sprintf("%d:%d", s.Precision, s.Scale)
}

// ParseDecimal parses value and rounds it to the column scale. Values whose
// integer part does not fit the column are rejected.
func ParseDecimal(value string, spec DecimalSpec) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("must be a decimal number")
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("must be a decimal number")
	}
	d = d.Round(spec.Scale)
	limit := decimal.New(1, spec.Precision-spec.Scale)
	if d.Abs().Cmp(limit) >= 0 {
		return decimal.Zero, fmt.Errorf("must have at most %d digits before the decimal point", spec.Precision-spec.Scale)
	}
	return d, nil
}

// FormatDecimal returns value in canonical fixed-scale form ("12.5" -> "12.50").
// Invalid input is returned unchanged; callers validate first.
func FormatDecimal(value string, spec DecimalSpec) string {
	d, err := ParseDecimal(value, spec)
	if err != nil {
		return value
	}
	return d.StringFixed(spec.Scale)
}

// ZeroDecimal returns zero rendered at the column scale.
func ZeroDecimal(spec DecimalSpec) string {
	return decimal.Zero.StringFixed(spec.Scale)
}

// ValidateEmail проверяет адрес теми же правилами, что и тег binding:"email"
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("email cannot exceed %d characters", MaxEmailLength)
	}
	if err := engine().Var(email, "email"); err != nil {
		return fmt.Errorf("email is not a valid address")
	}
	return nil
}

// engine возвращает валидатор gin, на котором зарегистрированы теги DTO
func engine() *validator.Validate {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v
	}
	return fallbackEngine
}

var fallbackEngine = validator.New()

// ValidateRequiredString проверяет обязательную строку и ее длину
func ValidateRequiredString(value string, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("cannot be empty")
	}
	if len(value) > maxLength {
		return fmt.Errorf("cannot exceed %d characters", maxLength)
	}
	return nil
}

// ValidateMaxLength проверяет только длину необязательной строки
func ValidateMaxLength(value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("cannot exceed %d characters", maxLength)
	}
	return nil
}

// ValidateOneOf проверяет, что значение входит в допустимый набор
func ValidateOneOf(value string, allowed []string) error {
	for _, v := range allowed {
		if value == v {
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
}

// ValidatePositiveInt проверяет, что число положительное
func ValidatePositiveInt(value int64, fieldName string) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive", fieldName)
	}
	return nil
}

// ValidatePositiveDecimal проверяет денежную сумму больше нуля
func ValidatePositiveDecimal(value string, spec DecimalSpec) error {
	d, err := ParseDecimal(value, spec)
	if err != nil {
		return err
	}
	if !d.IsPositive() {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

// Checker collects itemised field errors for hand-validated payloads.
type Checker struct {
	fields []errors.FieldError
}

// Add records err against field when err is not nil.
func (c *Checker) Add(field string, err error) {
	if err != nil {
		c.fields = append(c.fields, errors.FieldError{Field: field, Reason: err.Error()})
	}
}

// NotNull rejects an explicit null on a non-nullable attribute.
func NotNull[T any](c *Checker, field string, f optional.Field[T]) bool {
	if f.Set && f.Null {
		c.Add(field, fmt.Errorf("cannot be null"))
		return false
	}
	return f.Present()
}

// Err returns the collected errors as a single validation AppError, or nil.
func (c *Checker) Err(message string) error {
	if len(c.fields) == 0 {
		return nil
	}
	return errors.NewValidationErrors(message, c.fields)
}

var registerOnce sync.Once

// RegisterBindings installs the custom tags used by request DTOs on gin's
// validator and makes field errors report JSON names.
// Tags: decimal=<precision>:<scale> and tier.
func RegisterBindings(tierNames []string) {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
			spec, err := parseSpec(fl.Param())
			if err != nil {
				return false
			}
			_, err = ParseDecimal(fl.Field().String(), spec)
			return err == nil
		})

		_ = v.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
			return ValidateOneOf(fl.Field().String(), tierNames) == nil
		})
	})
}

func parseSpec(param string) (DecimalSpec, error) {
	parts := strings.Split(param, ":")
	if len(parts) != 2 {
		return DecimalSpec{}, fmt.Errorf("invalid decimal spec %q", param)
	}
	p, err := strconv.Atoi(parts[0])
	if err != nil {
		return DecimalSpec{}, err
	}
	s, err := strconv.Atoi(parts[1])
	if err != nil {
		return DecimalSpec{}, err
	}
	return DecimalSpec{Precision: int32(p), Scale: int32(s)}, nil
}

// FromBindError converts a ShouldBindJSON failure into a validation AppError
// with one entry per offending field.
func FromBindError(err error, message string) *errors.AppError {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		fields := make([]errors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, errors.FieldError{Field: fe.Field(), Reason: describeTag(fe)})
		}
		return errors.NewValidationErrors(message, fields)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &typeErr):
		return errors.NewValidationErrors(message, []errors.FieldError{{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("must be of type %s", typeErr.Type.String()),
		}})
	case stderrors.As(err, &syntaxErr), stderrors.Is(err, io.EOF), stderrors.Is(err, io.ErrUnexpectedEOF):
		return errors.NewValidationErrors(message, []errors.FieldError{{Field: "body", Reason: "must be a valid JSON object"}})
	}

	return errors.NewValidationErrors(message, []errors.FieldError{{Field: "body", Reason: err.Error()}})
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("cannot exceed %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "decimal":
		return "must be a decimal number fitting " + fe.Param()
	case "tier":
		return "must be a known account tier"
	case "url":
		return "must be a valid URL"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
