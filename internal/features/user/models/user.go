package models

import (
	"time"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/common/validation"
	tiermodels "trading-platform-backend/internal/features/tier/models"
)

// User представляет торговый аккаунт пользователя
// @Description Торговый аккаунт
type User struct {
	ID             int64     `json:"id" gorm:"primaryKey" example:"1"`
	Email          string    `json:"email" gorm:"column:email;not null;uniqueIndex" example:"jane@example.com"`
	FirstName      string    `json:"firstName" gorm:"column:first_name;not null" example:"Jane"`
	LastName       string    `json:"lastName" gorm:"column:last_name;not null" example:"Doe"`
	Phone          string    `json:"phone" gorm:"column:phone;not null" example:"+15550100"`
	Country        string    `json:"country" gorm:"column:country;not null" example:"US"`
	Currency       string    `json:"currency" gorm:"column:currency;not null" example:"USD"`
	AccountTier    string    `json:"accountTier" gorm:"column:account_tier;not null;default:Bronze" example:"Bronze" enums:"Bronze,Silver,Gold,Platinum,Diamond"`
	IsVerified     bool      `json:"isVerified" gorm:"column:is_verified;not null;default:false"`
	Invested       string    `json:"invested" gorm:"column:invested;type:numeric(10,2);not null;default:0.00" example:"0.00"`
	Profit         string    `json:"profit" gorm:"column:profit;type:numeric(10,2);not null;default:0.00" example:"0.00"`
	Bonus          string    `json:"bonus" gorm:"column:bonus;type:numeric(10,2);not null;default:0.00" example:"0.00"`
	Balance        string    `json:"balance" gorm:"column:balance;type:numeric(10,2);not null;default:0.00" example:"0.00"`
	BTCEquivalent  string    `json:"btcEquivalent" gorm:"column:btc_equivalent;type:numeric(10,8);not null;default:0.00000000" example:"0.00000000"`
	DepositAddress *string   `json:"depositAddress" gorm:"column:deposit_address"`
	CreatedAt      time.Time `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"column:updated_at;not null"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the body of POST /users. Omitted optional fields get
// the account defaults.
type CreateUserRequest struct {
	Email          string  `json:"email" binding:"required,email,max=254" example:"jane@example.com"`
	FirstName      string  `json:"firstName" binding:"required,max=64" example:"Jane"`
	LastName       string  `json:"lastName" binding:"required,max=64" example:"Doe"`
	Phone          string  `json:"phone" binding:"required,max=32" example:"+15550100"`
	Country        string  `json:"country" binding:"required,max=64" example:"US"`
	Currency       string  `json:"currency" binding:"required,max=8" example:"USD"`
	AccountTier    *string `json:"accountTier" binding:"omitempty,tier" example:"Bronze"`
	IsVerified     *bool   `json:"isVerified"`
	Invested       *string `json:"invested" binding:"omitempty,decimal=10:2" example:"0.00"`
	Profit         *string `json:"profit" binding:"omitempty,decimal=10:2" example:"0.00"`
	Bonus          *string `json:"bonus" binding:"omitempty,decimal=10:2" example:"0.00"`
	Balance        *string `json:"balance" binding:"omitempty,decimal=10:2" example:"0.00"`
	BTCEquivalent  *string `json:"btcEquivalent" binding:"omitempty,decimal=10:8" example:"0.00000000"`
	DepositAddress *string `json:"depositAddress" binding:"omitempty,max=128"`
}

// NewUser builds the stored record for req, filling every omitted field with
// its default. All storage drivers go through it.
func NewUser(req CreateUserRequest, id int64, now time.Time) User {
	u := User{
		ID:             id,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Country:        req.Country,
		Currency:       req.Currency,
		AccountTier:    tiermodels.DefaultTier,
		Invested:       money(req.Invested),
		Profit:         money(req.Profit),
		Bonus:          money(req.Bonus),
		Balance:        money(req.Balance),
		BTCEquivalent:  validation.ZeroDecimal(validation.BTC),
		DepositAddress: req.DepositAddress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.AccountTier != nil && *req.AccountTier != "" {
		u.AccountTier = *req.AccountTier
	}
	if req.IsVerified != nil {
		u.IsVerified = *req.IsVerified
	}
	if req.BTCEquivalent != nil {
		u.BTCEquivalent = validation.FormatDecimal(*req.BTCEquivalent, validation.BTC)
	}
	return u
}

func money(v *string) string {
	if v == nil {
		return validation.ZeroDecimal(validation.Money)
	}
	return validation.FormatDecimal(*v, validation.Money)
}

// UpdateUserRequest is the body of PUT /users/{id}. Only supplied keys change.
type UpdateUserRequest struct {
	Email          optional.Field[string] `json:"email" swaggertype:"string"`
	FirstName      optional.Field[string] `json:"firstName" swaggertype:"string"`
	LastName       optional.Field[string] `json:"lastName" swaggertype:"string"`
	Phone          optional.Field[string] `json:"phone" swaggertype:"string"`
	Country        optional.Field[string] `json:"country" swaggertype:"string"`
	Currency       optional.Field[string] `json:"currency" swaggertype:"string"`
	AccountTier    optional.Field[string] `json:"accountTier" swaggertype:"string"`
	IsVerified     optional.Field[bool]   `json:"isVerified" swaggertype:"boolean"`
	Invested       optional.Field[string] `json:"invested" swaggertype:"string"`
	Profit         optional.Field[string] `json:"profit" swaggertype:"string"`
	Bonus          optional.Field[string] `json:"bonus" swaggertype:"string"`
	Balance        optional.Field[string] `json:"balance" swaggertype:"string"`
	BTCEquivalent  optional.Field[string] `json:"btcEquivalent" swaggertype:"string"`
	DepositAddress optional.Field[string] `json:"depositAddress" swaggertype:"string"`
}

func (r *UpdateUserRequest) Validate() error {
	c := &validation.Checker{}

	if validation.NotNull(c, "email", r.Email) {
		c.Add("email", validation.ValidateEmail(r.Email.Value))
	}
	texts := []struct {
		field string
		value optional.Field[string]
		max   int
	}{
		{"firstName", r.FirstName, validation.MaxNameLength},
		{"lastName", r.LastName, validation.MaxNameLength},
		{"phone", r.Phone, validation.MaxPhoneLength},
		{"country", r.Country, validation.MaxCountryLength},
		{"currency", r.Currency, validation.MaxCurrencyLength},
	}
	for _, t := range texts {
		if validation.NotNull(c, t.field, t.value) {
			c.Add(t.field, validation.ValidateRequiredString(t.value.Value, t.max))
		}
	}
	if validation.NotNull(c, "accountTier", r.AccountTier) {
		c.Add("accountTier", validation.ValidateOneOf(r.AccountTier.Value, tiermodels.Names()))
	}
	validation.NotNull(c, "isVerified", r.IsVerified)

	amounts := []struct {
		field string
		value optional.Field[string]
		spec  validation.DecimalSpec
	}{
		{"invested", r.Invested, validation.Money},
		{"profit", r.Profit, validation.Money},
		{"bonus", r.Bonus, validation.Money},
		{"balance", r.Balance, validation.Money},
		{"btcEquivalent", r.BTCEquivalent, validation.BTC},
	}
	for _, a := range amounts {
		if validation.NotNull(c, a.field, a.value) {
			_, err := validation.ParseDecimal(a.value.Value, a.spec)
			c.Add(a.field, err)
		}
	}
	if r.DepositAddress.Present() {
		c.Add("depositAddress", validation.ValidateMaxLength(r.DepositAddress.Value, validation.MaxReferenceLength))
	}

	return c.Err("Invalid update data")
}

// ApplyTo merges the supplied fields into u and refreshes UpdatedAt.
func (r *UpdateUserRequest) ApplyTo(u *User, now time.Time) {
	r.Email.Apply(&u.Email)
	r.FirstName.Apply(&u.FirstName)
	r.LastName.Apply(&u.LastName)
	r.Phone.Apply(&u.Phone)
	r.Country.Apply(&u.Country)
	r.Currency.Apply(&u.Currency)
	r.AccountTier.Apply(&u.AccountTier)
	r.IsVerified.Apply(&u.IsVerified)
	applyDecimal(r.Invested, &u.Invested, validation.Money)
	applyDecimal(r.Profit, &u.Profit, validation.Money)
	applyDecimal(r.Bonus, &u.Bonus, validation.Money)
	applyDecimal(r.Balance, &u.Balance, validation.Money)
	applyDecimal(r.BTCEquivalent, &u.BTCEquivalent, validation.BTC)
	r.DepositAddress.ApplyNullable(&u.DepositAddress)
	u.UpdatedAt = now
}

// Columns returns the column changes for a SQL UPDATE. Cleared nullable
// columns map to nil.
func (r *UpdateUserRequest) Columns(now time.Time) map[string]interface{} {
	cols := map[string]interface{}{"updated_at": now}
	set := func(col string, f optional.Field[string]) {
		if f.Present() {
			cols[col] = f.Value
		}
	}
	set("email", r.Email)
	set("first_name", r.FirstName)
	set("last_name", r.LastName)
	set("phone", r.Phone)
	set("country", r.Country)
	set("currency", r.Currency)
	set("account_tier", r.AccountTier)
	if r.IsVerified.Present() {
		cols["is_verified"] = r.IsVerified.Value
	}
	setDecimal(cols, "invested", r.Invested, validation.Money)
	setDecimal(cols, "profit", r.Profit, validation.Money)
	setDecimal(cols, "bonus", r.Bonus, validation.Money)
	setDecimal(cols, "balance", r.Balance, validation.Money)
	setDecimal(cols, "btc_equivalent", r.BTCEquivalent, validation.BTC)
	if r.DepositAddress.Set {
		cols["deposit_address"] = r.DepositAddress.Ptr()
	}
	return cols
}

func applyDecimal(f optional.Field[string], dst *string, spec validation.DecimalSpec) {
	if f.Present() {
		*dst = validation.FormatDecimal(f.Value, spec)
	}
}

func setDecimal(cols map[string]interface{}, col string, f optional.Field[string], spec validation.DecimalSpec) {
	if f.Present() {
		cols[col] = validation.FormatDecimal(f.Value, spec)
	}
}
