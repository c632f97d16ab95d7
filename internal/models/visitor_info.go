package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

func init() {
	// Admission prices go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// VisitorInfoID is the primary key of the only visitor_info row.
const VisitorInfoID = 1

type Admission struct {
	Adult  decimal.Decimal `json:"adult"`
	Child  decimal.Decimal `json:"child"`
	Senior decimal.Decimal `json:"senior"`
}

// ErrInvalidAmount marks an admission price that does not fit NUMERIC(10,2).
var ErrInvalidAmount = errors.New("must have at most 8 integer digits and 2 decimal places")

// admissionLimit is the smallest magnitude NUMERIC(10,2) cannot hold.
var admissionLimit = decimal.New(1, 8)

// Validate checks that every price is stored without rounding or overflow.
func (a Admission) Validate() error {
	prices := []struct {
		name  string
		value decimal.Decimal
	}{
		{"adult", a.Adult},
		{"child", a.Child},
		{"senior", a.Senior},
	}
	for _, p := range prices {
		if !p.value.Equal(p.value.Truncate(2)) || p.value.Abs().GreaterThanOrEqual(admissionLimit) {
			return fmt.Errorf("admission.%s %w", p.name, ErrInvalidAmount)
		}
	}
	return nil
}

type Contact struct {
	Phone string `json:"phone" validate:"required,max=50"`
	Email string `json:"email" validate:"required,max=255"`
}

type VisitorInfo struct {
	Hours     string    `json:"hours" validate:"required,max=255"`
	Admission Admission `json:"admission"`
	Location  string    `json:"location" validate:"required,max=255"`
	Contact   Contact   `json:"contact"`
}

// VisitorInfoRow is the flat storage shape of VisitorInfo.
type VisitorInfoRow struct {
	bun.BaseModel `bun:"table:visitor_info,alias:vi"`

	ID              int16           `bun:"id,pk"`
	Hours           string          `bun:"hours,notnull"`
	AdultAdmission  decimal.Decimal `bun:"adult_admission,type:decimal(10,2),notnull"`
	ChildAdmission  decimal.Decimal `bun:"child_admission,type:decimal(10,2),notnull"`
	SeniorAdmission decimal.Decimal `bun:"senior_admission,type:decimal(10,2),notnull"`
	Location        string          `bun:"location,notnull"`
	Phone           string          `bun:"phone,notnull"`
	Email           string          `bun:"email,notnull"`
	UpdatedAt       time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func (v VisitorInfo) Row() *VisitorInfoRow {
	return &VisitorInfoRow{
		ID:              VisitorInfoID,
		Hours:           v.Hours,
		AdultAdmission:  v.Admission.Adult,
		ChildAdmission:  v.Admission.Child,
		SeniorAdmission: v.Admission.Senior,
		Location:        v.Location,
		Phone:           v.Contact.Phone,
		Email:           v.Contact.Email,
	}
}

func (r *VisitorInfoRow) VisitorInfo() VisitorInfo {
	return VisitorInfo{
		Hours: r.Hours,
		Admission: Admission{
			Adult:  r.AdultAdmission,
			Child:  r.ChildAdmission,
			Senior: r.SeniorAdmission,
		},
		Location: r.Location,
		Contact: Contact{
			Phone: r.Phone,
			Email: r.Email,
		},
	}
}

// DefaultVisitorInfo is stored the first time visitor info is read.
func DefaultVisitorInfo() VisitorInfo {
	return VisitorInfo{
		Hours: "Monday - Sunday: 9:00 AM - 5:00 PM",
		Admission: Admission{
			Adult:  decimal.NewFromInt(15),
			Child:  decimal.NewFromInt(8),
			Senior: decimal.NewFromInt(10),
		},
		Location: "123 Museum Street, City, Country",
		Contact: Contact{
			Phone: "(123) 456-7890",
			Email: "info@museumofnaturalhistory.com",
		},
	}
}
