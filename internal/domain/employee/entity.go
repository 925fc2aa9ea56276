package employee

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	FullName      string
	IqamaNo       string
	Project       string
	Location      string
	JobTitle      string
	PaymentType   PaymentType
	RateOfPayment decimal.Decimal
	Sponsorship   Sponsorship
	Status        Status
	CreatedAt     string
	UpdatedAt     string
}

type PaymentType string

const (
	PaymentTypeMonthly PaymentType = "Monthly"
	PaymentTypeDaily   PaymentType = "Daily"
)

type Sponsorship string

const (
	SponsorshipYDMCo   Sponsorship = "YDM co"
	SponsorshipYDMEst  Sponsorship = "YDM est"
	SponsorshipOutside Sponsorship = "Outside"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusArchived Status = "Archived"
)

// NormalizeStatus folds raw sheet values into the two-valued employee
// status. The sheet may hold anything; unrecognized values default to
// Active.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "archived":
		return StatusArchived
	default:
		return StatusActive
	}
}
