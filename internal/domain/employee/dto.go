package employee

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/filter"
	"github.com/ydm-hr/hr-backend-go/internal/pkg/validator"
)

// FilterAll is the sentinel disabling a categorical filter.
const FilterAll = "all"

var (
	validPaymentTypes = []string{string(PaymentTypeMonthly), string(PaymentTypeDaily)}
	validSponsorships = []string{string(SponsorshipYDMCo), string(SponsorshipYDMEst), string(SponsorshipOutside)}
	validStatuses     = []string{string(StatusActive), string(StatusArchived)}
)

type CreateEmployeeRequest struct {
	FullName      string `json:"fullName"`
	IqamaNo       string `json:"iqamaNo"`
	Project       string `json:"project"`
	Location      string `json:"location"`
	JobTitle      string `json:"jobTitle"`
	PaymentType   string `json:"paymentType"`
	RateOfPayment string `json:"rateOfPayment"`
	Sponsorship   string `json:"sponsorship"`
	Status        string `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName is required",
		})
	}

	if validator.IsEmpty(r.IqamaNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "iqamaNo",
			Message: "iqamaNo is required",
		})
	} else if !validator.IsNumeric(strings.TrimSpace(r.IqamaNo)) {
		errs = append(errs, validator.ValidationError{
			Field:   "iqamaNo",
			Message: "iqamaNo must contain digits only",
		})
	}

	if validator.IsEmpty(r.Project) {
		errs = append(errs, validator.ValidationError{
			Field:   "project",
			Message: "project is required",
		})
	}

	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "jobTitle",
			Message: "jobTitle is required",
		})
	}

	if !validator.IsInSlice(r.PaymentType, validPaymentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "paymentType",
			Message: "paymentType must be one of: Monthly, Daily",
		})
	}

	if validator.IsEmpty(r.RateOfPayment) {
		errs = append(errs, validator.ValidationError{
			Field:   "rateOfPayment",
			Message: "rateOfPayment is required",
		})
	} else if _, err := decimal.NewFromString(strings.TrimSpace(r.RateOfPayment)); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "rateOfPayment",
			Message: "rateOfPayment must be a number",
		})
	}

	if !validator.IsInSlice(r.Sponsorship, validSponsorships) {
		errs = append(errs, validator.ValidationError{
			Field:   "sponsorship",
			Message: "sponsorship must be one of: YDM co, YDM est, Outside",
		})
	}

	// Status is optional on create; new employees default to Active.
	if r.Status != "" && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Active, Archived",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	FullName      *string `json:"fullName,omitempty"`
	IqamaNo       *string `json:"iqamaNo,omitempty"`
	Project       *string `json:"project,omitempty"`
	Location      *string `json:"location,omitempty"`
	JobTitle      *string `json:"jobTitle,omitempty"`
	PaymentType   *string `json:"paymentType,omitempty"`
	RateOfPayment *string `json:"rateOfPayment,omitempty"`
	Sponsorship   *string `json:"sponsorship,omitempty"`
	Status        *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName must not be empty",
		})
	}

	if r.IqamaNo != nil && !validator.IsNumeric(strings.TrimSpace(*r.IqamaNo)) {
		errs = append(errs, validator.ValidationError{
			Field:   "iqamaNo",
			Message: "iqamaNo must contain digits only",
		})
	}

	if r.PaymentType != nil && !validator.IsInSlice(*r.PaymentType, validPaymentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "paymentType",
			Message: "paymentType must be one of: Monthly, Daily",
		})
	}

	if r.RateOfPayment != nil {
		if _, err := decimal.NewFromString(strings.TrimSpace(*r.RateOfPayment)); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "rateOfPayment",
				Message: "rateOfPayment must be a number",
			})
		}
	}

	if r.Sponsorship != nil && !validator.IsInSlice(*r.Sponsorship, validSponsorships) {
		errs = append(errs, validator.ValidationError{
			Field:   "sponsorship",
			Message: "sponsorship must be one of: YDM co, YDM est, Outside",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Active, Archived",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeFilter carries the independently togglable predicates applied
// conjunctively to the employee collection. Empty string (or FilterAll)
// disables a clause.
type EmployeeFilter struct {
	Search      string `json:"search,omitempty"`
	Status      string `json:"status,omitempty"`
	Project     string `json:"project,omitempty"`
	JobTitle    string `json:"jobTitle,omitempty"`
	PaymentType string `json:"paymentType,omitempty"`
	Sponsorship string `json:"sponsorship,omitempty"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && f.Status != FilterAll && !validator.IsInSlice(f.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: all, Active, Archived",
		})
	}

	if f.PaymentType != "" && f.PaymentType != FilterAll && !validator.IsInSlice(f.PaymentType, validPaymentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "paymentType",
			Message: "paymentType must be one of: all, Monthly, Daily",
		})
	}

	if f.Sponsorship != "" && f.Sponsorship != FilterAll && !validator.IsInSlice(f.Sponsorship, validSponsorships) {
		errs = append(errs, validator.ValidationError{
			Field:   "sponsorship",
			Message: "sponsorship must be one of: all, YDM co, YDM est, Outside",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func active(v string) bool {
	return v != "" && v != FilterAll
}

// Predicates builds the filter clauses, cheapest first: exact categorical
// matches run before the substring search.
func (f *EmployeeFilter) Predicates() []filter.Predicate[Employee] {
	var preds []filter.Predicate[Employee]

	if active(f.Status) {
		want := Status(f.Status)
		preds = append(preds, func(e Employee) bool { return e.Status == want })
	}
	if active(f.Project) {
		preds = append(preds, func(e Employee) bool { return e.Project == f.Project })
	}
	if active(f.JobTitle) {
		preds = append(preds, func(e Employee) bool { return e.JobTitle == f.JobTitle })
	}
	if active(f.PaymentType) {
		want := PaymentType(f.PaymentType)
		preds = append(preds, func(e Employee) bool { return e.PaymentType == want })
	}
	if active(f.Sponsorship) {
		want := Sponsorship(f.Sponsorship)
		preds = append(preds, func(e Employee) bool { return e.Sponsorship == want })
	}
	if f.Search != "" {
		preds = append(preds, func(e Employee) bool {
			return filter.MatchText(f.Search, e.FullName, e.IqamaNo)
		})
	}

	return preds
}

// EmployeeResponse mirrors the sheet's mixed camel/snake field naming so
// the dashboard can consume rows unchanged.
type EmployeeResponse struct {
	ID            string `json:"id"`
	FullName      string `json:"fullName"`
	IqamaNo       string `json:"iqamaNo"`
	Project       string `json:"project"`
	Location      string `json:"location"`
	JobTitle      string `json:"jobTitle"`
	PaymentType   string `json:"paymentType"`
	RateOfPayment string `json:"rateOfPayment"`
	Sponsorship   string `json:"sponsorship"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type ListEmployeesResponse struct {
	TotalCount int                `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}
