package participants

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bkuzmin/participant-registry/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ParticipantFacet carries the personal fields of the request body.
// Pointer fields distinguish absent keys so every missing field is
// reported individually; min=1 rejects present-but-empty strings,
// which required alone does not catch on pointers.
type ParticipantFacet struct {
	Email     *string `json:"email" validate:"required,simple_email"`
	Firstname *string `json:"firstname" validate:"required,min=1"`
	Lastname  *string `json:"lastname" validate:"required,min=1"`
	Dob       *string `json:"dob" validate:"required,calendar_date"`
}

// WorkFacet carries the employment fields of the request body.
// Salary stays raw so a numeric string coerces instead of failing the
// whole body decode.
type WorkFacet struct {
	CompanyName *string         `json:"companyname" validate:"required,min=1"`
	Salary      json.RawMessage `json:"salary" validate:"required,numeric_value"`
	Currency    *string         `json:"currency" validate:"required,min=1"`
}

// HomeFacet carries the location fields of the request body.
type HomeFacet struct {
	Country *string `json:"country" validate:"required,min=1"`
	City    *string `json:"city" validate:"required,min=1"`
}

// ParticipantRequest is the nested body accepted by create and full update.
type ParticipantRequest struct {
	Participant *ParticipantFacet `json:"participant" validate:"required"`
	Work        *WorkFacet        `json:"work" validate:"required"`
	Home        *HomeFacet        `json:"home" validate:"required"`
}

// ToDomain converts a validated request to the flat domain model.
func (r *ParticipantRequest) ToDomain() *domain.Participant {
	salary, _ := parseSalary(r.Work.Salary)

	return &domain.Participant{
		Email:       *r.Participant.Email,
		Firstname:   *r.Participant.Firstname,
		Lastname:    *r.Participant.Lastname,
		Dob:         *r.Participant.Dob,
		CompanyName: *r.Work.CompanyName,
		Salary:      salary,
		Currency:    *r.Work.Currency,
		Country:     *r.Home.Country,
		City:        *r.Home.City,
	}
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validator runs the exhaustive field and format checks on participant
// request bodies. It never touches storage.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the participant-specific rules
// registered.
func NewValidator() *Validator {
	v := validator.New()

	// Report fields by their json names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "simple_email", validateSimpleEmail)
	mustRegister(v, "calendar_date", validateCalendarDate)
	mustRegister(v, "numeric_value", validateNumericValue)

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Validate returns nil for a valid request, or every validation error
// found, in field order. The check is exhaustive, not fail-fast.
func (v *Validator) Validate(req *ParticipantRequest) []string {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldErrorMessage(fe))
	}
	return details
}

func fieldErrorMessage(fe validator.FieldError) string {
	// Namespace is "ParticipantRequest.participant.email"; drop the root.
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}

	switch fe.Tag() {
	case "required", "min":
		switch path {
		case "participant", "work", "home":
			return fmt.Sprintf("%s object is required", path)
		}
		// Empty strings report the same as absent fields.
		return fmt.Sprintf("%s is required", path)
	case "simple_email":
		return fmt.Sprintf("%s must be a valid email address", path)
	case "calendar_date":
		return fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", path)
	case "numeric_value":
		return fmt.Sprintf("%s must be a number", path)
	}
	return fmt.Sprintf("%s is invalid", path)
}

func validateSimpleEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

// validateCalendarDate requires digit-grouped YYYY-MM-DD that parses to
// a real calendar date, so 2024-02-31 fails while 2024-02-29 passes.
func validateCalendarDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !datePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func validateNumericValue(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(json.RawMessage)
	if !ok {
		return false
	}
	_, err := parseSalary(raw)
	return err == nil
}

// parseSalary coerces a raw JSON value to a float: a JSON number, or a
// string holding one. Zero and negative values are allowed.
func parseSalary(raw json.RawMessage) (float64, error) {
	value := strings.TrimSpace(string(raw))
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	if value == "" || value == "null" {
		return 0, fmt.Errorf("salary is not a number: %q", string(raw))
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("salary is not a number: %q", string(raw))
	}
	return f, nil
}
