package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"pa_dog_license/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidStep = errors.New("invalid wizard step")

var (
	zip5Pattern  = regexp.MustCompile(`^\d{5}$`)
	phonePattern = regexp.MustCompile(`^[\d\s()+-]+$`)
)

// NumberField accepts a JSON number or a numeric string, and binds from form
// values as-is, so a bad entry reaches validation instead of failing binding.
type NumberField string

func (n *NumberField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberField(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumberField(num.String())
	return nil
}

// Float returns 0 for anything that does not parse.
func (n NumberField) Float() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err != nil {
		return 0
	}
	return f
}

type OwnerStep struct {
	OwnerFirstName string `json:"ownerFirstName" form:"ownerFirstName" binding:"min=2"`
	OwnerLastName  string `json:"ownerLastName" form:"ownerLastName" binding:"min=2"`
	OwnerAddress   string `json:"ownerAddress" form:"ownerAddress" binding:"min=1"`
	OwnerCity      string `json:"ownerCity" form:"ownerCity" binding:"min=1"`
	OwnerZipCode   string `json:"ownerZipCode" form:"ownerZipCode" binding:"zip5"`
	OwnerPhone     string `json:"ownerPhone" form:"ownerPhone" binding:"phone,min=10"`
	OwnerEmail     string `json:"ownerEmail" form:"ownerEmail" binding:"email"`
}

type DogStep struct {
	DogName          string      `json:"dogName" form:"dogName" binding:"min=1"`
	DogBreed         string      `json:"dogBreed" form:"dogBreed" binding:"min=1"`
	DogColor         string      `json:"dogColor" form:"dogColor" binding:"min=1"`
	DogGender        string      `json:"dogGender" form:"dogGender" binding:"oneof=male female"`
	DogAge           NumberField `json:"dogAge" form:"dogAge" swaggertype:"number" binding:"positive_number"`
	DogWeight        NumberField `json:"dogWeight" form:"dogWeight" swaggertype:"number" binding:"positive_number"`
	IsSpayedNeutered string      `json:"isSpayedNeutered" form:"isSpayedNeutered" binding:"oneof=yes no"`
}

type VaccinationStep struct {
	RabiesVaccinationDate   string `json:"rabiesVaccinationDate" form:"rabiesVaccinationDate" binding:"min=1"`
	RabiesVaccinationExpiry string `json:"rabiesVaccinationExpiry" form:"rabiesVaccinationExpiry" binding:"min=1"`
	VeterinarianName        string `json:"veterinarianName" form:"veterinarianName" binding:"min=1"`
	VeterinarianAddress     string `json:"veterinarianAddress" form:"veterinarianAddress" binding:"min=1"`
}

type LicenseStep struct {
	LicensePeriod string `json:"licensePeriod" form:"licensePeriod" binding:"oneof=1-year 2-year 3-year"`
}

// ApplicationRequest is the wizard draft. It is bound from JSON or from the
// wizard form; every step group is validated on its own.
type ApplicationRequest struct {
	OwnerStep
	DogStep
	VaccinationStep
	LicenseStep
}

// Step describes one wizard step and the fields it owns.
type Step struct {
	Index       int
	Title       string
	Description string
	Fields      []string
}

var Steps = []Step{
	{
		Index: 0, Title: "Owner Information", Description: "Your contact details",
		Fields: []string{"ownerFirstName", "ownerLastName", "ownerAddress", "ownerCity", "ownerZipCode", "ownerPhone", "ownerEmail"},
	},
	{
		Index: 1, Title: "Dog Information", Description: "Details about your dog",
		Fields: []string{"dogName", "dogBreed", "dogColor", "dogGender", "dogAge", "dogWeight", "isSpayedNeutered"},
	},
	{
		Index: 2, Title: "Vaccination & Vet", Description: "Health and veterinary info",
		Fields: []string{"rabiesVaccinationDate", "rabiesVaccinationExpiry", "veterinarianName", "veterinarianAddress"},
	},
	{
		Index: 3, Title: "License & Payment", Description: "License period and payment",
		Fields: []string{"licensePeriod"},
	},
}

const LastStep = 3

// fieldMessages holds the user-facing message per field. A "field.tag" entry
// overrides the field default for that rule.
var fieldMessages = map[string]string{
	"ownerFirstName":          "First name must be at least 2 characters",
	"ownerLastName":           "Last name must be at least 2 characters",
	"ownerAddress":            "Address is required",
	"ownerCity":               "City is required",
	"ownerZipCode":            "ZIP code must be 5 digits",
	"ownerPhone.phone":        "Invalid phone format",
	"ownerPhone.min":          "Phone number is required",
	"ownerEmail":              "Invalid email format",
	"dogName":                 "Dog name is required",
	"dogBreed":                "Breed is required",
	"dogColor":                "Color is required",
	"dogGender":               "Please select a gender",
	"dogAge":                  "Age must be a positive number",
	"dogWeight":               "Weight must be a positive number",
	"isSpayedNeutered":        "Please select yes or no",
	"rabiesVaccinationDate":   "Vaccination date is required",
	"rabiesVaccinationExpiry": "Expiry date is required",
	"veterinarianName":        "Veterinarian name is required",
	"veterinarianAddress":     "Veterinarian address is required",
	"licensePeriod":           "Please select a license period",
}

func messageFor(field, tag string) string {
	if m, ok := fieldMessages[field+"."+tag]; ok {
		return m
	}
	if m, ok := fieldMessages[field]; ok {
		return m
	}
	return "Invalid value"
}

var registerOnce sync.Once

// Engine returns gin's validator with the draft rules registered.
func Engine() *validator.Validate {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	registerOnce.Do(func() {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("zip5", func(fl validator.FieldLevel) bool {
			return zip5Pattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("positive_number", func(fl validator.FieldLevel) bool {
			f, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
			return err == nil && f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
		})
	})
	return v
}

// FieldErrors translates a validation error into field -> message, keeping
// only the first failure per field.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = messageFor(fe.Field(), fe.Tag())
	}
	return out
}

// BindDraft binds JSON or form data into r. Rule violations are not an error
// here; callers validate per step.
func BindDraft(c *gin.Context, r *ApplicationRequest) error {
	Engine()
	if err := c.ShouldBind(r); err != nil && !IsValidationOnly(err) {
		return err
	}
	return nil
}

// IsValidationOnly reports whether err came from struct validation rather
// than from decoding the payload.
func IsValidationOnly(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func (r ApplicationRequest) stepGroup(step int) (any, error) {
	switch step {
	case 0:
		return r.OwnerStep, nil
	case 1:
		return r.DogStep, nil
	case 2:
		return r.VaccinationStep, nil
	case 3:
		return r.LicenseStep, nil
	default:
		return nil, ErrInvalidStep
	}
}

// ValidateStep checks only the fields owned by step. An empty map means the
// step is valid.
func (r ApplicationRequest) ValidateStep(step int) (map[string]string, error) {
	group, err := r.stepGroup(step)
	if err != nil {
		return nil, err
	}
	return FieldErrors(Engine().Struct(group)), nil
}

// Validate checks every step.
func (r ApplicationRequest) Validate() map[string]string {
	out := map[string]string{}
	for _, s := range Steps {
		fields, _ := r.ValidateStep(s.Index)
		for k, v := range fields {
			out[k] = v
		}
	}
	return out
}

// FirstInvalidStep returns the lowest step with a field error, or -1.
func FirstInvalidStep(fieldErrs map[string]string) int {
	for _, s := range Steps {
		for _, f := range s.Fields {
			if _, bad := fieldErrs[f]; bad {
				return s.Index
			}
		}
	}
	return -1
}

func (r ApplicationRequest) ToEntity() entities.Application {
	return entities.Application{
		OwnerFirstName:          r.OwnerFirstName,
		OwnerLastName:           r.OwnerLastName,
		OwnerAddress:            r.OwnerAddress,
		OwnerCity:               r.OwnerCity,
		OwnerZipCode:            r.OwnerZipCode,
		OwnerPhone:              r.OwnerPhone,
		OwnerEmail:              r.OwnerEmail,
		DogName:                 r.DogName,
		DogBreed:                r.DogBreed,
		DogColor:                r.DogColor,
		DogGender:               entities.DogGender(r.DogGender),
		DogAge:                  r.DogAge.Float(),
		DogWeight:               r.DogWeight.Float(),
		IsSpayedNeutered:        r.IsSpayedNeutered,
		RabiesVaccinationDate:   r.RabiesVaccinationDate,
		RabiesVaccinationExpiry: r.RabiesVaccinationExpiry,
		VeterinarianName:        r.VeterinarianName,
		VeterinarianAddress:     r.VeterinarianAddress,
		LicensePeriod:           entities.LicensePeriod(r.LicensePeriod),
	}
}

// FieldValues returns the draft keyed by field name, as the wizard form
// carries it between steps.
func (r ApplicationRequest) FieldValues() map[string]string {
	return map[string]string{
		"ownerFirstName":          r.OwnerFirstName,
		"ownerLastName":           r.OwnerLastName,
		"ownerAddress":            r.OwnerAddress,
		"ownerCity":               r.OwnerCity,
		"ownerZipCode":            r.OwnerZipCode,
		"ownerPhone":              r.OwnerPhone,
		"ownerEmail":              r.OwnerEmail,
		"dogName":                 r.DogName,
		"dogBreed":                r.DogBreed,
		"dogColor":                r.DogColor,
		"dogGender":               r.DogGender,
		"dogAge":                  string(r.DogAge),
		"dogWeight":               string(r.DogWeight),
		"isSpayedNeutered":        r.IsSpayedNeutered,
		"rabiesVaccinationDate":   r.RabiesVaccinationDate,
		"rabiesVaccinationExpiry": r.RabiesVaccinationExpiry,
		"veterinarianName":        r.VeterinarianName,
		"veterinarianAddress":     r.VeterinarianAddress,
		"licensePeriod":           r.LicensePeriod,
	}
}
