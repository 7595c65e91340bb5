package views

import (
	request "pa_dog_license/internal/adapter/http/dto/request"
	"pa_dog_license/internal/domain/entities"
)

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field is one rendered input of the active step.
type Field struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Error       string
	Options     []Option
}

type HiddenField struct {
	Name  string
	Value string
}

type StepMarker struct {
	Number      int
	Title       string
	Description string
	Done        bool
	Active      bool
}

type WizardData struct {
	Markers []StepMarker
	Step    request.Step
	Fields  []Field
	Hidden  []HiddenField
	IsFirst bool
	IsLast  bool
	Quote   *entities.FeeQuote
	Toast   *Toast
}

type fieldSpec struct {
	label       string
	kind        string
	placeholder string
	options     []Option
}

var fieldSpecs = map[string]fieldSpec{
	"ownerFirstName":          {label: "First Name *", kind: "text"},
	"ownerLastName":           {label: "Last Name *", kind: "text"},
	"ownerAddress":            {label: "Street Address *", kind: "text"},
	"ownerCity":               {label: "City *", kind: "text"},
	"ownerZipCode":            {label: "ZIP Code *", kind: "text", placeholder: "12345"},
	"ownerPhone":              {label: "Phone Number *", kind: "tel", placeholder: "(123) 456-7890"},
	"ownerEmail":              {label: "Email Address *", kind: "email", placeholder: "you@example.com"},
	"dogName":                 {label: "Dog's Name *", kind: "text"},
	"dogBreed":                {label: "Breed *", kind: "text"},
	"dogColor":                {label: "Primary Color *", kind: "text"},
	"dogGender":               {label: "Gender *", kind: "radio", options: []Option{{Value: "male", Label: "Male"}, {Value: "female", Label: "Female"}}},
	"dogAge":                  {label: "Age (years) *", kind: "number"},
	"dogWeight":               {label: "Weight (lbs) *", kind: "number"},
	"isSpayedNeutered":        {label: "Is the dog spayed/neutered? *", kind: "radio", options: []Option{{Value: "yes", Label: "Yes"}, {Value: "no", Label: "No"}}},
	"rabiesVaccinationDate":   {label: "Rabies Vaccination Date *", kind: "date"},
	"rabiesVaccinationExpiry": {label: "Vaccination Expiry Date *", kind: "date"},
	"veterinarianName":        {label: "Veterinarian's Name *", kind: "text"},
	"veterinarianAddress":     {label: "Veterinarian's Address *", kind: "text"},
	"licensePeriod":           {label: "License Period *", kind: "select", placeholder: "Select license period"},
}

func licensePeriodOptions(selected string) []Option {
	out := make([]Option, 0, len(entities.LicensePeriods))
	for _, p := range entities.LicensePeriods {
		q := entities.QuoteFor(p)
		out = append(out, Option{
			Value:    string(p),
			Label:    q.Label + " - $" + formatFee(q.Fee),
			Selected: string(p) == selected,
		})
	}
	return out
}

// NewWizardData builds the page for step, carrying every field outside the
// step as a hidden input.
func NewWizardData(step int, draft request.ApplicationRequest, fieldErrs map[string]string, toast *Toast) WizardData {
	if step < 0 {
		step = 0
	}
	if step > request.LastStep {
		step = request.LastStep
	}
	current := request.Steps[step]
	values := draft.FieldValues()

	data := WizardData{
		Step:    current,
		IsFirst: step == 0,
		IsLast:  step == request.LastStep,
		Toast:   toast,
	}

	for _, s := range request.Steps {
		data.Markers = append(data.Markers, StepMarker{
			Number:      s.Index + 1,
			Title:       s.Title,
			Description: s.Description,
			Done:        s.Index < step,
			Active:      s.Index == step,
		})
	}

	active := map[string]bool{}
	for _, name := range current.Fields {
		active[name] = true
		spec := fieldSpecs[name]
		f := Field{
			Name:        name,
			Label:       spec.label,
			Type:        spec.kind,
			Placeholder: spec.placeholder,
			Value:       values[name],
			Error:       fieldErrs[name],
		}
		if name == "licensePeriod" {
			f.Options = licensePeriodOptions(values[name])
		} else {
			for _, o := range spec.options {
				o.Selected = o.Value == values[name]
				f.Options = append(f.Options, o)
			}
		}
		data.Fields = append(data.Fields, f)
	}

	for _, s := range request.Steps {
		for _, name := range s.Fields {
			if !active[name] {
				data.Hidden = append(data.Hidden, HiddenField{Name: name, Value: values[name]})
			}
		}
	}

	if p := entities.LicensePeriod(draft.LicensePeriod); step == request.LastStep && p.Valid() {
		q := entities.QuoteFor(p)
		data.Quote = &q
	}
	return data
}

type WizardSuccessData struct {
	TrackingNumber string
	TrackingURL    string
	RedirectAfter  int
	Toast          *Toast
}
