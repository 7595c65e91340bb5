package response

import (
	"testing"
	"time"

	request "pa_dog_license/internal/adapter/http/dto/request"
	"pa_dog_license/internal/domain/entities"
)

func sampleApplication() entities.Application {
	return entities.Application{
		TrackingNumber:          "DOG-1749996000123-7",
		OwnerFirstName:          "Jane",
		OwnerLastName:           "Doe",
		OwnerAddress:            "12 Main St",
		OwnerCity:               "Harrisburg",
		OwnerZipCode:            "17101",
		OwnerPhone:              "(717) 555-0100",
		OwnerEmail:              "jane@example.com",
		DogName:                 "Rex",
		DogBreed:                "Beagle",
		DogColor:                "Tricolor",
		DogGender:               entities.DogGenderFemale,
		DogAge:                  3,
		DogWeight:               24.5,
		IsSpayedNeutered:        "no",
		RabiesVaccinationDate:   "2025-01-10",
		RabiesVaccinationExpiry: "2028-01-10",
		VeterinarianName:        "Dr. Smith",
		VeterinarianAddress:     "5 Vet Way",
		LicensePeriod:           entities.LicensePeriodOneYear,
		Status:                  entities.ApplicationStatusPending,
		SubmittedAt:             time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC),
		LicenseFee:              25,
	}
}

func TestFromApplication(t *testing.T) {
	a := sampleApplication()
	res := FromApplication(a)
	if res.TrackingNumber != a.TrackingNumber || res.Status != "pending" || res.LicensePeriod != "1-year" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.DogGender != "female" || res.DogAge != 3 || res.DogWeight != 24.5 || res.LicenseFee != 25 {
		t.Fatalf("unexpected dog/fee fields: %+v", res)
	}
	if !res.SubmittedAt.Equal(a.SubmittedAt) {
		t.Fatalf("unexpected submittedAt: %v", res.SubmittedAt)
	}
}

func TestNewSubmitResponse(t *testing.T) {
	res := NewSubmitResponse(sampleApplication(), 2*time.Second)
	if res.Message != "Application submitted! Tracking number: DOG-1749996000123-7" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if res.RedirectURL != "/track-application?id=DOG-1749996000123-7" || res.RedirectAfterMs != 2000 {
		t.Fatalf("unexpected redirect: %+v", res)
	}
}

func TestFromFeeQuotes(t *testing.T) {
	got := FromFeeQuotes([]entities.FeeQuote{entities.QuoteFor(entities.LicensePeriodThreeYear)})
	if len(got) != 1 || got[0].Period != "3-year" || got[0].Label != "3 Years" || got[0].Fee != 60 || got[0].Total != 60 {
		t.Fatalf("unexpected quotes: %+v", got)
	}
}

func TestStepResponses(t *testing.T) {
	steps := FromSteps(request.Steps)
	if len(steps) != 4 || steps[2].Title != "Vaccination & Vet" || steps[3].Fields[0] != "licensePeriod" {
		t.Fatalf("unexpected steps: %+v", steps)
	}

	ok := NewStepValidationResponse(0, nil)
	if !ok.Valid || ok.NextStep != 1 || ok.Message != "" {
		t.Fatalf("unexpected success: %+v", ok)
	}
	last := NewStepValidationResponse(3, map[string]string{})
	if last.NextStep != 3 {
		t.Fatalf("last step should not advance past the end: %+v", last)
	}
	bad := NewStepValidationResponse(1, map[string]string{"dogName": "Dog name is required"})
	if bad.Valid || bad.NextStep != 1 || bad.Message != "Please fill in all required fields correctly" {
		t.Fatalf("unexpected failure: %+v", bad)
	}
}
