package response

import (
	"fmt"
	"time"

	"pa_dog_license/internal/domain/entities"
)

type ApplicationResponse struct {
	TrackingNumber string `json:"trackingNumber" example:"DOG-1749996000123-7"`

	OwnerFirstName string `json:"ownerFirstName"`
	OwnerLastName  string `json:"ownerLastName"`
	OwnerAddress   string `json:"ownerAddress"`
	OwnerCity      string `json:"ownerCity"`
	OwnerZipCode   string `json:"ownerZipCode"`
	OwnerPhone     string `json:"ownerPhone"`
	OwnerEmail     string `json:"ownerEmail"`

	DogName          string  `json:"dogName"`
	DogBreed         string  `json:"dogBreed"`
	DogColor         string  `json:"dogColor"`
	DogGender        string  `json:"dogGender" example:"female"`
	DogAge           float64 `json:"dogAge"`
	DogWeight        float64 `json:"dogWeight"`
	IsSpayedNeutered string  `json:"isSpayedNeutered" example:"yes"`

	RabiesVaccinationDate   string `json:"rabiesVaccinationDate" example:"2025-01-10"`
	RabiesVaccinationExpiry string `json:"rabiesVaccinationExpiry" example:"2028-01-10"`
	VeterinarianName        string `json:"veterinarianName"`
	VeterinarianAddress     string `json:"veterinarianAddress"`

	LicensePeriod string    `json:"licensePeriod" example:"2-year"`
	Status        string    `json:"status" example:"pending"`
	SubmittedAt   time.Time `json:"submittedAt"`
	LicenseFee    float64   `json:"licenseFee" example:"45"`
}

func FromApplication(a entities.Application) ApplicationResponse {
	return ApplicationResponse{
		TrackingNumber:          a.TrackingNumber,
		OwnerFirstName:          a.OwnerFirstName,
		OwnerLastName:           a.OwnerLastName,
		OwnerAddress:            a.OwnerAddress,
		OwnerCity:               a.OwnerCity,
		OwnerZipCode:            a.OwnerZipCode,
		OwnerPhone:              a.OwnerPhone,
		OwnerEmail:              a.OwnerEmail,
		DogName:                 a.DogName,
		DogBreed:                a.DogBreed,
		DogColor:                a.DogColor,
		DogGender:               string(a.DogGender),
		DogAge:                  a.DogAge,
		DogWeight:               a.DogWeight,
		IsSpayedNeutered:        a.IsSpayedNeutered,
		RabiesVaccinationDate:   a.RabiesVaccinationDate,
		RabiesVaccinationExpiry: a.RabiesVaccinationExpiry,
		VeterinarianName:        a.VeterinarianName,
		VeterinarianAddress:     a.VeterinarianAddress,
		LicensePeriod:           string(a.LicensePeriod),
		Status:                  string(a.Status),
		SubmittedAt:             a.SubmittedAt,
		LicenseFee:              a.LicenseFee,
	}
}

// SubmitResponse is returned after a successful submission. The client is
// expected to follow RedirectURL after RedirectAfterMs.
type SubmitResponse struct {
	Message         string              `json:"message" example:"Application submitted! Tracking number: DOG-1749996000123-7"`
	Application     ApplicationResponse `json:"application"`
	RedirectURL     string              `json:"redirectUrl" example:"/track-application?id=DOG-1749996000123-7"`
	RedirectAfterMs int64               `json:"redirectAfterMs" example:"2000"`
}

func SubmittedMessage(trackingNumber string) string {
	return fmt.Sprintf("Application submitted! Tracking number: %s", trackingNumber)
}

func TrackingURL(trackingNumber string) string {
	return "/track-application?id=" + trackingNumber
}

func NewSubmitResponse(a entities.Application, redirectDelay time.Duration) SubmitResponse {
	return SubmitResponse{
		Message:         SubmittedMessage(a.TrackingNumber),
		Application:     FromApplication(a),
		RedirectURL:     TrackingURL(a.TrackingNumber),
		RedirectAfterMs: redirectDelay.Milliseconds(),
	}
}

// TrackingResponse pairs the stored record with its display view.
type TrackingResponse struct {
	Application ApplicationResponse `json:"application"`
	View        TrackingView        `json:"view"`
}
