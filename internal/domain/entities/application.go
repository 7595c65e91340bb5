package entities

import "time"

// ApplicationStatus represents the review state of a license application.
//
// Applications are created as pending; nothing in this service transitions
// them. Approved and rejected exist so stored records written elsewhere still
// render correctly.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type DogGender string

const (
	DogGenderMale   DogGender = "male"
	DogGenderFemale DogGender = "female"
)

// Application is a submitted dog license application.
//
// Storage model:
//   - slot stores keep a single JSON array of Application under one key,
//     in insertion order, with the camelCase keys below.
//   - DynamoDB keeps one item per application (PK: tracking_number).
//
// LicenseFee is computed from LicensePeriod at submission time and stored
// verbatim; it is never re-derived on read.
type Application struct {
	TrackingNumber string `json:"trackingNumber"`

	OwnerFirstName string `json:"ownerFirstName"`
	OwnerLastName  string `json:"ownerLastName"`
	OwnerAddress   string `json:"ownerAddress"`
	OwnerCity      string `json:"ownerCity"`
	OwnerZipCode   string `json:"ownerZipCode"`
	OwnerPhone     string `json:"ownerPhone"`
	OwnerEmail     string `json:"ownerEmail"`

	DogName          string    `json:"dogName"`
	DogBreed         string    `json:"dogBreed"`
	DogColor         string    `json:"dogColor"`
	DogGender        DogGender `json:"dogGender"`
	DogAge           float64   `json:"dogAge"`
	DogWeight        float64   `json:"dogWeight"`
	IsSpayedNeutered string    `json:"isSpayedNeutered"`

	RabiesVaccinationDate   string `json:"rabiesVaccinationDate"`
	RabiesVaccinationExpiry string `json:"rabiesVaccinationExpiry"`
	VeterinarianName        string `json:"veterinarianName"`
	VeterinarianAddress     string `json:"veterinarianAddress"`

	LicensePeriod LicensePeriod `json:"licensePeriod"`

	Status      ApplicationStatus `json:"status"`
	SubmittedAt time.Time         `json:"submittedAt"`
	LicenseFee  float64           `json:"licenseFee"`
}
