package response

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"pa_dog_license/internal/domain/entities"
)

const (
	InvalidDate     = "Invalid date"
	displayDate     = "January 2, 2006"
	displayDateTime = "January 2, 2006 at 03:04 PM"
)

type StatusBadge struct {
	Label string `json:"label" example:"PENDING"`
	Color string `json:"color" example:"yellow"`
	Icon  string `json:"icon" example:"clock"`
}

type TimelineEntry struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Color  string `json:"color"`
	Done   bool   `json:"done"`
}

// TrackingView is the display-ready rendering of an application used by the
// tracking page and the lookup API.
type TrackingView struct {
	TrackingNumber string          `json:"trackingNumber"`
	Badge          StatusBadge     `json:"badge"`
	SubmittedAt    string          `json:"submittedAt" example:"June 15, 2025 at 10:00 AM"`
	Timeline       []TimelineEntry `json:"timeline"`

	OwnerName   string `json:"ownerName"`
	OwnerEmail  string `json:"ownerEmail"`
	OwnerPhone  string `json:"ownerPhone"`
	AddressLine string `json:"addressLine" example:"12 Main St, Harrisburg, PA 17101"`

	DogName        string `json:"dogName"`
	DogBreed       string `json:"dogBreed"`
	DogColor       string `json:"dogColor"`
	DogGender      string `json:"dogGender" example:"Male"`
	DogAge         string `json:"dogAge" example:"3 years"`
	DogWeight      string `json:"dogWeight" example:"24.5 lbs"`
	SpayedNeutered string `json:"spayedNeutered" example:"Yes"`

	VaccinationDate     string `json:"vaccinationDate" example:"January 10, 2025"`
	VaccinationExpiry   string `json:"vaccinationExpiry" example:"January 10, 2028"`
	VeterinarianName    string `json:"veterinarianName"`
	VeterinarianAddress string `json:"veterinarianAddress"`

	LicensePeriod string `json:"licensePeriod" example:"2 year"`
	LicenseFee    string `json:"licenseFee" example:"$45"`
}

func BadgeFor(status entities.ApplicationStatus) StatusBadge {
	b := StatusBadge{Label: strings.ToUpper(string(status))}
	switch status {
	case entities.ApplicationStatusPending:
		b.Color, b.Icon = "yellow", "clock"
	case entities.ApplicationStatusApproved:
		b.Color, b.Icon = "green", "check-circle"
	case entities.ApplicationStatusRejected:
		b.Color, b.Icon = "red", "x-circle"
	default:
		b.Color, b.Icon = "gray", "clock"
	}
	return b
}

func TimelineFor(a entities.Application, loc *time.Location) []TimelineEntry {
	entries := []TimelineEntry{{
		Title:  "Application Submitted",
		Detail: FormatDateTime(a.SubmittedAt, loc),
		Color:  "green",
		Done:   true,
	}}

	switch a.Status {
	case entities.ApplicationStatusApproved:
		entries = append(entries, TimelineEntry{Title: "Application Approved", Color: "green", Done: true})
	case entities.ApplicationStatusRejected:
		entries = append(entries, TimelineEntry{Title: "Application Rejected", Color: "red", Done: true})
	default:
		entries = append(entries, TimelineEntry{Title: "Under Review", Detail: "Your application is being processed", Color: "gray"})
	}
	return entries
}

// FormatDate renders a calendar date string. Date-only values are shown as
// the calendar date they name, with no zone conversion.
func FormatDate(s string, loc *time.Location) string {
	if d, err := time.Parse(entities.DateLayout, s); err == nil {
		return d.Format(displayDate)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(zoneOrUTC(loc)).Format(displayDate)
	}
	return InvalidDate
}

func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.In(zoneOrUTC(loc)).Format(displayDateTime)
}

func zoneOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func NewTrackingView(a entities.Application, loc *time.Location) TrackingView {
	return TrackingView{
		TrackingNumber: a.TrackingNumber,
		Badge:          BadgeFor(a.Status),
		SubmittedAt:    FormatDateTime(a.SubmittedAt, loc),
		Timeline:       TimelineFor(a, loc),

		OwnerName:   strings.TrimSpace(a.OwnerFirstName + " " + a.OwnerLastName),
		OwnerEmail:  a.OwnerEmail,
		OwnerPhone:  a.OwnerPhone,
		AddressLine: fmt.Sprintf("%s, %s, PA %s", a.OwnerAddress, a.OwnerCity, a.OwnerZipCode),

		DogName:        a.DogName,
		DogBreed:       a.DogBreed,
		DogColor:       a.DogColor,
		DogGender:      capitalize(string(a.DogGender)),
		DogAge:         formatNumber(a.DogAge) + " years",
		DogWeight:      formatNumber(a.DogWeight) + " lbs",
		SpayedNeutered: capitalize(a.IsSpayedNeutered),

		VaccinationDate:     FormatDate(a.RabiesVaccinationDate, loc),
		VaccinationExpiry:   FormatDate(a.RabiesVaccinationExpiry, loc),
		VeterinarianName:    a.VeterinarianName,
		VeterinarianAddress: a.VeterinarianAddress,

		LicensePeriod: strings.Replace(string(a.LicensePeriod), "-", " ", 1),
		LicenseFee:    "$" + formatNumber(a.LicenseFee),
	}
}
