package entities

// LicensePeriod is the selectable license duration. The fee is a fixed
// function of the period.
type LicensePeriod string

const (
	LicensePeriodOneYear   LicensePeriod = "1-year"
	LicensePeriodTwoYear   LicensePeriod = "2-year"
	LicensePeriodThreeYear LicensePeriod = "3-year"
)

// LicensePeriods lists the periods in the order they are offered.
var LicensePeriods = []LicensePeriod{
	LicensePeriodOneYear,
	LicensePeriodTwoYear,
	LicensePeriodThreeYear,
}

// Fee returns the license fee in dollars, or 0 for an unknown or unset period.
func (p LicensePeriod) Fee() float64 {
	switch p {
	case LicensePeriodOneYear:
		return 25
	case LicensePeriodTwoYear:
		return 45
	case LicensePeriodThreeYear:
		return 60
	default:
		return 0
	}
}

// Label is the payment summary wording ("1 Year", "2 Years", ...).
func (p LicensePeriod) Label() string {
	switch p {
	case LicensePeriodOneYear:
		return "1 Year"
	case LicensePeriodTwoYear:
		return "2 Years"
	case LicensePeriodThreeYear:
		return "3 Years"
	default:
		return ""
	}
}

func (p LicensePeriod) Valid() bool {
	return p.Fee() > 0
}

// FeeQuote is the static payment summary shown before submission. No payment
// is processed; Total always equals Fee.
type FeeQuote struct {
	Period LicensePeriod
	Label  string
	Fee    float64
	Total  float64
}

func QuoteFor(p LicensePeriod) FeeQuote {
	fee := p.Fee()
	return FeeQuote{
		Period: p,
		Label:  p.Label(),
		Fee:    fee,
		Total:  fee,
	}
}
