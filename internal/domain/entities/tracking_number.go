package entities

import (
	"fmt"
	"regexp"
	"time"
)

const (
	TrackingNumberPrefix = "DOG"
	// TrackingNumberRandomSpace bounds the random suffix: 0..9999.
	TrackingNumberRandomSpace = 10000
)

var trackingNumberPattern = regexp.MustCompile(`^DOG-\d+-\d{1,4}$`)

// NewTrackingNumber formats DOG-<unix millis>-<random>. It is not
// collision-free; repositories reject duplicates on write.
func NewTrackingNumber(now time.Time, random int) string {
	return fmt.Sprintf("%s-%d-%d", TrackingNumberPrefix, now.UnixMilli(), random)
}

// IsWellFormedTrackingNumber reports whether s has the generated shape.
// Lookups never require it; it only drives logging.
func IsWellFormedTrackingNumber(s string) bool {
	return trackingNumberPattern.MatchString(s)
}
