package interfaces

import (
	"context"
	"errors"

	"pa_dog_license/internal/domain/entities"
)

// ErrDuplicateTrackingNumber is returned by Append when a record with the same
// tracking number is already stored.
var ErrDuplicateTrackingNumber = errors.New("duplicate tracking number")

// IApplicationRepository abstracts persistence for submitted applications.
//
// The store is append-only:
//   - Append adds one record and preserves insertion order
//   - FindByTrackingNumber is an exact, case-sensitive match and returns a
//     zero Application (empty TrackingNumber) when nothing matches

type IApplicationRepository interface {
	Append(ctx context.Context, a entities.Application) (entities.Application, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (entities.Application, error)
}
