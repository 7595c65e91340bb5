package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"pa_dog_license/internal/domain/entities"
	"pa_dog_license/internal/infrastructure/metrics"
	"pa_dog_license/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrVaccinationExpired     = errors.New("rabies vaccination expired")
	ErrInvalidVaccinationDate = errors.New("invalid rabies vaccination expiry date")
	ErrEmptyTrackingNumber    = errors.New("empty tracking number")
	ErrApplicationNotFound    = errors.New("application not found")
	ErrApplicationStorage     = errors.New("application storage failure")
)

// maxTrackingNumberAttempts bounds regeneration when the store reports a
// duplicate tracking number.
const maxTrackingNumberAttempts = 3

// IApplicationUseCase exposes the submission and tracking flows.
//
//   - Submit: vaccination check, tracking number, fee, append
//   - Track: exact lookup; read failures surface as ErrApplicationNotFound
type IApplicationUseCase interface {
	Submit(ctx context.Context, app entities.Application) (entities.Application, error)
	Track(ctx context.Context, trackingNumber string) (entities.Application, error)
}

type ApplicationUseCase struct {
	repo        interfaces.IApplicationRepository
	logger      *zap.Logger
	now         func() time.Time
	randomN     func(n int) int
	location    *time.Location
	lookupDelay time.Duration
}

var _ IApplicationUseCase = (*ApplicationUseCase)(nil)

type ApplicationOption func(*ApplicationUseCase)

// WithClock overrides the submission clock.
func WithClock(now func() time.Time) ApplicationOption {
	return func(u *ApplicationUseCase) { u.now = now }
}

// WithRandom overrides the tracking number suffix source.
func WithRandom(randomN func(n int) int) ApplicationOption {
	return func(u *ApplicationUseCase) { u.randomN = randomN }
}

// WithLocation sets the zone whose calendar date decides vaccination expiry.
func WithLocation(loc *time.Location) ApplicationOption {
	return func(u *ApplicationUseCase) {
		if loc != nil {
			u.location = loc
		}
	}
}

// WithLookupDelay sets the fixed latency applied before a lookup resolves.
func WithLookupDelay(d time.Duration) ApplicationOption {
	return func(u *ApplicationUseCase) { u.lookupDelay = d }
}

func NewApplicationUseCase(repo interfaces.IApplicationRepository, logger *zap.Logger, opts ...ApplicationOption) *ApplicationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	u := &ApplicationUseCase{
		repo:     repo,
		logger:   logger.Named("application"),
		now:      time.Now,
		randomN:  rand.IntN,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *ApplicationUseCase) Submit(ctx context.Context, app entities.Application) (entities.Application, error) {
	now := u.now()

	expired, err := entities.VaccinationExpired(app.RabiesVaccinationExpiry, now.In(u.location))
	if err != nil {
		u.logger.Info("invalid vaccination expiry", zap.String("expiry", app.RabiesVaccinationExpiry), zap.Error(err))
		metrics.ApplicationsRejected.WithLabelValues(metrics.RejectReasonInvalidExpiry).Inc()
		return entities.Application{}, ErrInvalidVaccinationDate
	}
	if expired {
		u.logger.Info("vaccination expired", zap.String("expiry", app.RabiesVaccinationExpiry))
		metrics.ApplicationsRejected.WithLabelValues(metrics.RejectReasonVaccinationExpired).Inc()
		return entities.Application{}, ErrVaccinationExpired
	}

	app.Status = entities.ApplicationStatusPending
	app.SubmittedAt = now.UTC().Truncate(time.Millisecond)
	app.LicenseFee = app.LicensePeriod.Fee()

	var lastErr error
	for attempt := 1; attempt <= maxTrackingNumberAttempts; attempt++ {
		app.TrackingNumber = entities.NewTrackingNumber(now, u.randomN(entities.TrackingNumberRandomSpace))

		created, err := u.repo.Append(ctx, app)
		if err == nil {
			u.logger.Info("application submitted",
				zap.String("tracking_number", created.TrackingNumber),
				zap.String("license_period", string(created.LicensePeriod)),
				zap.Float64("license_fee", created.LicenseFee),
			)
			metrics.ApplicationsSubmitted.WithLabelValues(string(created.LicensePeriod)).Inc()
			return created, nil
		}

		lastErr = err
		if errors.Is(err, interfaces.ErrDuplicateTrackingNumber) {
			u.logger.Warn("tracking number collision", zap.String("tracking_number", app.TrackingNumber), zap.Int("attempt", attempt))
			continue
		}
		break
	}

	u.logger.Error("saving application failed", zap.String("tracking_number", app.TrackingNumber), zap.Error(lastErr))
	metrics.ApplicationsRejected.WithLabelValues(metrics.RejectReasonStorage).Inc()
	return entities.Application{}, fmt.Errorf("%w: %v", ErrApplicationStorage, lastErr)
}

func (u *ApplicationUseCase) Track(ctx context.Context, trackingNumber string) (entities.Application, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return entities.Application{}, ErrEmptyTrackingNumber
	}

	if err := u.wait(ctx); err != nil {
		return entities.Application{}, err
	}

	if !entities.IsWellFormedTrackingNumber(trackingNumber) {
		u.logger.Debug("lookup for malformed tracking number", zap.String("tracking_number", trackingNumber))
	}

	app, err := u.repo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		u.logger.Error("reading applications failed", zap.String("tracking_number", trackingNumber), zap.Error(err))
		metrics.ApplicationLookups.WithLabelValues(metrics.LookupOutcomeReadError).Inc()
		return entities.Application{}, ErrApplicationNotFound
	}
	if app.TrackingNumber == "" {
		metrics.ApplicationLookups.WithLabelValues(metrics.LookupOutcomeNotFound).Inc()
		return entities.Application{}, ErrApplicationNotFound
	}

	metrics.ApplicationLookups.WithLabelValues(metrics.LookupOutcomeFound).Inc()
	return app, nil
}

func (u *ApplicationUseCase) wait(ctx context.Context) error {
	if u.lookupDelay <= 0 {
		return nil
	}
	t := time.NewTimer(u.lookupDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
