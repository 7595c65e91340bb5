package usecase

import (
	"errors"
	"strings"

	"pa_dog_license/internal/domain/entities"
)

var ErrInvalidLicensePeriod = errors.New("invalid license period")

// ILicenseFeeUseCase serves the static payment summary. Nothing is charged;
// the quote is what the applicant sees before submitting.

type ILicenseFeeUseCase interface {
	ListFees() []entities.FeeQuote
	Quote(period string) (entities.FeeQuote, error)
}

type LicenseFeeUseCase struct{}

var _ ILicenseFeeUseCase = (*LicenseFeeUseCase)(nil)

func NewLicenseFeeUseCase() *LicenseFeeUseCase {
	return &LicenseFeeUseCase{}
}

func (u *LicenseFeeUseCase) ListFees() []entities.FeeQuote {
	out := make([]entities.FeeQuote, 0, len(entities.LicensePeriods))
	for _, p := range entities.LicensePeriods {
		out = append(out, entities.QuoteFor(p))
	}
	return out
}

func (u *LicenseFeeUseCase) Quote(period string) (entities.FeeQuote, error) {
	p := entities.LicensePeriod(strings.TrimSpace(period))
	if !p.Valid() {
		return entities.FeeQuote{}, ErrInvalidLicensePeriod
	}
	return entities.QuoteFor(p), nil
}
