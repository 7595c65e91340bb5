package handlers

import (
	"errors"
	"net/http"

	response "pa_dog_license/internal/adapter/http/dto/response"
	"pa_dog_license/internal/usecase"
	"pa_dog_license/pkg"
)

const (
	msgVaccinationExpired = "Rabies vaccination has expired. Please update vaccination before applying."
	msgSaveFailed         = "Failed to save application. Please try again."
	msgInvalidExpiry      = "Invalid date"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidFields  = pkg.NewDomainErrorSimple("VALIDATION_FAILED", response.InvalidFieldsMessage, http.StatusUnprocessableEntity)
)

func mapApplicationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyTrackingNumber):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrVaccinationExpired):
		return pkg.NewDomainErrorSimple("VACCINATION_EXPIRED", msgVaccinationExpired, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidVaccinationDate):
		return errInvalidFields.WithFields(map[string]string{"rabiesVaccinationExpiry": msgInvalidExpiry})
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApplicationStorage):
		return pkg.NewDomainError("STORAGE_FAILURE", msgSaveFailed, err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidLicensePeriod):
		return pkg.NewDomainErrorSimple("INVALID_LICENSE_PERIOD", "Please select a license period", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
