package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dog_license_applications_submitted_total",
			Help: "Total number of applications appended to the store",
		},
		[]string{"license_period"},
	)

	ApplicationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dog_license_applications_rejected_total",
			Help: "Total number of submissions refused before or during persistence",
		},
		[]string{"reason"},
	)

	ApplicationLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dog_license_application_lookups_total",
			Help: "Total number of tracking lookups by outcome",
		},
		[]string{"outcome"},
	)

	WizardStepValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dog_license_wizard_step_validations_total",
			Help: "Total number of wizard step validations by step and result",
		},
		[]string{"step", "result"},
	)
)

const (
	RejectReasonVaccinationExpired = "vaccination_expired"
	RejectReasonInvalidExpiry      = "invalid_expiry"
	RejectReasonStorage            = "storage"

	LookupOutcomeFound     = "found"
	LookupOutcomeNotFound  = "not_found"
	LookupOutcomeReadError = "read_error"
)
