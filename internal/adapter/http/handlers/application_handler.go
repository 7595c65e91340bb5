package handlers

import (
	"net/http"
	"strconv"
	"time"

	request "pa_dog_license/internal/adapter/http/dto/request"
	response "pa_dog_license/internal/adapter/http/dto/response"
	"pa_dog_license/internal/infrastructure/metrics"
	"pa_dog_license/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApplicationHandler serves the JSON API for the wizard and the tracking lookup.
type ApplicationHandler struct {
	usecase       usecase.IApplicationUseCase
	logger        *zap.Logger
	location      *time.Location
	redirectDelay time.Duration
}

func NewApplicationHandler(uc usecase.IApplicationUseCase, logger *zap.Logger, loc *time.Location, redirectDelay time.Duration) *ApplicationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ApplicationHandler{
		usecase:       uc,
		logger:        logger.Named("application_handler"),
		location:      loc,
		redirectDelay: redirectDelay,
	}
}

// ListSteps godoc
// @Summary      List wizard steps
// @Description  Returns the four wizard steps with the fields each one owns.
// @Tags         applications
// @Produce      json
// @Success      200  {array}  response.StepResponse
// @Router       /applications/steps [get]
func (h *ApplicationHandler) ListSteps(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSteps(request.Steps))
}

// ValidateStep godoc
// @Summary      Validate one wizard step
// @Description  Validates only the fields owned by the given step. Fields of other steps are ignored.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        step     path  int                         true  "Step index (0-3)"
// @Param        payload  body  request.ApplicationRequest  true  "Draft application"
// @Success      200  {object}  response.StepValidationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /applications/steps/{step}/validate [post]
func (h *ApplicationHandler) ValidateStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	var draft request.ApplicationRequest
	if err := request.BindDraft(c, &draft); err != nil {
		h.logger.Debug("invalid draft payload", zap.Error(err))
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	fields, err := draft.ValidateStep(step)
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	recordStepValidation(step, fields)

	c.JSON(http.StatusOK, response.NewStepValidationResponse(step, fields))
}

// Submit godoc
// @Summary      Submit an application
// @Description  Validates every step, checks the rabies vaccination is current, assigns a tracking number and stores the application as pending.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        payload  body  request.ApplicationRequest  true  "Complete application"
// @Success      201  {object}  response.SubmitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var draft request.ApplicationRequest
	if err := request.BindDraft(c, &draft); err != nil {
		h.logger.Debug("invalid application payload", zap.Error(err))
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	if fields := draft.Validate(); len(fields) > 0 {
		appErr := errInvalidFields.WithFields(fields)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), draft.ToEntity())
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.NewSubmitResponse(created, h.redirectDelay))
}

// GetByTrackingNumber godoc
// @Summary      Look up an application
// @Description  Exact, case-sensitive match on the tracking number after trimming whitespace.
// @Tags         applications
// @Produce      json
// @Param        tracking_number  path  string  true  "Tracking number"  example(DOG-1749996000123-7)
// @Success      200  {object}  response.TrackingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /applications/{tracking_number} [get]
func (h *ApplicationHandler) GetByTrackingNumber(c *gin.Context) {
	app, err := h.usecase.Track(c.Request.Context(), c.Param("tracking_number"))
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TrackingResponse{
		Application: response.FromApplication(app),
		View:        response.NewTrackingView(app, h.location),
	})
}

func recordStepValidation(step int, fields map[string]string) {
	result := "valid"
	if len(fields) > 0 {
		result = "invalid"
	}
	metrics.WizardStepValidations.WithLabelValues(strconv.Itoa(step), result).Inc()
}
