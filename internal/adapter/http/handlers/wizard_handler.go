package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	request "pa_dog_license/internal/adapter/http/dto/request"
	response "pa_dog_license/internal/adapter/http/dto/response"
	"pa_dog_license/internal/adapter/http/views"
	"pa_dog_license/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	wizardActionNext   = "next"
	wizardActionPrev   = "prev"
	wizardActionSubmit = "submit"
)

// WizardHandler drives the four-step application form. The draft travels
// with every POST; nothing is stored until the final submit succeeds.
type WizardHandler struct {
	usecase       usecase.IApplicationUseCase
	logger        *zap.Logger
	redirectDelay time.Duration
}

func NewWizardHandler(uc usecase.IApplicationUseCase, logger *zap.Logger, redirectDelay time.Duration) *WizardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WizardHandler{usecase: uc, logger: logger.Named("wizard_handler"), redirectDelay: redirectDelay}
}

func (h *WizardHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, views.WizardPage, views.NewWizardData(0, request.ApplicationRequest{}, nil, nil))
}

func (h *WizardHandler) Advance(c *gin.Context) {
	step, err := strconv.Atoi(c.PostForm("step"))
	if err != nil || step < 0 || step > request.LastStep {
		step = 0
	}

	var draft request.ApplicationRequest
	if err := request.BindDraft(c, &draft); err != nil {
		h.logger.Debug("unreadable wizard form", zap.Error(err))
		c.HTML(http.StatusBadRequest, views.WizardPage,
			views.NewWizardData(step, draft, nil, views.ErrorToast(response.InvalidFieldsMessage)))
		return
	}

	switch c.PostForm("action") {
	case wizardActionPrev:
		c.HTML(http.StatusOK, views.WizardPage, views.NewWizardData(step-1, draft, nil, nil))
	case wizardActionSubmit:
		h.submit(c, step, draft)
	default:
		h.next(c, step, draft)
	}
}

func (h *WizardHandler) next(c *gin.Context, step int, draft request.ApplicationRequest) {
	fields, _ := draft.ValidateStep(step)
	recordStepValidation(step, fields)
	if len(fields) > 0 {
		c.HTML(http.StatusUnprocessableEntity, views.WizardPage,
			views.NewWizardData(step, draft, fields, views.ErrorToast(response.InvalidFieldsMessage)))
		return
	}
	c.HTML(http.StatusOK, views.WizardPage, views.NewWizardData(step+1, draft, nil, nil))
}

func (h *WizardHandler) submit(c *gin.Context, step int, draft request.ApplicationRequest) {
	if fields := draft.Validate(); len(fields) > 0 {
		c.HTML(http.StatusUnprocessableEntity, views.WizardPage,
			views.NewWizardData(request.FirstInvalidStep(fields), draft, fields, views.ErrorToast(response.InvalidFieldsMessage)))
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), draft.ToEntity())
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrVaccinationExpired):
		c.HTML(http.StatusUnprocessableEntity, views.WizardPage,
			views.NewWizardData(step, draft, nil, views.ErrorToast(msgVaccinationExpired)))
		return
	case errors.Is(err, usecase.ErrInvalidVaccinationDate):
		fields := map[string]string{"rabiesVaccinationExpiry": msgInvalidExpiry}
		c.HTML(http.StatusUnprocessableEntity, views.WizardPage,
			views.NewWizardData(request.FirstInvalidStep(fields), draft, fields, views.ErrorToast(response.InvalidFieldsMessage)))
		return
	default:
		c.HTML(http.StatusInternalServerError, views.WizardPage,
			views.NewWizardData(step, draft, nil, views.ErrorToast(msgSaveFailed)))
		return
	}

	seconds := int(h.redirectDelay.Round(time.Second) / time.Second)
	target := response.TrackingURL(created.TrackingNumber)
	c.Header("Refresh", fmt.Sprintf("%d;url=%s", seconds, target))
	c.HTML(http.StatusCreated, views.WizardSuccessPage, views.WizardSuccessData{
		TrackingNumber: created.TrackingNumber,
		TrackingURL:    target,
		RedirectAfter:  seconds,
		Toast:          views.SuccessToast(response.SubmittedMessage(created.TrackingNumber)),
	})
}
