package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	response "pa_dog_license/internal/adapter/http/dto/response"
	"pa_dog_license/internal/adapter/http/handlers/mocks"
	"pa_dog_license/internal/domain/entities"
	"pa_dog_license/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLicenseFeeRouter(uc *mocks.MockILicenseFeeUseCase) *gin.Engine {
	h := NewLicenseFeeHandler(uc)
	r := gin.New()
	r.GET("/v1/license-fees", h.ListFees)
	r.GET("/v1/license-fees/:period", h.GetFee)
	return r
}

func TestLicenseFeeHandler_ListFees(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILicenseFeeUseCase(ctrl)
	uc.EXPECT().ListFees().Return([]entities.FeeQuote{
		entities.QuoteFor(entities.LicensePeriodOneYear),
		entities.QuoteFor(entities.LicensePeriodTwoYear),
	})

	w := get(newLicenseFeeRouter(uc), "/v1/license-fees")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var fees []response.LicenseFeeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &fees); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(fees) != 2 || fees[1].Label != "2 Years" || fees[1].Total != 45 {
		t.Fatalf("unexpected fees: %+v", fees)
	}
}

func TestLicenseFeeHandler_GetFee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILicenseFeeUseCase(ctrl)
		uc.EXPECT().Quote("5-year").Return(entities.FeeQuote{}, usecase.ErrInvalidLicensePeriod)

		w := get(newLicenseFeeRouter(uc), "/v1/license-fees/5-year")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("known period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILicenseFeeUseCase(ctrl)
		uc.EXPECT().Quote("1-year").Return(entities.QuoteFor(entities.LicensePeriodOneYear), nil)

		w := get(newLicenseFeeRouter(uc), "/v1/license-fees/1-year")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var fee response.LicenseFeeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &fee); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if fee.Period != "1-year" || fee.Label != "1 Year" || fee.Fee != 25 {
			t.Fatalf("unexpected fee: %+v", fee)
		}
	})
}
