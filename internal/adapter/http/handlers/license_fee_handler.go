package handlers

import (
	"net/http"

	response "pa_dog_license/internal/adapter/http/dto/response"
	"pa_dog_license/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LicenseFeeHandler serves the static license fee table.

type LicenseFeeHandler struct {
	usecase usecase.ILicenseFeeUseCase
}

func NewLicenseFeeHandler(uc usecase.ILicenseFeeUseCase) *LicenseFeeHandler {
	return &LicenseFeeHandler{usecase: uc}
}

// ListFees godoc
// @Summary      List license fees
// @Tags         license-fees
// @Produce      json
// @Success      200  {array}  response.LicenseFeeResponse
// @Router       /license-fees [get]
func (h *LicenseFeeHandler) ListFees(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromFeeQuotes(h.usecase.ListFees()))
}

// GetFee godoc
// @Summary      Payment summary for a license period
// @Tags         license-fees
// @Produce      json
// @Param        period  path  string  true  "License period"  Enums(1-year, 2-year, 3-year)
// @Success      200  {object}  response.LicenseFeeResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /license-fees/{period} [get]
func (h *LicenseFeeHandler) GetFee(c *gin.Context) {
	quote, err := h.usecase.Quote(c.Param("period"))
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFeeQuote(quote))
}
