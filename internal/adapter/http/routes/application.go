package routes

import (
	"pa_dog_license/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathApplications = "/applications"
	PathLicenseFees  = "/license-fees"
)

func addApplicationRoutes(rg *gin.RouterGroup, h *handlers.ApplicationHandler) {
	applications := rg.Group(PathApplications)
	{
		applications.GET("/steps", h.ListSteps)
		applications.POST("/steps/:step/validate", h.ValidateStep)
		applications.POST("", h.Submit)
		applications.GET("/:tracking_number", h.GetByTrackingNumber)
	}
}

func addLicenseFeeRoutes(rg *gin.RouterGroup, h *handlers.LicenseFeeHandler) {
	fees := rg.Group(PathLicenseFees)
	{
		fees.GET("", h.ListFees)
		fees.GET("/:period", h.GetFee)
	}
}
