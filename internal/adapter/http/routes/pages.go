package routes

import (
	"pa_dog_license/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNewApplication   = "/new-application"
	PathTrackApplication = "/track-application"
)

func addPageRoutes(router *gin.Engine, wizard *handlers.WizardHandler, tracking *handlers.TrackingHandler) {
	router.GET("/", handlers.Landing)
	router.GET(PathNewApplication, wizard.Show)
	router.POST(PathNewApplication, wizard.Advance)
	router.GET(PathTrackApplication, tracking.Show)
}
