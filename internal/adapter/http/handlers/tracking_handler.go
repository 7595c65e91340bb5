package handlers

import (
	"net/http"
	"strings"
	"time"

	response "pa_dog_license/internal/adapter/http/dto/response"
	"pa_dog_license/internal/adapter/http/views"
	"pa_dog_license/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TrackingHandler renders the tracking page. A non-empty id query parameter
// pre-fills the search box and runs the lookup.
type TrackingHandler struct {
	usecase  usecase.IApplicationUseCase
	location *time.Location
}

func NewTrackingHandler(uc usecase.IApplicationUseCase, loc *time.Location) *TrackingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &TrackingHandler{usecase: uc, location: loc}
}

func (h *TrackingHandler) Show(c *gin.Context) {
	query := strings.TrimSpace(c.Query("id"))
	if query == "" {
		c.HTML(http.StatusOK, views.TrackPage, views.TrackData{})
		return
	}

	data := views.TrackData{Query: query, Searched: true}
	app, err := h.usecase.Track(c.Request.Context(), query)
	if err != nil {
		c.HTML(http.StatusNotFound, views.TrackPage, data)
		return
	}

	view := response.NewTrackingView(app, h.location)
	data.View = &view
	c.HTML(http.StatusOK, views.TrackPage, data)
}

func Landing(c *gin.Context) {
	c.HTML(http.StatusOK, views.LandingPage, nil)
}
