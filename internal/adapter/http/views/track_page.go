package views

import (
	"strconv"

	response "pa_dog_license/internal/adapter/http/dto/response"
)

type TrackData struct {
	Query    string
	Searched bool
	View     *response.TrackingView
}

func formatFee(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
