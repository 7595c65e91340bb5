package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pa_dog_license/internal/adapter/http/handlers/mocks"
	"pa_dog_license/internal/adapter/http/views"
	"pa_dog_license/internal/domain/entities"
	"pa_dog_license/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTrackingRouter(uc *mocks.MockIApplicationUseCase) *gin.Engine {
	loc, _ := time.LoadLocation("America/New_York")
	h := NewTrackingHandler(uc, loc)
	r := gin.New()
	r.SetHTMLTemplate(views.MustTemplates())
	r.GET("/", Landing)
	r.GET("/track-application", h.Show)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLanding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := get(newTrackingRouter(mocks.NewMockIApplicationUseCase(ctrl)), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	mustContain(t, w.Body.String(), "Pennsylvania Dog License Portal", `href="/new-application"`, `href="/track-application"`)
}

func TestTrackingHandler_Show(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no id shows the help panel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w := get(newTrackingRouter(mocks.NewMockIApplicationUseCase(ctrl)), "/track-application?id=%20%20")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		mustContain(t, w.Body.String(), "Need Help?", "DOG-[timestamp]-[number]")
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		uc.EXPECT().Track(gomock.Any(), "DOG-1-1").Return(entities.Application{}, usecase.ErrApplicationNotFound)

		w := get(newTrackingRouter(uc), "/track-application?id=%20DOG-1-1%20")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		body := w.Body.String()
		mustContain(t, body, "Application Not Found", `We couldn't find an application with tracking number "DOG-1-1".`)
		if strings.Contains(body, "Need Help?") {
			t.Fatalf("help panel should be hidden after a search")
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		app := storedApplication()
		app.Status = entities.ApplicationStatusApproved
		uc.EXPECT().Track(gomock.Any(), app.TrackingNumber).Return(app, nil)

		w := get(newTrackingRouter(uc), "/track-application?id="+app.TrackingNumber)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		mustContain(t, w.Body.String(),
			"APPROVED",
			"badge-green",
			"Application Approved",
			"June 15, 2025 at 10:00 AM",
			"12 Main St, Harrisburg, PA 17101",
			"3 years",
			"24.5 lbs",
			"January 10, 2028",
			"2 year",
			"$45",
			`value="DOG-1749996000123-7"`,
		)
	})
}
