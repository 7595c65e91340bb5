package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pa_dog_license/internal/adapter/http/middleware"
	"pa_dog_license/internal/adapter/persistence/repository"
	"pa_dog_license/internal/infrastructure/config"
	"pa_dog_license/internal/infrastructure/storage"
	"pa_dog_license/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const submitBody = `{
	"ownerFirstName": "Jane", "ownerLastName": "Doe", "ownerAddress": "12 Main St",
	"ownerCity": "Harrisburg", "ownerZipCode": "17101", "ownerPhone": "(717) 555-0100",
	"ownerEmail": "jane@example.com",
	"dogName": "Rex", "dogBreed": "Beagle", "dogColor": "Tricolor", "dogGender": "male",
	"dogAge": 3, "dogWeight": 24.5, "isSpayedNeutered": "yes",
	"rabiesVaccinationDate": "2025-01-10", "rabiesVaccinationExpiry": "2099-01-10",
	"veterinarianName": "Dr. Smith", "veterinarianAddress": "5 Vet Way",
	"licensePeriod": "1-year"
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := repository.NewApplicationSlotRepository(storage.NewMemorySlotStore(), repository.DefaultSlotKey)
	return NewRouter(Dependencies{
		Applications:  usecase.NewApplicationUseCase(repo, nil, usecase.WithLookupDelay(0)),
		LicenseFees:   usecase.NewLicenseFeeUseCase(),
		Location:      time.UTC,
		RedirectDelay: 2 * time.Second,
	})
}

func serve(r http.Handler, method, path, body, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	w := serve(r, http.MethodGet, "/v1/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_SubmitThenTrack(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodPost, "/v1/applications", submitBody, "application/json")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Application struct {
			TrackingNumber string  `json:"trackingNumber"`
			Status         string  `json:"status"`
			LicenseFee     float64 `json:"licenseFee"`
		} `json:"application"`
		RedirectURL string `json:"redirectUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	tn := created.Application.TrackingNumber
	assert.Regexp(t, `^DOG-\d+-\d{1,4}$`, tn)
	assert.Equal(t, "pending", created.Application.Status)
	assert.Equal(t, float64(25), created.Application.LicenseFee)
	assert.Equal(t, "/track-application?id="+tn, created.RedirectURL)

	w = serve(r, http.MethodGet, "/v1/applications/"+tn, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"trackingNumber":"`+tn+`"`)

	w = serve(r, http.MethodGet, "/track-application?id="+tn, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PENDING")
	assert.Contains(t, w.Body.String(), "Under Review")

	w = serve(r, http.MethodGet, "/v1/applications/"+strings.ToLower(tn), "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Pages(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/", "/new-application", "/track-application"} {
		w := serve(r, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", path)
	}
}

func TestRouter_LicenseFeesAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodGet, "/v1/license-fees/3-year", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"period":"3-year","label":"3 Years","fee":60,"total":60}`, w.Body.String())

	serve(r, http.MethodPost, "/v1/applications/steps/0/validate", `{}`, "application/json")
	w = serve(r, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dog_license_wizard_step_validations_total")
}

func TestNewApplicationRepository(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverMemory, Key: "k"}}
		repo, closeFn, err := newApplicationRepository(ctx, cfg, log)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &repository.ApplicationSlotRepository{}, repo)
	})

	t.Run("file", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverFile, Key: "k", Dir: t.TempDir()}}
		repo, closeFn, err := newApplicationRepository(ctx, cfg, log)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &repository.ApplicationSlotRepository{}, repo)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := &config.Config{
			Storage: config.StorageConfig{Driver: config.StorageDriverRedis, Key: "k"},
			Redis:   config.RedisConfig{Address: mr.Addr()},
		}
		repo, closeFn, err := newApplicationRepository(ctx, cfg, log)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &repository.ApplicationSlotRepository{}, repo)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()
		cfg := &config.Config{
			Storage: config.StorageConfig{Driver: config.StorageDriverRedis, Key: "k"},
			Redis:   config.RedisConfig{Address: addr},
		}
		_, _, err := newApplicationRepository(ctx, cfg, log)
		assert.Error(t, err)
	})

	t.Run("dynamodb", func(t *testing.T) {
		cfg := &config.Config{
			Storage:  config.StorageConfig{Driver: config.StorageDriverDynamoDB},
			DynamoDB: config.DynamoDBConfig{Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local", Endpoint: "http://localhost:8000", Table: "t"},
		}
		repo, closeFn, err := newApplicationRepository(ctx, cfg, log)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &repository.ApplicationDynamoRepository{}, repo)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: "s3"}}
		_, _, err := newApplicationRepository(ctx, cfg, log)
		assert.Error(t, err)
	})
}
