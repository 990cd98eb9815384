package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	allocationpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/allocation"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

type stubEngine struct {
	rental *entity.Rental
	err    error
}

func (s *stubEngine) BookRent(ctx context.Context, clientEmail string, vehicleID, modelID uuid.UUID, date time.Time) (*entity.Rental, error) {
	return s.rental, s.err
}

func bookRentRequest(t *testing.T, engine allocationpkg.Service) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRentalHandler(nil, engine)
	r.POST("/rents", func(c *gin.Context) {
		c.Set("principal_id", "jane@example.com")
		h.BookRent()(c)
	})

	body := `{"vehicle_id":"` + uuid.NewString() + `","model_id":"` + uuid.NewString() + `","date":"2026-09-10"}`
	req := httptest.NewRequest(http.MethodPost, "/rents", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookRent_Created(t *testing.T) {
	day, err := entity.ParseDay("2026-09-10")
	require.NoError(t, err)
	booked := &entity.Rental{
		ID:          uuid.New(),
		RentDate:    day,
		ClientEmail: "jane@example.com",
		DriverName:  "Alice",
		VehicleID:   uuid.New(),
		ModelID:     uuid.New(),
	}

	w := bookRentRequest(t, &stubEngine{rental: booked})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"assigned_driver":"Alice"`)
	assert.Contains(t, w.Body.String(), `"rent_date":"2026-09-10"`)
}

func TestBookRent_ErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"model not found", allocationpkg.ErrModelNotFound, http.StatusNotFound, ""},
		{"model unavailable", allocationpkg.ErrModelUnavailable, http.StatusConflict, `"retryable":false`},
		{"no driver", allocationpkg.ErrNoDriverAvailable, http.StatusConflict, `"retryable":false`},
		{"contention", allocationpkg.ErrConflict, http.StatusConflict, `"retryable":true`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := bookRentRequest(t, &stubEngine{err: tc.err})
			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				assert.Contains(t, w.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestBookRent_InvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRentalHandler(nil, &stubEngine{})
	r.POST("/rents", h.BookRent())

	req := httptest.NewRequest(http.MethodPost, "/rents", strings.NewReader(`{"vehicle_id":"not-a-uuid"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
