package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	allocationpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/allocation"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	rentalpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/rental"
)

// RentalHandler bundles availability and booking endpoints.
type RentalHandler struct {
	rentals rentalpkg.Service
	engine  allocationpkg.Service
}

func NewRentalHandler(rentals rentalpkg.Service, engine allocationpkg.Service) *RentalHandler {
	return &RentalHandler{rentals: rentals, engine: engine}
}

// AvailableModels lists models bookable on the date given as ?date=2006-01-02.
func (h *RentalHandler) AvailableModels() gin.HandlerFunc {
	return func(c *gin.Context) {
		date, err := entity.ParseDay(c.Query("date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing date, expected YYYY-MM-DD"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		list, err := h.rentals.ListFreeModels(ctx, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list available models", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type bookRentPayload struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
	ModelID   string `json:"model_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// BookRent books the model for the authenticated client on the date; the
// engine assigns a qualified free driver or rejects the request.
func (h *RentalHandler) BookRent() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientEmail := c.GetString("principal_id")
		var p bookRentPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		vehicleID, err := uuid.Parse(p.VehicleID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_id"})
			return
		}
		modelID, err := uuid.Parse(p.ModelID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model_id"})
			return
		}
		date, err := entity.ParseDay(p.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		booked, err := h.engine.BookRent(ctx, clientEmail, vehicleID, modelID, date)
		if err != nil {
			switch {
			case errors.Is(err, allocationpkg.ErrModelNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, allocationpkg.ErrModelUnavailable),
				errors.Is(err, allocationpkg.ErrNoDriverAvailable):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "retryable": false})
			case errors.Is(err, allocationpkg.ErrConflict):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "retryable": true})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to book rent", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"reservation_id":  booked.ID,
			"assigned_driver": booked.DriverName,
			"rent_date":       booked.RentDate.Format(entity.DateLayout),
		})
	}
}

// MyRents lists the authenticated client's rentals with joined display fields.
func (h *RentalHandler) MyRents() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientEmail := c.GetString("principal_id")
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		list, err := h.rentals.ListClientRentals(ctx, clientEmail)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rentals", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
