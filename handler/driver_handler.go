package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	driverpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/driver"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/realtime"
)

// DriverHandler bundles driver registration, capability declarations and
// driver removal endpoints.
type DriverHandler struct {
	drivers driverpkg.Service
	fleet   fleet.Service
	hub     *realtime.Hub
}

func NewDriverHandler(drivers driverpkg.Service, fleetSvc fleet.Service, hub *realtime.Hub) *DriverHandler {
	return &DriverHandler{drivers: drivers, fleet: fleetSvc, hub: hub}
}

type registerDriverPayload struct {
	Name        string `json:"name" binding:"required"`
	Road        string `json:"road" binding:"required"`
	HouseNumber string `json:"house_number" binding:"required"`
	City        string `json:"city" binding:"required"`
}

func (h *DriverHandler) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerDriverPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		d, err := h.drivers.RegisterDriver(ctx, driverpkg.RegisterDriverRequest{
			Name:        p.Name,
			Road:        p.Road,
			HouseNumber: p.HouseNumber,
			City:        p.City,
		})
		if err != nil {
			if errors.Is(err, driverpkg.ErrDriverExists) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register driver", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"driver": d})
	}
}

type updateAddressPayload struct {
	Road        string `json:"road" binding:"required"`
	HouseNumber string `json:"house_number" binding:"required"`
	City        string `json:"city" binding:"required"`
}

// UpdateAddress changes the authenticated driver's residential address.
func (h *DriverHandler) UpdateAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.GetString("principal_id")
		var p updateAddressPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if err := h.drivers.UpdateAddress(ctx, name, p.Road, p.HouseNumber, p.City); err != nil {
			if errors.Is(err, driverpkg.ErrDriverNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update address", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "address updated"})
	}
}

// ListModels returns the whole catalog so a driver can pick models to declare.
func (h *DriverHandler) ListModels() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		list, err := h.fleet.ListModels(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list models", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type declareCapabilityPayload struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
	ModelID   string `json:"model_id" binding:"required"`
}

// DeclareCapability records that the authenticated driver can operate the
// given vehicle model. Declaring twice is a no-op.
func (h *DriverHandler) DeclareCapability() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.GetString("principal_id")
		var p declareCapabilityPayload
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
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if err := h.drivers.DeclareCapability(ctx, name, vehicleID, modelID); err != nil {
			if errors.Is(err, driverpkg.ErrDriverNotFound) || errors.Is(err, fleet.ErrModelNotFound) || errors.Is(err, fleet.ErrVehicleNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to declare capability", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "capability declared"})
	}
}

// Remove deletes a driver and everything referencing them, unless the driver
// still has rentals dated today or later.
func (h *DriverHandler) Remove() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		result, err := h.drivers.RemoveDriver(ctx, name)
		if err != nil {
			switch {
			case errors.Is(err, driverpkg.ErrDriverNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, driverpkg.ErrHasActiveRentals):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove driver", "detail": err.Error()})
			}
			return
		}
		if h.hub != nil {
			_ = h.hub.NotifyDriver(name, "driver.removed", gin.H{"driver_name": name})
		}
		c.JSON(http.StatusOK, result)
	}
}
