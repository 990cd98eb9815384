package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet"
	managerpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/manager"
)

// ManagerHandler bundles manager registration, catalog administration and
// fleet reporting endpoints.
type ManagerHandler struct {
	managers managerpkg.Service
	fleet    fleet.Service
}

func NewManagerHandler(managers managerpkg.Service, fleetSvc fleet.Service) *ManagerHandler {
	return &ManagerHandler{managers: managers, fleet: fleetSvc}
}

type registerManagerPayload struct {
	SSN   string `json:"ssn" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (h *ManagerHandler) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerManagerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		m, err := h.managers.RegisterManager(ctx, managerpkg.RegisterManagerRequest{SSN: p.SSN, Name: p.Name, Email: p.Email})
		if err != nil {
			if errors.Is(err, managerpkg.ErrManagerExists) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register manager", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"manager": m})
	}
}

type insertVehiclePayload struct {
	Brand string `json:"brand" binding:"required"`
}

func (h *ManagerHandler) InsertVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p insertVehiclePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		v, err := h.fleet.RegisterVehicle(ctx, p.Brand)
		if err != nil {
			if errors.Is(err, fleet.ErrVehicleExists) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert vehicle", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"vehicle": v})
	}
}

func (h *ManagerHandler) RemoveVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p insertVehiclePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		modelsDeleted, err := h.fleet.RemoveVehicle(ctx, p.Brand)
		if err != nil {
			if errors.Is(err, fleet.ErrVehicleNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove vehicle", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"models_deleted": modelsDeleted})
	}
}

type insertModelPayload struct {
	VehicleID        string `json:"vehicle_id" binding:"required"`
	Color            string `json:"color" binding:"required"`
	ConstructionYear int    `json:"construction_year" binding:"required"`
	Transmission     string `json:"transmission" binding:"required"`
}

func (h *ManagerHandler) InsertModel() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p insertModelPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		vehicleID, err := uuid.Parse(p.VehicleID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		m, err := h.fleet.RegisterModel(ctx, fleet.RegisterModelRequest{
			VehicleID:        vehicleID,
			Color:            p.Color,
			ConstructionYear: p.ConstructionYear,
			Transmission:     p.Transmission,
		})
		if err != nil {
			if errors.Is(err, fleet.ErrVehicleNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"model": m})
	}
}

func (h *ManagerHandler) RemoveModel() gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_id"})
			return
		}
		modelID, err := uuid.Parse(c.Param("model_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model_id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if err := h.fleet.RemoveModel(ctx, vehicleID, modelID); err != nil {
			if errors.Is(err, fleet.ErrModelNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove model", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "model removed"})
	}
}

type topClientsPayload struct {
	K int `json:"k" binding:"required,min=1"`
}

func (h *ManagerHandler) TopClients() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p topClientsPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		list, err := h.managers.TopClients(ctx, p.K)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list top clients", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func (h *ManagerHandler) ModelRentCounts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		list, err := h.managers.ModelRentCounts(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count rentals", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func (h *ManagerHandler) DriverStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		list, err := h.managers.DriverStats(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate driver stats", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type clientsByCityPayload struct {
	ClientCity string `json:"client_city" binding:"required"`
	DriverCity string `json:"driver_city" binding:"required"`
}

func (h *ManagerHandler) ClientsByCity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p clientsByCityPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		list, err := h.managers.ClientsByCityPair(ctx, p.ClientCity, p.DriverCity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
