package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	reviewpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/review"
)

type ReviewHandler struct {
	service reviewpkg.Service
}

func NewReviewHandler(svc reviewpkg.Service) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

type leaveReviewPayload struct {
	DriverName string `json:"driver_name" binding:"required"`
	Message    string `json:"message"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
}

// LeaveReview records the authenticated client's rating of a driver; the
// pair must share at least one rental.
func (h *ReviewHandler) LeaveReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientEmail := c.GetString("principal_id")
		var p leaveReviewPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		rv, err := h.service.AddReview(ctx, reviewpkg.AddReviewRequest{
			ClientEmail: clientEmail,
			DriverName:  p.DriverName,
			Message:     p.Message,
			Rating:      p.Rating,
		})
		if err != nil {
			switch {
			case errors.Is(err, reviewpkg.ErrNoPriorRental):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, reviewpkg.ErrInvalidRating):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit review", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"review_id": rv.ID})
	}
}

// DriverReviews lists reviews left for a driver.
func (h *ReviewHandler) DriverReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		list, err := h.service.ListDriverReviews(ctx, c.Param("name"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
