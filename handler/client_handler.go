package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	clientpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/client"
)

type ClientHandler struct {
	service clientpkg.Service
}

func NewClientHandler(svc clientpkg.Service) *ClientHandler {
	return &ClientHandler{service: svc}
}

type addressPayload struct {
	Road        string `json:"road" binding:"required"`
	HouseNumber string `json:"house_number" binding:"required"`
	City        string `json:"city" binding:"required"`
}

type creditCardPayload struct {
	Number         string         `json:"number" binding:"required"`
	BillingAddress addressPayload `json:"billing_address" binding:"required"`
}

type registerClientPayload struct {
	Email       string              `json:"email" binding:"required,email"`
	Name        string              `json:"name" binding:"required"`
	Addresses   []addressPayload    `json:"addresses"`
	CreditCards []creditCardPayload `json:"credit_cards"`
}

// Register creates the client with their addresses and credit cards.
func (h *ClientHandler) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerClientPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		req := clientpkg.RegisterClientRequest{Email: p.Email, Name: p.Name}
		for _, a := range p.Addresses {
			req.Addresses = append(req.Addresses, clientpkg.AddressInput{Road: a.Road, HouseNumber: a.HouseNumber, City: a.City})
		}
		for _, cc := range p.CreditCards {
			req.CreditCards = append(req.CreditCards, clientpkg.CreditCardInput{
				Number: cc.Number,
				BillingAddress: clientpkg.AddressInput{
					Road:        cc.BillingAddress.Road,
					HouseNumber: cc.BillingAddress.HouseNumber,
					City:        cc.BillingAddress.City,
				},
			})
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RegisterClient(ctx, req)
		if err != nil {
			if errors.Is(err, clientpkg.ErrClientExists) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register client", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"client": created})
	}
}
