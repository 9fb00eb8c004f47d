package orders

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyeshgu/kqrgaushala-be/services"
	"github.com/priyeshgu/kqrgaushala-be/utils"
)

// OrderService is the payment collaborator the handler needs.
type OrderService interface {
	CreateOrder(amount interface{}) (map[string]interface{}, error)
	KeyID() string
}

type Handler struct {
	Payments OrderService
}

func RegisterOrderRoutes(r *gin.Engine, payments OrderService) {
	h := &Handler{Payments: payments}
	r.POST("/create-order", h.CreateOrder)
	r.GET("/qrcode", h.QRCode)
}

// CreateOrder creates a gateway payment order for the given amount in major
// currency units and returns it with the gateway public key for checkout.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req struct {
		Amount interface{} `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	order, err := h.Payments.CreateOrder(req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}
		log.Printf("Error creating payment order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "razorpayKey": h.Payments.KeyID()})
}

// QRCode renders the given text, usually a donation or payment link, as a PNG
// QR code.
func (h *Handler) QRCode(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text"})
		return
	}

	png, err := utils.GenerateQRCode(text)
	if err != nil {
		log.Printf("Error generating QR code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
