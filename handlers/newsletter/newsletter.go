package newsletter

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyeshgu/kqrgaushala-be/store"
)

type Handler struct {
	Store *store.Store
}

func RegisterNewsletterRoutes(r *gin.Engine, s *store.Store) {
	h := &Handler{Store: s}
	r.POST("/emailentry", h.Subscribe)
}

// Subscribe records a newsletter signup. No format check and no duplicate
// check; signing up twice produces two rows.
func (h *Handler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error recording newsletter signup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	if _, err := h.Store.Subscribe(req.Email); err != nil {
		log.Printf("Error recording newsletter signup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
