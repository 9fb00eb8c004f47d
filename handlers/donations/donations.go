package donations

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyeshgu/kqrgaushala-be/models"
	"github.com/priyeshgu/kqrgaushala-be/store"
)

type Handler struct {
	Store *store.Store
}

func RegisterDonationRoutes(r *gin.Engine, s *store.Store) {
	h := &Handler{Store: s}
	r.POST("/donate", h.Donate)
	r.GET("/donators", h.ListDonators)
}

// Donate records one donation submission verbatim and echoes the persisted row
// back, generated id included.
func (h *Handler) Donate(c *gin.Context) {
	var donator models.Donator
	if err := c.ShouldBindJSON(&donator); err != nil {
		log.Printf("Error processing donation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	if err := h.Store.RecordDonation(&donator); err != nil {
		log.Printf("Error processing donation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": donator})
}

// ListDonators returns every recorded donation, id ascending. No pagination;
// the data volume is assumed small.
func (h *Handler) ListDonators(c *gin.Context) {
	donators, err := h.Store.ListDonators()
	if err != nil {
		log.Printf("Error retrieving donators: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": donators})
}
