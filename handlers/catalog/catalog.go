package catalog

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyeshgu/kqrgaushala-be/models"
	"github.com/priyeshgu/kqrgaushala-be/store"
)

// Mode selects the shape of a catalog read.
type Mode int

const (
	ModeInvalid Mode = iota
	ModeCategories
	ModeProducts
)

// ParseMode maps the ?type= query parameter onto a Mode. Anything other than
// the two known values (including an absent parameter) is ModeInvalid.
func ParseMode(s string) Mode {
	switch s {
	case "categories":
		return ModeCategories
	case "products":
		return ModeProducts
	default:
		return ModeInvalid
	}
}

type Handler struct {
	Store *store.Store
}

func RegisterCatalogRoutes(r *gin.Engine, s *store.Store) {
	h := &Handler{Store: s}
	r.GET("/donationCategories", h.GetCatalog)
	r.POST("/addProduct", h.AddProduct)
	r.POST("/updateProduct", h.UpdateProduct)
	r.POST("/deleteProduct", h.DeleteProduct)
}

// GetCatalog serves the catalog either grouped into categories or as the flat
// product list. An unknown mode gets the sentinel message with status 200, not
// an error status; the front-end relies on that.
func (h *Handler) GetCatalog(c *gin.Context) {
	mode := ParseMode(c.Query("type"))
	if mode == ModeInvalid {
		c.JSON(http.StatusOK, gin.H{"message": "Invalid request type"})
		return
	}

	products, err := h.Store.ListProducts()
	if err != nil {
		log.Printf("Error retrieving donation products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	switch mode {
	case ModeCategories:
		c.JSON(http.StatusOK, gin.H{"donationCategories": store.FormatDonationCategories(products)})
	case ModeProducts:
		c.JSON(http.StatusOK, gin.H{"return_result": products})
	}
}

type productRequest struct {
	ID            uint    `json:"id"`
	NameInEnglish string  `json:"name_in_english"`
	NameInHindi   string  `json:"name_in_hindi"`
	Type          string  `json:"type"`
	Cost          float64 `json:"cost"`
}

func (r productRequest) model() models.DonationProduct {
	return models.DonationProduct{
		ID:            r.ID,
		NameInEnglish: r.NameInEnglish,
		NameInHindi:   r.NameInHindi,
		Type:          r.Type,
		Cost:          r.Cost,
	}
}

func (h *Handler) AddProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error adding product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	product := req.model()
	if err := h.Store.AddProduct(&product); err != nil {
		log.Printf("Error adding product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error updating product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	product := req.model()
	if err := h.Store.UpdateProduct(&product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}
		log.Printf("Error updating product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated successfully"})
}

// DeleteProduct removes a catalog item only on an exact match of the id and all
// other fields; the caller has to hold the complete current record.
func (h *Handler) DeleteProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error deleting product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	product := req.model()
	if err := h.Store.DeleteProduct(&product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}
		log.Printf("Error deleting product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}
