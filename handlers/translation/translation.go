package translation

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyeshgu/kqrgaushala-be/services"
)

// TextTranslator is the translation collaborator the handler needs.
type TextTranslator interface {
	Translate(ctx context.Context, text string) (services.TranslationResult, error)
}

type Handler struct {
	Translator TextTranslator
}

func RegisterTranslationRoutes(r *gin.Engine, translator TextTranslator) {
	h := &Handler{Translator: translator}
	r.POST("/translate", h.Translate)
}

// Translate proxies the submitted page content to the translation service.
// The language pair is fixed English to Hindi.
func (h *Handler) Translate(c *gin.Context) {
	var req struct {
		WebpageContent string `json:"webpageContent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error translating content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	result, err := h.Translator.Translate(c.Request.Context(), req.WebpageContent)
	if err != nil {
		log.Printf("Error translating content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
