package receipts

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyeshgu/kqrgaushala-be/services"
)

// ReceiptMailer is the mail collaborator the handler needs.
type ReceiptMailer interface {
	SendEmail(to, subject, body, attachmentName string, attachment []byte) error
}

type Handler struct {
	Mailer ReceiptMailer
}

func RegisterReceiptRoutes(r *gin.Engine, mailer ReceiptMailer) {
	h := &Handler{Mailer: mailer}
	r.POST("/send-email", h.SendEmail)
}

// SendEmail sends a donation receipt to a single recipient. The request is a
// multipart form; the receipt PDF is required in the "pdf" file field.
func (h *Handler) SendEmail(c *gin.Context) {
	to := c.PostForm("to")
	subject := c.PostForm("subject")
	message := c.PostForm("message")
	filename := c.PostForm("filename")

	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing pdf attachment"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error reading uploaded receipt: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email"})
		return
	}
	defer file.Close()

	attachment, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded receipt: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email"})
		return
	}

	if filename == "" {
		filename = fileHeader.Filename
	}

	if err := h.Mailer.SendEmail(to, subject, message, filename, attachment); err != nil {
		// An uploaded-but-empty pdf part still fails the attachment precondition.
		if errors.Is(err, services.ErrMissingAttachment) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing pdf attachment"})
			return
		}
		log.Printf("Error sending receipt email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully"})
}
