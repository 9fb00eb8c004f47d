package receipts_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/priyeshgu/kqrgaushala-be/handlers/receipts"
	"github.com/priyeshgu/kqrgaushala-be/services"
)

type stubMailer struct {
	to, subject, body, name string
	attachment              []byte
	err                     error
	calls                   int
}

func (s *stubMailer) SendEmail(to, subject, body, attachmentName string, attachment []byte) error {
	s.calls++
	s.to, s.subject, s.body, s.name = to, subject, body, attachmentName
	s.attachment = attachment
	if len(attachment) == 0 {
		// Mirrors services.Mailer's attachment guard.
		return services.ErrMissingAttachment
	}
	return s.err
}

func newReceiptRouter(t *testing.T, mailer *stubMailer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	receipts.RegisterReceiptRoutes(r, mailer)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if file != nil {
		fw, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(file); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf, mw.FormDataContentType()
}

func TestSendEmail(t *testing.T) {
	mailer := &stubMailer{}
	r := newReceiptRouter(t, mailer)

	pdf := []byte("%PDF-1.4 receipt")
	body, contentType := multipartBody(t, map[string]string{
		"to":       "donor@example.com",
		"subject":  "Donation Receipt",
		"message":  "Thank you for your donation.",
		"filename": "receipt-42.pdf",
	}, "pdf", "upload.pdf", pdf)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-email", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Message != "Email sent successfully" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if mailer.to != "donor@example.com" || mailer.name != "receipt-42.pdf" {
		t.Fatalf("mailer got wrong fields: %+v", mailer)
	}
	if !bytes.Equal(mailer.attachment, pdf) {
		t.Fatal("attachment bytes not passed through")
	}
}

func TestSendEmailMissingAttachmentIs400(t *testing.T) {
	mailer := &stubMailer{}
	r := newReceiptRouter(t, mailer)

	body, contentType := multipartBody(t, map[string]string{
		"to":      "donor@example.com",
		"subject": "Donation Receipt",
		"message": "Thank you.",
	}, "", "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-email", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 without attachment, got %d", w.Code)
	}
	if mailer.calls != 0 {
		t.Fatal("mailer must not be called without an attachment")
	}
}

func TestSendEmailEmptyAttachmentIs400(t *testing.T) {
	mailer := &stubMailer{}
	r := newReceiptRouter(t, mailer)

	// The pdf part is present but holds zero bytes.
	body, contentType := multipartBody(t, map[string]string{
		"to": "donor@example.com",
	}, "pdf", "upload.pdf", []byte{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-email", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 for empty attachment, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success || resp.Error != "Missing pdf attachment" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSendEmailFallsBackToUploadedFilename(t *testing.T) {
	mailer := &stubMailer{}
	r := newReceiptRouter(t, mailer)

	body, contentType := multipartBody(t, map[string]string{
		"to": "donor@example.com",
	}, "pdf", "upload.pdf", []byte("x"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-email", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if mailer.name != "upload.pdf" {
		t.Fatalf("want uploaded filename fallback, got %q", mailer.name)
	}
}

func TestSendEmailDeliveryFailureIs500(t *testing.T) {
	mailer := &stubMailer{err: errors.New("smtp auth failed")}
	r := newReceiptRouter(t, mailer)

	body, contentType := multipartBody(t, map[string]string{
		"to": "donor@example.com",
	}, "pdf", "upload.pdf", []byte("x"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-email", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success || resp.Error != "Failed to send email" {
		t.Fatalf("delivery cause must not leak: %+v", resp)
	}
}
