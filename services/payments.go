package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

// ErrInvalidAmount is returned when a create-order amount is missing,
// non-numeric, or not strictly positive. The gateway is never contacted.
var ErrInvalidAmount = errors.New("invalid amount")

// orderCreator is the slice of the Razorpay client the service needs.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// PaymentService creates gateway-side payment orders. Orders are not persisted
// locally and no idempotency key is sent, so a retried request can create a
// second live order on the gateway with no local record of either.
type PaymentService struct {
	keyID    string
	currency string
	orders   orderCreator
}

func NewPaymentService(keyID, keySecret string) *PaymentService {
	client := razorpay.NewClient(keyID, keySecret)
	return &PaymentService{
		keyID:    keyID,
		currency: "INR",
		orders:   client.Order,
	}
}

// KeyID returns the gateway public key the checkout front-end needs.
func (p *PaymentService) KeyID() string {
	return p.keyID
}

// CreateOrder validates the caller-supplied amount (major currency units),
// converts it to paise and creates a Razorpay order. The returned map is the
// gateway's order object verbatim.
func (p *PaymentService) CreateOrder(amount interface{}) (map[string]interface{}, error) {
	value, ok := parseAmount(amount)
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return nil, ErrInvalidAmount
	}
	paise := math.Round(value * 100)
	if paise >= math.MaxInt64 {
		// The ×100 product overflows int64; converting would wrap.
		return nil, ErrInvalidAmount
	}

	data := map[string]interface{}{
		"amount":   int64(paise),
		"currency": p.currency,
		"receipt":  fmt.Sprintf("donation_%d", time.Now().UnixNano()),
	}

	order, err := p.orders.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create razorpay order: %w", err)
	}
	return order, nil
}

// parseAmount accepts the shapes a JSON body can deliver the amount in.
func parseAmount(amount interface{}) (float64, bool) {
	switch v := amount.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
