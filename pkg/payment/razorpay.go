package payment

import (
	"fmt"

	"krishisetu/pkg/utils"

	razorpay "github.com/razorpay/razorpay-go"
	rputils "github.com/razorpay/razorpay-go/utils"
)

// Gateway is the payment-gateway contract the booking engine and settlement
// consume. Amounts are rupees; conversion to paise happens inside.
type Gateway interface {
	CreateOrder(amount float64, receiptID string) (string, error)
	VerifySignature(paymentID, orderID, signature string) bool
	KeyID() string
}

type razorpayGateway struct {
	keyID     string
	keySecret string
	client    *razorpay.Client
}

func NewRazorpayGateway(cfg utils.RazorpayConfig) Gateway {
	return &razorpayGateway{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		client:    razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
	}
}

func (g *razorpayGateway) CreateOrder(amount float64, receiptID string) (string, error) {
	if g.keyID == "" || g.keySecret == "" {
		return "", fmt.Errorf("razorpay credentials are not configured")
	}

	data := map[string]interface{}{
		"amount":   int64(amount * 100), // amount in paise
		"currency": "INR",
		"receipt":  receiptID,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("create razorpay order: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return "", fmt.Errorf("razorpay order response missing id")
	}

	return orderID, nil
}

func (g *razorpayGateway) VerifySignature(paymentID, orderID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}

	return rputils.VerifyPaymentSignature(params, signature, g.keySecret)
}

func (g *razorpayGateway) KeyID() string {
	return g.keyID
}
