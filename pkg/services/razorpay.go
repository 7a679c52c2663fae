package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"

	"tiffinbox/pkg/config"

	"github.com/razorpay/razorpay-go"
)

var razorpayClient *razorpay.Client

// InitRazorpay initializes the Razorpay client
func InitRazorpay() error {
	keyID := config.AppConfig.RazorpayKeyID
	keySecret := config.AppConfig.RazorpayKeySecret

	if keyID == "" || keySecret == "" {
		fmt.Println("Warning: RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET not set")
		return nil // Don't fail init, just warn
	}

	razorpayClient = razorpay.NewClient(keyID, keySecret)
	return nil
}

// CreateRazorpayOrder creates a Razorpay order for an online checkout
func CreateRazorpayOrder(amount float64, currency, receiptID string) (map[string]interface{}, error) {
	if razorpayClient == nil {
		return nil, fmt.Errorf("razorpay client not initialized")
	}

	// Amount in the smallest currency unit
	amountInPaise := math.Round(amount * 100)

	data := map[string]interface{}{
		"amount":   amountInPaise,
		"currency": currency,
		"receipt":  fmt.Sprintf("receipt_%v", receiptID),
	}

	body, err := razorpayClient.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %v", err)
	}

	return body, nil
}

// VerifyPaymentSignature verifies the Razorpay payment signature
func VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	keySecret := config.AppConfig.RazorpayKeySecret
	if keySecret == "" {
		return false
	}

	data := orderID + "|" + paymentID
	h := hmac.New(sha256.New, []byte(keySecret))
	h.Write([]byte(data))
	expectedSignature := hex.EncodeToString(h.Sum(nil))

	return hmac.Equal([]byte(expectedSignature), []byte(signature))
}
