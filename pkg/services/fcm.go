package services

import (
	"context"
	"fmt"
	"log"

	"tiffinbox/pkg/config"
	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// InitFCM initializes Firebase Cloud Messaging
func InitFCM() error {
	ctx := context.Background()

	opt := option.WithCredentialsFile(config.AppConfig.GoogleApplicationCredentials)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize FCM client: %v", err)
	}

	fcmClient = client
	return nil
}

// SendPushNotification sends a notification to a single device
func SendPushNotification(deviceToken, title, body string, data map[string]string) (string, error) {
	if fcmClient == nil {
		return "", fmt.Errorf("FCM client not initialized")
	}

	ctx := context.Background()

	message := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := fcmClient.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send notification: %v", err)
	}

	return response, nil
}

// NotifyUser pushes a notification to every active device registered for the
// user. Push failures are logged, never surfaced to the order flow.
func NotifyUser(userID int, title, body string, data map[string]string) {
	if fcmClient == nil {
		return
	}

	var tokens []models.DeviceToken
	if err := database.DB.Where("user_id = ? AND is_active = ?", userID, true).Find(&tokens).Error; err != nil {
		log.Printf("Failed to load device tokens for user %d: %v", userID, err)
		return
	}

	for _, t := range tokens {
		if _, err := SendPushNotification(t.Token, title, body, data); err != nil {
			log.Printf("Push to user %d failed: %v", userID, err)
		}
	}
}

// NotifyOrderStatus pushes the composite tracking label for an order to its
// customer, if the order belongs to a registered account.
func NotifyOrderStatus(customerID *int, orderID int, label string) {
	if customerID == nil {
		return
	}
	NotifyUser(*customerID, "Order update", label, map[string]string{
		"orderId": fmt.Sprintf("%d", orderID),
	})
}
