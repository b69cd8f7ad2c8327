package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

const expoPushURL = "https://exp.host/--/api/v2/push/send"

type PushTokenRepository interface {
	ListPushTokens(userID uint) ([]string, error)
}

// ExpoPushNotifier delivers reminders through the Expo push API using the
// tokens the mobile client registered. Users without tokens are skipped
// silently.
type ExpoPushNotifier struct {
	client *resty.Client
	tokens PushTokenRepository
	url    string
}

func NewExpoPushNotifier(tokens PushTokenRepository) *ExpoPushNotifier {
	return &ExpoPushNotifier{
		client: resty.New(),
		tokens: tokens,
		url:    expoPushURL,
	}
}

type expoPushMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (notifier *ExpoPushNotifier) Notify(ctx context.Context, userID uint, title string, body string) error {
	tokens, err := notifier.tokens.ListPushTokens(userID)
	if err != nil {
		return fmt.Errorf("load push tokens: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	messages := make([]expoPushMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, expoPushMessage{To: token, Title: title, Body: body})
	}

	response, err := notifier.client.R().
		SetContext(ctx).
		SetBody(messages).
		Post(notifier.url)
	if err != nil {
		return fmt.Errorf("expo push request: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return fmt.Errorf("expo push status %d: %s", response.StatusCode(), response.String())
	}
	return nil
}
