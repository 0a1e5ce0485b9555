package push

import (
	"context"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// Message is an Expo push payload for a single device token.
type Message struct {
	To        string         `json:"to"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	Sound     string         `json:"sound"`
	Priority  string         `json:"priority"`
	ChannelID string         `json:"channelId"`
}

type Sender interface {
	Send(ctx context.Context, token, title, body string, data map[string]any) error
}

type ExpoClient struct {
	client  *resty.Client
	pushURL string
}

func NewExpoClient(pushURL string) *ExpoClient {
	return &ExpoClient{
		client:  resty.New(),
		pushURL: pushURL,
	}
}

func (e *ExpoClient) Send(ctx context.Context, token, title, body string, data map[string]any) error {
	msg := Message{
		To:        token,
		Title:     title,
		Body:      body,
		Data:      data,
		Sound:     "default",
		Priority:  "high",
		ChannelID: "default",
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(e.pushURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		log.Printf("expo push failed: %s", resp.String())
		return fmt.Errorf("expo push: status %d", resp.StatusCode())
	}
	return nil
}
