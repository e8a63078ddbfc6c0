package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Telegram posts the plain-text notification to a chat through a bot.
type Telegram struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

func NewTelegram(token, chatID, baseURL string, client *http.Client) *Telegram {
	return &Telegram{
		token:   token,
		chatID:  chatID,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (t *Telegram) Name() string { return "telegram" }

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (t *Telegram) Send(ctx context.Context, msg Message) error {
	payload := map[string]any{
		"chat_id":                  t.chatID,
		"text":                     msg.Subject + "\n\n" + msg.Text,
		"disable_web_page_preview": true,
	}

	body, err := postJSON(ctx, t.client, t.baseURL+"/bot"+t.token+"/sendMessage", nil, payload)
	if err != nil {
		// The token is part of the URL; keep it out of logs and responses.
		return errors.New(strings.ReplaceAll(err.Error(), t.token, "<token>"))
	}

	var resp telegramResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !resp.OK {
		if resp.Description == "" {
			return errors.New("api returned ok=false")
		}
		return fmt.Errorf("api returned ok=false: %s", resp.Description)
	}
	return nil
}
