package notify

import (
	"context"
	"net/http"
	"strings"
)

// Brevo sends the notification as a transactional email.
type Brevo struct {
	apiKey  string
	baseURL string
	sender  brevoContact
	to      brevoContact
	client  *http.Client
}

type brevoContact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoEmail struct {
	Sender      brevoContact   `json:"sender"`
	To          []brevoContact `json:"to"`
	ReplyTo     brevoContact   `json:"replyTo"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
	TextContent string         `json:"textContent"`
}

// NewBrevo creates the channel. senderEmail must be a sender verified in Brevo.
func NewBrevo(apiKey, baseURL, senderEmail, senderName, ownerEmail, ownerName string, client *http.Client) *Brevo {
	return &Brevo{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		sender:  brevoContact{Email: senderEmail, Name: senderName},
		to:      brevoContact{Email: ownerEmail, Name: ownerName},
		client:  client,
	}
}

func (b *Brevo) Name() string { return "brevo" }

func (b *Brevo) Send(ctx context.Context, msg Message) error {
	payload := brevoEmail{
		Sender:      b.sender,
		To:          []brevoContact{b.to},
		ReplyTo:     brevoContact{Email: msg.Contact.Email, Name: msg.Contact.FullName()},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
		TextContent: msg.Text,
	}

	header := http.Header{}
	header.Set("api-key", b.apiKey)

	_, err := postJSON(ctx, b.client, b.baseURL+"/v3/smtp/email", header, payload)
	return err
}
