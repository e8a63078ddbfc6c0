package notify

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// FormSubmit relays the message through a form-to-email endpoint.
type FormSubmit struct {
	endpoint     string
	autoResponse string
	client       *http.Client
}

func NewFormSubmit(endpoint, autoResponse string, client *http.Client) *FormSubmit {
	return &FormSubmit{endpoint: endpoint, autoResponse: autoResponse, client: client}
}

func (f *FormSubmit) Name() string { return "formsubmit" }

func (f *FormSubmit) Send(ctx context.Context, msg Message) error {
	c := msg.Contact
	phone := c.Phone
	if phone == "" {
		phone = "Not provided"
	}

	form := url.Values{}
	form.Set("name", c.FullName())
	form.Set("email", c.Email)
	form.Set("phone", phone)
	form.Set("subject", c.Subject)
	form.Set("message", c.Message)
	form.Set("_subject", msg.Subject)
	form.Set("_replyto", c.Email)
	form.Set("_template", "table")
	form.Set("_captcha", "false")
	if f.autoResponse != "" {
		form.Set("_autoresponse", f.autoResponse)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	_, err = do(f.client, req)
	return err
}
