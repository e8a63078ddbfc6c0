package notify

import (
	"context"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// Ntfy publishes the notification to an ntfy topic as a push message.
type Ntfy struct {
	baseURL  string
	topic    string
	token    string
	priority int
	client   *http.Client
}

func NewNtfy(baseURL, topic, token string, priority int, client *http.Client) *Ntfy {
	return &Ntfy{
		baseURL:  strings.TrimRight(baseURL, "/"),
		topic:    topic,
		token:    token,
		priority: priority,
		client:   client,
	}
}

func (n *Ntfy) Name() string { return "ntfy" }

func (n *Ntfy) Send(ctx context.Context, msg Message) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/"+n.topic, strings.NewReader(msg.Text))
	if err != nil {
		return err
	}
	// Header values must be ASCII; ntfy decodes RFC 2047 encoded words.
	req.Header.Set("Title", mime.QEncoding.Encode("utf-8", msg.Subject))
	req.Header.Set("Priority", strconv.Itoa(n.priority))
	req.Header.Set("Tags", "envelope")
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	_, err = do(n.client, req)
	return err
}
