package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"portfolio/config"
)

// BuildChannels constructs the channels named in cfg.Channels, in that order.
// A channel missing its credentials is skipped with a warning; an unknown
// name is an error.
func BuildChannels(ctx context.Context, cfg config.NotifyConfig, client *http.Client) ([]Channel, error) {
	channels := make([]Channel, 0, len(cfg.Channels))

	for _, name := range cfg.Channels {
		ch, missing, err := buildChannel(ctx, name, cfg, client)
		if err != nil {
			return nil, err
		}
		if ch == nil {
			slog.Warn("notification channel not configured, skipping", "channel", name, "missing", missing)
			continue
		}
		channels = append(channels, ch)
	}

	if len(channels) == 0 {
		slog.Warn("no notification channels configured; contact messages will only be stored")
	} else {
		names := make([]string, len(channels))
		for i, ch := range channels {
			names[i] = ch.Name()
		}
		slog.Info("notification channels ready", "channels", names)
	}
	return channels, nil
}

// buildChannel returns a nil Channel and the missing setting when the
// channel cannot be used.
func buildChannel(ctx context.Context, name string, cfg config.NotifyConfig, client *http.Client) (Channel, string, error) {
	switch name {
	case config.ChannelFormSubmit:
		if cfg.FormSubmit.Endpoint == "" {
			return nil, "FORMSUBMIT_ENDPOINT", nil
		}
		return NewFormSubmit(cfg.FormSubmit.Endpoint, cfg.FormSubmit.AutoResponse, client), "", nil

	case config.ChannelBrevo:
		b := cfg.Brevo
		if b.APIKey == "" {
			return nil, "BREVO_API_KEY", nil
		}
		if cfg.OwnerEmail == "" {
			return nil, "NOTIFY_OWNER_EMAIL", nil
		}
		sender := b.SenderEmail
		if sender == "" {
			sender = cfg.OwnerEmail
		}
		return NewBrevo(b.APIKey, b.BaseURL, sender, b.SenderName, cfg.OwnerEmail, cfg.OwnerName, client), "", nil

	case config.ChannelSES:
		if !cfg.SES.Enabled {
			return nil, "AWS_SES_ENABLED", nil
		}
		if cfg.SES.FromEmail == "" {
			return nil, "AWS_SES_FROM_EMAIL", nil
		}
		if cfg.OwnerEmail == "" {
			return nil, "NOTIFY_OWNER_EMAIL", nil
		}
		ses, err := NewSES(ctx, cfg.SES, cfg.OwnerEmail)
		if err != nil {
			return nil, "", fmt.Errorf("ses channel: %w", err)
		}
		return ses, "", nil

	case config.ChannelTelegram:
		if cfg.Telegram.BotToken == "" {
			return nil, "TELEGRAM_BOT_TOKEN", nil
		}
		if cfg.Telegram.ChatID == "" {
			return nil, "TELEGRAM_CHAT_ID", nil
		}
		return NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.BaseURL, client), "", nil

	case config.ChannelNtfy:
		if cfg.Ntfy.Topic == "" {
			return nil, "NTFY_TOPIC", nil
		}
		return NewNtfy(cfg.Ntfy.BaseURL, cfg.Ntfy.Topic, cfg.Ntfy.Token, cfg.Ntfy.Priority, client), "", nil

	default:
		return nil, "", fmt.Errorf("unknown notification channel %q", name)
	}
}
