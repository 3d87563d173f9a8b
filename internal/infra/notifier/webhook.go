package notifier

import (
	"context"
	"fmt"

	"ambassador-ledger/internal/pkg/config"
	"ambassador-ledger/internal/usecase/commands"

	"github.com/go-resty/resty/v2"
)

// WebhookNotifier posts application notices to the configured admin webhook.
// An empty webhook URL disables dispatch entirely.
type WebhookNotifier struct {
	client *resty.Client
	url    string
}

func NewWebhookNotifier(cfg config.NotifierConfig) *WebhookNotifier {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	return &WebhookNotifier{
		client: client,
		url:    cfg.WebhookURL,
	}
}

func (n *WebhookNotifier) NotifyApplicationSubmitted(ctx context.Context, notice commands.ApplicationNotice) error {
	if n.url == "" {
		return nil
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(notice).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("failed to post application notice: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("application notice rejected: status %d", resp.StatusCode())
	}
	return nil
}
