package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const SignatureHeader = "X-Escrow-Signature"

// CallbackNotifier posts escrow transitions to the order service callback
// URL. Delivery is best effort: failures are logged, never retried.
type CallbackNotifier struct {
	URL    string
	secret []byte
	client *http.Client
	log    *slog.Logger
}

func NewCallbackNotifier(url, secret string, timeout time.Duration, log *slog.Logger) *CallbackNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &CallbackNotifier{
		URL:    url,
		secret: []byte(secret),
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// SendCallback отправляет коллбек в фоне
func (n *CallbackNotifier) SendCallback(ctx context.Context, payload CallbackPayload) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := n.Send(ctx, payload); err != nil {
			n.log.Warn("escrow callback failed", "escrow_id", payload.EscrowID, "url", n.URL, "error", err.Error())
			return
		}
		n.log.Debug("escrow callback sent", "escrow_id", payload.EscrowID, "url", n.URL)
	}()
}

func (n *CallbackNotifier) Send(ctx context.Context, payload CallbackPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal callback: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if len(n.secret) > 0 {
		req.Header.Set(SignatureHeader, Sign(n.secret, body))
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("callback returned status %d", resp.StatusCode)
	}
	return nil
}

// Sign returns the hex HMAC-SHA256 of body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
