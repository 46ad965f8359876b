package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSignsPayload(t *testing.T) {
	received := make(chan CallbackPayload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, Sign([]byte("secret"), body), r.Header.Get(SignatureHeader))

		var payload CallbackPayload
		require.NoError(t, json.Unmarshal(body, &payload))
		received <- payload
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := NewCallbackNotifier(server.URL, "secret", time.Second, nil)
	err := n.Send(context.Background(), CallbackPayload{EscrowID: "e1", OrderID: "order-1", Status: "COMPLETED", Amount: 100})
	require.NoError(t, err)

	payload := <-received
	assert.Equal(t, "e1", payload.EscrowID)
	assert.Equal(t, uint64(100), payload.Amount)
}

func TestSendReportsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(SignatureHeader))
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	n := NewCallbackNotifier(server.URL, "", time.Second, nil)
	assert.Error(t, n.Send(context.Background(), CallbackPayload{EscrowID: "e1"}))
}

func TestSendCallbackSurvivesCancelledContext(t *testing.T) {
	received := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewCallbackNotifier(server.URL, "", time.Second, nil).SendCallback(ctx, CallbackPayload{EscrowID: "e1"})

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("callback was not delivered")
	}
}
