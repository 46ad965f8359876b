package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	walletRequest "github.com/LavaJover/shvark-escrow-service/internal/delivery/http/dto/wallet/request"
	walletResponse "github.com/LavaJover/shvark-escrow-service/internal/delivery/http/dto/wallet/response"
	"github.com/LavaJover/shvark-escrow-service/internal/domain"
)

// WalletClient is a domain.Ledger backed by the wallet service HTTP API.
type WalletClient struct {
	Address    string
	httpClient *http.Client
}

func NewWalletClient(address string, timeout time.Duration) (*WalletClient, error) {
	if strings.TrimSpace(address) == "" {
		return nil, errors.New("wallet service address is empty")
	}
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WalletClient{
		Address:    strings.TrimRight(address, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Detached - переводы в кошельке коммитятся отдельно от нашей БД
func (c *WalletClient) Detached() bool { return true }

func (c *WalletClient) OpenHolding(ctx context.Context, id domain.HoldingID) error {
	return c.post(ctx, "/wallets/holdings", walletRequest.OpenHoldingRequest{HoldingID: string(id)})
}

func (c *WalletClient) Transfer(ctx context.Context, from, to domain.HoldingID, amount uint64) error {
	return c.post(ctx, "/wallets/transfer", walletRequest.TransferRequest{
		From:   string(from),
		To:     string(to),
		Amount: amount,
	})
}

func (c *WalletClient) Balance(ctx context.Context, id domain.HoldingID) (uint64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/wallets/%s/balance", c.Address, url.PathEscape(string(id))), nil)
	if err != nil {
		return 0, err
	}
	response, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var balanceResponse walletResponse.BalanceResponse
		if err := json.Unmarshal(responseBodyBytes, &balanceResponse); err != nil {
			return 0, err
		}
		return balanceResponse.Balance, nil
	}
	return 0, decodeError(response.StatusCode, responseBodyBytes)
}

func (c *WalletClient) post(ctx context.Context, path string, body interface{}) error {
	requestBodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Address+path, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}
	return decodeError(response.StatusCode, responseBodyBytes)
}

// decodeError maps wallet error codes onto domain errors so the state
// machine can tell a short balance from any other rejection.
func decodeError(statusCode int, body []byte) error {
	var errorResponse walletResponse.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err != nil {
		return fmt.Errorf("wallet service returned %d", statusCode)
	}
	switch errorResponse.Code {
	case walletResponse.CodeInsufficientFunds:
		return fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, errorResponse.Error)
	case walletResponse.CodeHoldingNotFound:
		return fmt.Errorf("%w: %s", domain.ErrUnknownHolding, errorResponse.Error)
	}
	if statusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrUnknownHolding, errorResponse.Error)
	}
	return errors.New(errorResponse.Error)
}
