package response

type BalanceResponse struct {
	HoldingID string `json:"holdingId"`
	Balance   uint64 `json:"balance"`
}

// Error codes the wallet service returns alongside non-2xx statuses.
const (
	CodeInsufficientFunds = "insufficient_funds"
	CodeHoldingNotFound   = "holding_not_found"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}
