package request

type TransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type OpenHoldingRequest struct {
	HoldingID string `json:"holdingId"`
}
