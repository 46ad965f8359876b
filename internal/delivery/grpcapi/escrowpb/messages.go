package escrowpb

import "time"

type Escrow struct {
	EscrowId  string     `json:"escrow_id"`
	OrderId   string     `json:"order_id"`
	Buyer     string     `json:"buyer"`
	Seller    string     `json:"seller"`
	Amount    uint64     `json:"amount"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
}

type InitializeEscrowRequest struct {
	OrderId string `json:"order_id"`
	Amount  uint64 `json:"amount"`
	Buyer   string `json:"buyer"`
	Seller  string `json:"seller"`
}

type ConfirmEscrowRequest struct {
	EscrowId string `json:"escrow_id"`
}

type CancelEscrowRequest struct {
	EscrowId string `json:"escrow_id"`
}

// GetEscrowRequest looks an escrow up by EscrowId, or by OrderId when
// EscrowId is empty.
type GetEscrowRequest struct {
	EscrowId string `json:"escrow_id,omitempty"`
	OrderId  string `json:"order_id,omitempty"`
}

type EscrowResponse struct {
	Escrow *Escrow `json:"escrow"`
}

type ListEscrowsRequest struct {
	Party  string `json:"party,omitempty"`
	Status string `json:"status,omitempty"`
	Page   int32  `json:"page,omitempty"`
	Limit  int32  `json:"limit,omitempty"`
}

type ListEscrowsResponse struct {
	Escrows []*Escrow `json:"escrows"`
	Total   int64     `json:"total"`
}

type GetEscrowStatsRequest struct{}

type GetEscrowStatsResponse struct {
	TotalEscrows     int64  `json:"total_escrows"`
	ActiveEscrows    int64  `json:"active_escrows"`
	CompletedEscrows int64  `json:"completed_escrows"`
	CancelledEscrows int64  `json:"cancelled_escrows"`
	TotalValueLocked uint64 `json:"total_value_locked"`
}
