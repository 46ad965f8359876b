package notifier

import "time"

type CallbackPayload struct {
	EscrowID   string     `json:"escrow_id"`
	OrderID    string     `json:"order_id"`
	Transition string     `json:"transition"`
	Status     string     `json:"status"`
	Amount     uint64     `json:"amount"`
	Buyer      string     `json:"buyer"`
	Seller     string     `json:"seller"`
	SettledAt  *time.Time `json:"settled_at,omitempty"`
}
