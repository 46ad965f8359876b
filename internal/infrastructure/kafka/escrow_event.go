package publisher

import (
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

type EscrowEvent struct {
	EventID    string    `json:"event_id"`
	EscrowID   string    `json:"escrow_id"`
	OrderID    string    `json:"order_id"`
	Buyer      string    `json:"buyer"`
	Seller     string    `json:"seller"`
	Amount     uint64    `json:"amount"`
	Status     string    `json:"status"`
	Transition string    `json:"transition"`
	OccurredAt time.Time `json:"occurred_at"`
}

var newEventID = func() func() string {
	gen, err := nanoid.Standard(21)
	if err != nil {
		panic(err)
	}
	return gen
}()

func NewEscrowEvent(escrow *domain.Escrow, transition domain.Transition) EscrowEvent {
	return EscrowEvent{
		EventID:    newEventID(),
		EscrowID:   escrow.ID,
		OrderID:    escrow.OrderID,
		Buyer:      escrow.Buyer,
		Seller:     escrow.Seller,
		Amount:     escrow.Amount,
		Status:     string(escrow.Status),
		Transition: string(transition),
		OccurredAt: escrow.UpdatedAt,
	}
}
