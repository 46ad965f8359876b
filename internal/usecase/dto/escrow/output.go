package escrowdto

import "github.com/LavaJover/shvark-escrow-service/internal/domain"

type ListEscrowsOutput struct {
	Escrows []*domain.Escrow
	Total   int64
	Page    int
	Limit   int
}
