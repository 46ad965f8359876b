package escrowdto

type InitializeEscrowInput struct {
	OrderID string
	Amount  uint64
	Buyer   string
	Seller  string
}

type ListEscrowsInput struct {
	Party  string
	Status string
	Page   int
	Limit  int
}
