package contracts

import "time"

// Contract is a job/payment agreement between an employer and a freelancer,
// not a smart contract. Employer and freelancer hold raw wallet addresses.
type Contract struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description,omitempty"`
	Employer             string    `json:"employer"`
	Freelancer           string    `json:"freelancer,omitempty"`
	Amount               float64   `json:"amount"`
	TransactionSignature string    `json:"transactionSignature,omitempty"`
	EscrowAddress        string    `json:"escrowAddress,omitempty"`
	Status               Status    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
