package walletsession

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/olopa-labs/olopa/internal/contracts"
)

// Settlement is the outcome of a settlement attempt: the placeholder or real
// identifiers to record on the contract, the status it should carry, how much
// to debit from the local balance, and the activity entry to log.
type Settlement struct {
	TransactionSignature string
	EscrowAddress        string
	Status               contracts.Status
	Debit                float64
	Activity             string
}

// Settler attempts to settle a contract's funding. Implementations decide
// whether anything real happens.
type Settler interface {
	AttemptSettlement(ctx context.Context, amount float64, recipient string) (Settlement, error)
}

// SimulatedSettler stands in for the missing escrow program on provider
// sessions: it fabricates a transaction signature and escrow address and
// leaves the real balance alone, since no transfer occurs.
type SimulatedSettler struct {
	Rand *rand.Rand
}

func (s *SimulatedSettler) AttemptSettlement(_ context.Context, amount float64, _ string) (Settlement, error) {
	return Settlement{
		TransactionSignature: "SIMULATED_" + randToken(s.Rand, 13),
		EscrowAddress:        "SIMULATED_ESCROW_" + randToken(s.Rand, 8),
		Status:               contracts.StatusSimulated,
		Activity:             fmt.Sprintf("Contract created (simulated): %s SOL", formatSOL(amount)),
	}, nil
}

// DemoLedgerSettler settles against the local demo balance: it debits the
// amount and fabricates an escrow address, with no transaction signature.
type DemoLedgerSettler struct {
	Rand *rand.Rand
}

func (s *DemoLedgerSettler) AttemptSettlement(_ context.Context, amount float64, _ string) (Settlement, error) {
	return Settlement{
		EscrowAddress: "DEMO_ESCROW_" + randToken(s.Rand, 8),
		Status:        contracts.StatusCreated,
		Debit:         amount,
		Activity:      fmt.Sprintf("Demo contract created: %s SOL", formatSOL(amount)),
	}, nil
}

// OnChainSettler drives the provider's sign/send/confirm path for a real
// transfer. The creation flow never selects it; it exists so a real escrow
// implementation can plug in without touching the flow.
type OnChainSettler struct {
	Provider Provider
	From     string
}

func (s *OnChainSettler) AttemptSettlement(ctx context.Context, amount float64, recipient string) (Settlement, error) {
	if s.Provider == nil {
		return Settlement{}, errors.New("wallet provider not connected")
	}
	if recipient == "" {
		return Settlement{}, errors.New("recipient address required")
	}
	signed, err := s.Provider.SignTransaction(ctx, Transaction{From: s.From, To: recipient, Amount: amount})
	if err != nil {
		return Settlement{}, err
	}
	sig, err := s.Provider.SendRawTransaction(ctx, signed.Raw)
	if err != nil {
		return Settlement{}, err
	}
	if err := s.Provider.ConfirmTransaction(ctx, sig); err != nil {
		return Settlement{}, err
	}
	return Settlement{
		TransactionSignature: sig,
		EscrowAddress:        recipient,
		Status:               contracts.StatusFunded,
		Debit:                amount,
		Activity:             fmt.Sprintf("Contract funded: %s SOL", formatSOL(amount)),
	}, nil
}

const tokenChars = "0123456789abcdefghijklmnopqrstuvwxyz"

func randToken(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		if rng != nil {
			b[i] = tokenChars[rng.Intn(len(tokenChars))]
		} else {
			b[i] = tokenChars[rand.Intn(len(tokenChars))]
		}
	}
	return string(b)
}
