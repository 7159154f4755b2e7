package walletsession

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olopa-labs/olopa/internal/contracts"
)

func TestSimulatedSettler(t *testing.T) {
	s := &SimulatedSettler{Rand: rand.New(rand.NewSource(1))}
	out, err := s.AttemptSettlement(context.Background(), 5, "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.TransactionSignature, "SIMULATED_"))
	assert.True(t, strings.HasPrefix(out.EscrowAddress, "SIMULATED_ESCROW_"))
	assert.Equal(t, contracts.StatusSimulated, out.Status)
	assert.Zero(t, out.Debit) // no transfer occurs
	assert.Contains(t, out.Activity, "simulated")

	// distinct random tokens
	again, err := s.AttemptSettlement(context.Background(), 5, "")
	require.NoError(t, err)
	assert.NotEqual(t, out.TransactionSignature, again.TransactionSignature)
	assert.NotEqual(t, out.TransactionSignature, out.EscrowAddress)
}

func TestDemoLedgerSettler(t *testing.T) {
	s := &DemoLedgerSettler{Rand: rand.New(rand.NewSource(1))}
	out, err := s.AttemptSettlement(context.Background(), 7.5, "")
	require.NoError(t, err)

	assert.Empty(t, out.TransactionSignature)
	assert.True(t, strings.HasPrefix(out.EscrowAddress, "DEMO_ESCROW_"))
	assert.Equal(t, contracts.StatusCreated, out.Status)
	assert.Equal(t, 7.5, out.Debit)
	assert.Contains(t, out.Activity, "Demo contract created")
}

func TestOnChainSettlerDrivesProvider(t *testing.T) {
	provider := &fakeProvider{}
	s := &OnChainSettler{Provider: provider, From: "sender-addr"}

	out, err := s.AttemptSettlement(context.Background(), 3, "recipient-addr")
	require.NoError(t, err)
	assert.Equal(t, []string{"sign", "send", "confirm"}, provider.calls)
	assert.Equal(t, "sig-onchain", out.TransactionSignature)
	assert.Equal(t, "recipient-addr", out.EscrowAddress)
	assert.Equal(t, contracts.StatusFunded, out.Status)
}

func TestOnChainSettlerFailures(t *testing.T) {
	_, err := (&OnChainSettler{}).AttemptSettlement(context.Background(), 3, "recipient")
	assert.Error(t, err)

	_, err = (&OnChainSettler{Provider: &fakeProvider{}}).AttemptSettlement(context.Background(), 3, "")
	assert.Error(t, err)

	provider := &fakeProvider{sendErr: errors.New("network")}
	_, err = (&OnChainSettler{Provider: provider, From: "a"}).AttemptSettlement(context.Background(), 3, "b")
	assert.Error(t, err)
	assert.Equal(t, []string{"sign", "send"}, provider.calls)
}
