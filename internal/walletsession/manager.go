package walletsession

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/olopa-labs/olopa/internal/contracts"
)

var (
	ErrNotConnected  = errors.New("connect wallet first")
	ErrInvalidAmount = errors.New("amount must be a positive number")
)

// InsufficientBalanceError reports the deficit alongside the rejection.
type InsufficientBalanceError struct {
	Balance float64
	Amount  float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %s SOL, need %s SOL (short %s SOL)",
		formatSOL(e.Balance), formatSOL(e.Amount), formatSOL(e.Amount-e.Balance))
}

// ContractAPI submits contract records to the store.
type ContractAPI interface {
	CreateContract(ctx context.Context, draft contracts.Contract) (contracts.Contract, error)
}

type Config struct {
	Storage  Storage
	Provider Provider // nil when no wallet is injected
	API      ContractAPI
	Mirrors  []Mirror
	Rand     *rand.Rand // deterministic randomness for tests
	Settler  Settler    // overrides the per-session default when set
}

// Manager owns the session value: every transition goes through it, is
// persisted whole, and is pushed to every mirror.
type Manager struct {
	cfg     Config
	rng     *rand.Rand
	session Session
}

// NewManager loads the session from storage, creating and persisting a fresh
// one on first use.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Storage == nil {
		return nil, errors.New("walletsession: storage is required")
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sess, ok, err := cfg.Storage.Load()
	if err != nil {
		return nil, err
	}
	if !ok {
		sess = NewSession()
		if err := cfg.Storage.Save(sess); err != nil {
			return nil, err
		}
	}
	return &Manager{cfg: cfg, rng: rng, session: sess}, nil
}

// Session returns a copy of the current session value.
func (m *Manager) Session() Session {
	return m.session
}

// Connect asks the injected provider for an address and balance. Any failure
// on that path falls back to a demo session.
func (m *Manager) Connect(ctx context.Context) (Session, error) {
	if m.cfg.Provider == nil {
		return m.InitDemo()
	}

	addr, err := m.cfg.Provider.Connect(ctx)
	if err != nil {
		log.Printf("wallet connect failed, falling back to demo: %v", err)
		return m.InitDemo()
	}
	bal, err := m.cfg.Provider.GetBalance(ctx, addr)
	if err != nil {
		log.Printf("balance query failed, falling back to demo: %v", err)
		return m.InitDemo()
	}

	next := m.session.
		WithConnection(addr, bal, true).
		WithActivity("Wallet connected: " + addr)
	return next, m.commit(next)
}

// InitDemo synthesizes a local wallet. No-op when already connected.
func (m *Manager) InitDemo() (Session, error) {
	if m.session.Connected() {
		return m.session, nil
	}

	addr := "Demo_" + randToken(m.rng, 7)
	bal := float64(10 + m.rng.Intn(40))
	next := m.session.
		WithConnection(addr, bal, false).
		WithActivity(fmt.Sprintf("Demo wallet created with %s SOL", formatSOL(bal)))
	return next, m.commit(next)
}

// RefreshBalance re-queries the provider and overwrites the stored balance.
// Failures are logged and swallowed; the session never changes state here.
func (m *Manager) RefreshBalance(ctx context.Context) Session {
	if !m.session.HasProvider || m.cfg.Provider == nil || !m.session.Connected() {
		return m.session
	}
	bal, err := m.cfg.Provider.GetBalance(ctx, m.session.Address)
	if err != nil {
		log.Printf("failed to refresh balance: %v", err)
		return m.session
	}
	next := m.session.WithBalance(bal)
	if err := m.commit(next); err != nil {
		log.Printf("failed to persist refreshed balance: %v", err)
	}
	return m.session
}

// CreateContract validates the request, settles funding through the session's
// settlement strategy, and submits the record. The session mutation is only
// persisted once the store acknowledges the create; a failed submission
// leaves the local session untouched.
func (m *Manager) CreateContract(ctx context.Context, title, description string, amount float64) (contracts.Contract, error) {
	if !m.session.Connected() {
		return contracts.Contract{}, ErrNotConnected
	}
	if amount <= 0 {
		return contracts.Contract{}, ErrInvalidAmount
	}
	if amount > m.session.Balance {
		return contracts.Contract{}, &InsufficientBalanceError{Balance: m.session.Balance, Amount: amount}
	}
	if m.cfg.API == nil {
		return contracts.Contract{}, errors.New("contract API not configured")
	}

	settlement, err := m.settler().AttemptSettlement(ctx, amount, "")
	if err != nil {
		return contracts.Contract{}, err
	}

	next := m.session
	if settlement.Debit > 0 {
		next = next.WithDebit(settlement.Debit)
	}
	next = next.WithActivity(settlement.Activity)

	created, err := m.cfg.API.CreateContract(ctx, contracts.Contract{
		Title:                title,
		Description:          description,
		Employer:             m.session.Address,
		Amount:               amount,
		TransactionSignature: settlement.TransactionSignature,
		EscrowAddress:        settlement.EscrowAddress,
		Status:               settlement.Status,
	})
	if err != nil {
		return contracts.Contract{}, err
	}

	if err := m.commit(next); err != nil {
		return created, err
	}
	return created, nil
}

func (m *Manager) settler() Settler {
	if m.cfg.Settler != nil {
		return m.cfg.Settler
	}
	if m.session.HasProvider {
		return &SimulatedSettler{Rand: m.rng}
	}
	return &DemoLedgerSettler{Rand: m.rng}
}

// commit persists the new session value and fans it out to the mirrors.
func (m *Manager) commit(next Session) error {
	m.session = next
	err := m.cfg.Storage.Save(next)
	m.notify(next)
	return err
}

func (m *Manager) notify(s Session) {
	for _, mirror := range m.cfg.Mirrors {
		if mirror == nil {
			continue
		}
		mirror.RenderWallet(s)
	}
}
