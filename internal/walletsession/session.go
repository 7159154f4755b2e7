// Package walletsession holds the client-side wallet session: a single value
// persisted whole to durable storage and mutated only through transitions that
// return a new value. The Manager owns persistence and mirror fan-out.
package walletsession

import "strconv"

type State string

const (
	StateDisconnected      State = "disconnected"
	StateDemoConnected     State = "demo-connected"
	StateProviderConnected State = "provider-connected"
)

// Session is the wallet session value. JSON keys match the legacy client
// storage format so an existing stored session keeps loading.
type Session struct {
	Address       string   `json:"addr"`
	Balance       float64  `json:"bal"`
	FeesCollected float64  `json:"feesCollected"`
	Activity      []string `json:"activity"`
	HasProvider   bool     `json:"isPhantom"`
}

func NewSession() Session {
	return Session{Activity: []string{}}
}

func (s Session) Connected() bool { return s.Address != "" }

func (s Session) State() State {
	switch {
	case s.Address == "":
		return StateDisconnected
	case s.HasProvider:
		return StateProviderConnected
	default:
		return StateDemoConnected
	}
}

// WithConnection transitions to a connected state.
func (s Session) WithConnection(address string, balance float64, provider bool) Session {
	s.Address = address
	s.Balance = balance
	s.HasProvider = provider
	return s
}

// WithBalance overwrites the balance, e.g. after a provider re-query.
func (s Session) WithBalance(balance float64) Session {
	s.Balance = balance
	return s
}

// WithDebit subtracts amount from the balance.
func (s Session) WithDebit(amount float64) Session {
	s.Balance -= amount
	return s
}

// WithActivity prepends an entry; the log is most-recent-first. The slice is
// copied so earlier Session values stay untouched.
func (s Session) WithActivity(entry string) Session {
	activity := make([]string, 0, len(s.Activity)+1)
	activity = append(activity, entry)
	activity = append(activity, s.Activity...)
	s.Activity = activity
	return s
}

// ShortAddress renders the address for compact displays.
func (s Session) ShortAddress() string {
	if s.Address == "" {
		return "Not connected"
	}
	if len(s.Address) > 15 {
		return s.Address[:6] + "..." + s.Address[len(s.Address)-4:]
	}
	return s.Address
}

// formatSOL prints amounts without trailing zeros, the way the UI shows them.
func formatSOL(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
