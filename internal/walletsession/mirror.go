package walletsession

import (
	"fmt"
	"io"
)

// Mirror is a render target for wallet state. Every mirror is notified on
// every session change; a nil or failing entry must not stop the others.
type Mirror interface {
	RenderWallet(Session)
}

// WriterMirror renders the session as text, the terminal counterpart of the
// UI's wallet panels.
type WriterMirror struct {
	W io.Writer
}

func (m *WriterMirror) RenderWallet(s Session) {
	if m == nil || m.W == nil {
		return
	}
	fmt.Fprintf(m.W, "Wallet:   %s\n", s.ShortAddress())
	fmt.Fprintf(m.W, "Balance:  %s SOL\n", formatSOL(s.Balance))
	fmt.Fprintf(m.W, "Earnings: %s SOL\n", formatSOL(s.FeesCollected))
	if len(s.Activity) == 0 {
		fmt.Fprintln(m.W, "Activity: No activity yet")
		return
	}
	fmt.Fprintln(m.W, "Activity:")
	for _, entry := range s.Activity {
		fmt.Fprintf(m.W, "  %s\n", entry)
	}
}
