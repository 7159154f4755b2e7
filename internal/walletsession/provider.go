package walletsession

import "context"

// Provider is an injected wallet. Connect and balance queries back the
// session; the sign/send/confirm trio exists for the on-chain settlement
// path, which nothing in the demo flow selects.
type Provider interface {
	Connect(ctx context.Context) (address string, err error)
	GetBalance(ctx context.Context, address string) (float64, error)
	SignTransaction(ctx context.Context, tx Transaction) (SignedTransaction, error)
	SendRawTransaction(ctx context.Context, raw []byte) (signature string, err error)
	ConfirmTransaction(ctx context.Context, signature string) error
}

// Transaction is a native-token transfer to be signed by the provider.
type Transaction struct {
	From   string
	To     string
	Amount float64
}

type SignedTransaction struct {
	Raw []byte
}
