package db

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a Postgres pool and makes sure the schema is in place.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Println("Connected to Postgres successfully")

	ensureUsersTable(ctx, pool)
	ensureContractsTable(ctx, pool)
	return pool, nil
}

// ensureUsersTable creates the users table if missing
func ensureUsersTable(ctx context.Context, pool *pgxpool.Pool) {
	_, err := pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            role TEXT NOT NULL CHECK (role IN ('freelancer','employer')),
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        )`)
	if err != nil {
		log.Printf("failed to ensure users table: %v", err)
	}
}

// ensureContractsTable creates the contracts table if missing. seq preserves
// insertion order for listing.
func ensureContractsTable(ctx context.Context, pool *pgxpool.Pool) {
	_, err := pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS contracts (
            seq BIGSERIAL,
            id UUID PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT,
            employer TEXT NOT NULL,
            freelancer TEXT,
            amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
            transaction_signature TEXT,
            escrow_address TEXT,
            status TEXT NOT NULL DEFAULT 'created' CHECK (status IN (
                'created', 'simulated', 'funded', 'pending', 'active',
                'completed', 'cancelled'
            )),
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        );
        CREATE INDEX IF NOT EXISTS idx_contracts_seq ON contracts(seq);
    `)
	if err != nil {
		log.Printf("failed to ensure contracts table: %v", err)
	}
}
