// Package postgres is the pgx-backed document store used when a database
// is configured.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olopa-labs/olopa/internal/contracts"
	"github.com/olopa-labs/olopa/internal/store"
	"github.com/olopa-labs/olopa/internal/user"
)

type Store struct{ DB *pgxpool.Pool }

func New(db *pgxpool.Pool) *Store { return &Store{DB: db} }

const uniqueViolation = "23505"

func (s *Store) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	u.ID = uuid.New().String()
	err := s.DB.QueryRow(ctx, `
        INSERT INTO users (id, name, email, password, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at
    `, u.ID, u.Name, u.Email, u.Password, u.Role).Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.User{}, store.ErrDuplicateEmail
		}
		return user.User{}, err
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return s.scanUser(s.DB.QueryRow(ctx, `
        SELECT id, name, email, password, role, created_at
        FROM users WHERE email = $1
    `, email))
}

func (s *Store) GetUserByID(ctx context.Context, id string) (user.User, error) {
	return s.scanUser(s.DB.QueryRow(ctx, `
        SELECT id, name, email, password, role, created_at
        FROM users WHERE id = $1
    `, id))
}

func (s *Store) scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, store.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := s.DB.Query(ctx, `
        SELECT id, name, email, password, role, created_at
        FROM users ORDER BY created_at, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) CreateContract(ctx context.Context, ct contracts.Contract) (contracts.Contract, error) {
	if ct.Status == "" {
		ct.Status = contracts.StatusCreated
	}
	now := time.Now()
	ct.ID = uuid.New().String()
	ct.CreatedAt = now
	ct.UpdatedAt = now
	_, err := s.DB.Exec(ctx, `
        INSERT INTO contracts
            (id, title, description, employer, freelancer, amount,
             transaction_signature, escrow_address, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, ct.ID, ct.Title, ct.Description, ct.Employer, ct.Freelancer, ct.Amount,
		ct.TransactionSignature, ct.EscrowAddress, ct.Status, ct.CreatedAt, ct.UpdatedAt)
	if err != nil {
		return contracts.Contract{}, err
	}
	return ct, nil
}

// ListContracts returns contracts in insertion order via the seq column;
// created_at alone can tie within a millisecond.
func (s *Store) ListContracts(ctx context.Context) ([]contracts.Contract, error) {
	rows, err := s.DB.Query(ctx, `
        SELECT id, title, description, employer, freelancer, amount,
               transaction_signature, escrow_address, status, created_at, updated_at
        FROM contracts ORDER BY seq
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []contracts.Contract
	for rows.Next() {
		var ct contracts.Contract
		if err := rows.Scan(&ct.ID, &ct.Title, &ct.Description, &ct.Employer,
			&ct.Freelancer, &ct.Amount, &ct.TransactionSignature,
			&ct.EscrowAddress, &ct.Status, &ct.CreatedAt, &ct.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}
