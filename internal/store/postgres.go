package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/AyushSingh012/Secret-App/internal/db"
)

const pgUniqueViolation = "23505"

// PostgresStore implements Store against the users table.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.findBy(ctx, `
		SELECT id, email, password_hash, secret, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.findBy(ctx, `
		SELECT id, email, password_hash, secret, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
}

func (s *PostgresStore) findBy(ctx context.Context, query string, arg any) (*User, error) {
	var (
		u      User
		digest sql.NullString
		secret sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Email,
		&digest,
		&secret,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: lookup user: %w", err)
	}

	if digest.Valid {
		u.Credential = LocalCredential(digest.String)
	} else {
		u.Credential = ExternalOnlyCredential()
	}
	u.Secret = secret.String

	return &u, nil
}

func (s *PostgresStore) Create(ctx context.Context, email string, cred Credential) (*User, error) {
	var digest sql.NullString
	if cred.Kind == CredentialLocal {
		digest = sql.NullString{String: cred.Digest, Valid: true}
	}

	var u User
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, created_at, updated_at
	`, email, digest).Scan(&u.ID, &u.Email, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("store: create user: %w", err)
	}

	u.Credential = cred
	return &u, nil
}

func (s *PostgresStore) UpdateSecret(ctx context.Context, id uuid.UUID, secret string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET secret = $1, updated_at = NOW()
		WHERE id = $2
	`, secret, id)
	if err != nil {
		return fmt.Errorf("store: update secret: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: update secret: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
