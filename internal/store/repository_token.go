package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/agrohive/agrigate/internal/logger"
	"github.com/agrohive/agrigate/models"
)

// tokenRepository is the SQL-backed implementation of [TokenRepository].
// It owns the "tokens" table: one row per live bearer token. Deleting a
// row is the revocation primitive; authentication requires the row to
// still exist.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// SaveToken persists a newly issued token row.
func (r *tokenRepository) SaveToken(ctx context.Context, token models.Token) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(token.TableName()).
		Columns("token_id", "user_id", "created_at", "expires_at").
		Values(token.ID, token.UserID, token.CreatedAt, token.ExpiresAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.SaveToken").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.SaveToken").Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindToken resolves a token ID to its stored row.
//
// Returns [ErrTokenNotFound] when the row does not exist, which callers
// treat as "revoked or never issued".
func (r *tokenRepository) FindToken(ctx context.Context, tokenID string) (models.Token, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("token_id", "user_id", "created_at", "expires_at").
		From(models.Token{}.TableName()).
		Where(sq.Eq{"token_id": tokenID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindToken").Msg("error: building query")
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Token
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ID, &found.UserID, &found.CreatedAt, &found.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Token{}, ErrTokenNotFound
		}

		log.Err(err).Str("func", "*tokenRepository.FindToken").Msg("error: scanning error")
		return models.Token{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// DeleteToken removes exactly the row with the given token ID.
//
// Returns [ErrTokenNotFound] when no row was deleted.
func (r *tokenRepository) DeleteToken(ctx context.Context, tokenID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Token{}.TableName()).
		Where(sq.Eq{"token_id": tokenID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteToken").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteToken").Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTokenNotFound
	}

	return nil
}
