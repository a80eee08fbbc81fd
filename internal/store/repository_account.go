// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

// accountRepository is the database/sql implementation of [AccountRepository].
// It works with both supported dialects; placeholders and error codes come
// from the embedded [*DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *accountRepository) FindByID(ctx context.Context, id int64) (models.Account, error) {
	return r.findOne(ctx, "accountRepository.FindByID", sq.Eq{"id": id})
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, "accountRepository.FindByEmail", sq.Eq{"email": email})
}

// findOne returns the single account matching where or [ErrAccountNotFound].
func (r *accountRepository) findOne(ctx context.Context, funcName string, where sq.Sqlizer) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(r.builder, where, 1)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.Account{}, err
	}

	account, err := scanAccount(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("classification", r.errorClassificator.Classify(err).String()).
			Msg("failed to fetch account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// List returns every account ordered by ascending id.
func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	return r.findMany(ctx, "accountRepository.List", nil)
}

func (r *accountRepository) findMany(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(r.builder, where, 0)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		accounts = append(accounts, account)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return accounts, nil
}

func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsByEmailQuery(r.builder, email)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ExistsByEmail").Msg("failed to build query")
		return false, err
	}

	var count int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "accountRepository.ExistsByEmail").Msg("failed to execute query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// Create inserts account and returns it with the server-assigned ID.
//
// Error handling:
//   - unique violation on ix_accounts_email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.builder, account)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to build query")
		return models.Account{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			log.Warn().Str("func", "accountRepository.Create").Msg("email already registered")
			return models.Account{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "accountRepository.Create").Int64("account_id", account.ID).Msg("account created")
	return account, nil
}

// UpdateLastLogin writes last_login only, leaving status and token to
// whatever concurrent operations committed.
func (r *accountRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLastLoginQuery(r.builder, id, at)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.UpdateLastLogin").Msg("failed to build query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.UpdateLastLogin").Int64("account_id", id).Msg("failed to update last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) ConsumeVerificationToken(ctx context.Context, token string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildConsumeVerificationTokenQuery(r.builder, token)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ConsumeVerificationToken").Msg("failed to build query")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.ConsumeVerificationToken").
			Str("classification", r.errorClassificator.Classify(err).String()).
			Msg("failed to consume verification token")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// SetStatus updates the status column of all ids in a single statement.
func (r *accountRepository) SetStatus(ctx context.Context, ids []int64, status models.AccountStatus) ([]int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []int64{}, nil
	}

	query, args, err := buildSetStatusQuery(r.builder, ids, status)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.SetStatus").Msg("failed to build query")
		return nil, err
	}

	updated, err := collectIDs(r.DB.QueryContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.SetStatus").
			Str("status", string(status)).
			Msg("failed to update account status")
		return nil, err
	}

	log.Debug().
		Str("func", "accountRepository.SetStatus").
		Str("status", string(status)).
		Int("requested", len(ids)).
		Int("updated", len(updated)).
		Msg("account status updated")

	return updated, nil
}

func (r *accountRepository) Unblock(ctx context.Context, ids []int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []int64{}, nil
	}

	query, args, err := buildUnblockQuery(r.builder, ids)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Unblock").Msg("failed to build query")
		return nil, err
	}

	updated, err := collectIDs(r.DB.QueryContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Unblock").Msg("failed to unblock accounts")
		return nil, err
	}

	return updated, nil
}

// DeleteMany removes the given ids in one transaction and returns the ids
// that were actually deleted.
func (r *accountRepository) DeleteMany(ctx context.Context, ids []int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []int64{}, nil
	}

	query, args, err := buildDeleteAccountsQuery(r.builder, ids)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.DeleteMany").Msg("failed to build query")
		return nil, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.DeleteMany").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	deleted, err := collectIDs(tx.QueryContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "accountRepository.DeleteMany").Msg("failed to delete accounts")
		return nil, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "accountRepository.DeleteMany").Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "accountRepository.DeleteMany").
		Int("requested", len(ids)).
		Int("deleted", len(deleted)).
		Msg("accounts deleted")

	return deleted, nil
}

// DeleteUnverified removes, in a single statement, those of ids whose status
// is still unverified.
func (r *accountRepository) DeleteUnverified(ctx context.Context, ids []int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []int64{}, nil
	}

	query, args, err := buildDeleteUnverifiedQuery(r.builder, ids)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.DeleteUnverified").Msg("failed to build query")
		return nil, err
	}

	deleted, err := collectIDs(r.DB.QueryContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "accountRepository.DeleteUnverified").Msg("failed to delete unverified accounts")
		return nil, err
	}

	return deleted, nil
}

func (r *accountRepository) DeleteStaleUnverified(ctx context.Context, createdBefore time.Time) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteStaleUnverifiedQuery(r.builder, createdBefore)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.DeleteStaleUnverified").Msg("failed to build query")
		return nil, err
	}

	deleted, err := collectIDs(r.DB.QueryContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.DeleteStaleUnverified").
			Time("created_before", createdBefore).
			Msg("failed to delete stale accounts")
		return nil, err
	}

	return deleted, nil
}

// collectIDs drains a RETURNING id result set.
func collectIDs(rows *sql.Rows, err error) ([]int64, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ids, nil
}
