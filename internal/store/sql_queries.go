// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-keeper/models"
)

const accountsTable = "accounts"

// accountColumns is the column order shared by every SELECT and scanAccount.
var accountColumns = []string{
	"id",
	"name",
	"email",
	"password",
	"status",
	"last_login",
	"created_at",
	"verification_token",
}

// buildSelectAccountsQuery selects full account rows matching where,
// ordered by id. A nil where selects every account.
func buildSelectAccountsQuery(b sq.StatementBuilderType, where sq.Sqlizer, limit uint64) (string, []any, error) {
	query := b.Select(accountColumns...).From(accountsTable)
	if where != nil {
		query = query.Where(where)
	}
	query = query.OrderBy("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	return toSQL(query)
}

func buildExistsByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return toSQL(b.Select("COUNT(1)").From(accountsTable).Where(sq.Eq{"email": email}))
}

func buildInsertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query := b.Insert(accountsTable).
		Columns("name", "email", "password", "status", "last_login", "created_at", "verification_token").
		Values(account.Name, account.Email, account.Password, string(account.Status), account.LastLogin, account.CreatedAt, account.VerificationToken).
		Suffix("RETURNING id")

	return toSQL(query)
}

func buildUpdateLastLoginQuery(b sq.StatementBuilderType, id int64, at time.Time) (string, []any, error) {
	return toSQL(b.Update(accountsTable).Set("last_login", at).Where(sq.Eq{"id": id}))
}

// buildConsumeVerificationTokenQuery clears the token and activates the
// account in one statement, so only one caller can match a given token.
func buildConsumeVerificationTokenQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	query := b.Update(accountsTable).
		Set("verification_token", sq.Expr("NULL")).
		Set("status", string(models.StatusActive)).
		Where(sq.Eq{"verification_token": token}).
		Suffix("RETURNING id")

	return toSQL(query)
}

func buildSetStatusQuery(b sq.StatementBuilderType, ids []int64, status models.AccountStatus) (string, []any, error) {
	query := b.Update(accountsTable).
		Set("status", string(status)).
		Where(sq.Eq{"id": ids}).
		Suffix("RETURNING id")

	return toSQL(query)
}

// buildUnblockQuery decides the restored status from the token column at
// write time, not from a previously read row.
func buildUnblockQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	query := b.Update(accountsTable).
		Set("status", sq.Expr(
			"CASE WHEN verification_token IS NOT NULL AND verification_token <> '' THEN ? ELSE ? END",
			string(models.StatusUnverified), string(models.StatusActive),
		)).
		Where(sq.Eq{"id": ids}).
		Suffix("RETURNING id")

	return toSQL(query)
}

func buildDeleteAccountsQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	return toSQL(b.Delete(accountsTable).Where(sq.Eq{"id": ids}).Suffix("RETURNING id"))
}

func buildDeleteUnverifiedQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	query := b.Delete(accountsTable).
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"status": string(models.StatusUnverified)}).
		Suffix("RETURNING id")

	return toSQL(query)
}

func buildDeleteStaleUnverifiedQuery(b sq.StatementBuilderType, createdBefore time.Time) (string, []any, error) {
	query := b.Delete(accountsTable).
		Where(sq.Eq{"status": string(models.StatusUnverified)}).
		Where(sq.Lt{"created_at": createdBefore}).
		Suffix("RETURNING id")

	return toSQL(query)
}

func toSQL(s sq.Sqlizer) (string, []any, error) {
	query, args, err := s.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Password,
		&account.Status,
		&account.LastLogin,
		&account.CreatedAt,
		&account.VerificationToken,
	)
	return account, err
}
