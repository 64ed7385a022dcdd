package repository

import (
	"errors"
	"fmt"

	"go-pos-ledger/internal/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes
const (
	pgUniqueViolation   = "23505"
	pgNumericOutOfRange = "22003"
)

// translateError maps storage errors onto the apperrors taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", apperrors.ErrUniquenessViolation, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrUniquenessViolation, pgErr.ConstraintName)
		case pgNumericOutOfRange:
			return fmt.Errorf("%w: %s", apperrors.ErrDomainConstraint, pgErr.Message)
		}
	}
	return err
}

// affected turns a write that matched no rows into ErrNotFound.
func affected(result *gorm.DB) error {
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func containsPattern(s string) string {
	return "%" + s + "%"
}
