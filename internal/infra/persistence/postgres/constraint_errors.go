package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fall back to PostgreSQL error text when the dialector does not
	// translate the error (SQLSTATE 23505 is unique_violation).
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23505") ||
		strings.Contains(errMsg, "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	// SQLSTATE 23503 is foreign_key_violation.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23503") ||
		strings.Contains(errMsg, "violates foreign key constraint")
}
