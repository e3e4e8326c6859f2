package postgres

import (
	"strings"

	"catalogsync/internal/errors"

	"gorm.io/gorm"
)

// isCheckConstraintViolation reports a rejected row, either translated by GORM
// or raw from the driver (SQLSTATE 23514).
func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") || strings.Contains(errMsg, "23514")
}

// isNotNullConstraintViolation reports a missing required column (SQLSTATE 23502).
func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null") || strings.Contains(errMsg, "23502")
}
