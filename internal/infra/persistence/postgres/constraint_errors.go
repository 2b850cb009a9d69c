package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation detects duplicate keys, whether or not the
// dialector translated the driver error.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "sqlstate 23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "sqlstate 23503")
}
