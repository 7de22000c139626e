package models

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate means an insert lost the race against the
	// case-insensitive unique name constraint. Handlers answer 422.
	ErrDuplicate = errors.New("possible duplicate")

	ErrNotFound = errors.New("record not found")
)

const mysqlDuplicateEntry = 1062

// IsDuplicateEntry reports whether err is a unique-constraint violation.
func IsDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
