package service

import (
	"database/sql"

	"gorm.io/gorm"
)

// Transactor runs a function inside a database transaction, rolling back when
// it returns an error. *gorm.DB satisfies this interface directly; tests
// substitute an in-memory implementation.
type Transactor interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
