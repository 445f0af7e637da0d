package service

import (
	"database/sql"

	"gorm.io/gorm"
)

// TxRunner is the one method of *gorm.DB the services need to scope a
// mutation to a single store transaction. Kept as an interface so the
// services can be exercised against fake repositories in tests.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
