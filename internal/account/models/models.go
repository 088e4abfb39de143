package models

import (
	"time"

	id "accounts/pkg/domain"
)

// This file contains pure domain models for accounts: entities that should
// not depend on transport or storage concerns.

// Account is a persisted account. The store assigns ID and CreatedAt; the
// record is never mutated afterwards.
type Account struct {
	ID        id.AccountID `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Password  string       `json:"-"` // bcrypt hash
	CreatedAt time.Time    `json:"createdAt"`
}

// NewAccount is the data handed to the store for insertion.
type NewAccount struct {
	Name     string
	Email    string
	Password string // already hashed
}

// ErrorLog is a recorded server failure.
type ErrorLog struct {
	ID        id.ErrorLogID
	Trace     string
	CreatedAt time.Time
}
