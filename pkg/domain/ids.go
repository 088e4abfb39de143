// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"fmt"

	"github.com/google/uuid"

	dErrors "accounts/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing an ErrorLogID where an AccountID is expected.
type (
	AccountID  uuid.UUID
	ErrorLogID uuid.UUID
)

// NewAccountID returns a random account identity. Only stores assign identities.
func NewAccountID() AccountID { return AccountID(uuid.New()) }

// NewErrorLogID returns a random error log identity.
func NewErrorLogID() ErrorLogID { return ErrorLogID(uuid.New()) }

// ParseAccountID parses an account ID at a trust boundary.
func ParseAccountID(s string) (AccountID, error) {
	if s == "" {
		return AccountID{}, dErrors.New(dErrors.CodeBadRequest, "account ID required")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return AccountID{}, dErrors.Wrap(err, dErrors.CodeBadRequest, fmt.Sprintf("invalid account ID: %s", s))
	}
	return AccountID(id), nil
}

func (id AccountID) String() string  { return uuid.UUID(id).String() }
func (id ErrorLogID) String() string { return uuid.UUID(id).String() }

func (id AccountID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id ErrorLogID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText lets account IDs serialize as plain UUID strings in JSON bodies.
func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the textual UUID form.
func (id *AccountID) UnmarshalText(b []byte) error {
	parsed, err := ParseAccountID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
