package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "accounts/pkg/domain-errors"
)

func TestParseAccountID(t *testing.T) {
	t.Run("parses a valid uuid", func(t *testing.T) {
		raw := uuid.New()
		id, err := ParseAccountID(raw.String())
		require.NoError(t, err)
		assert.Equal(t, AccountID(raw), id)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ParseAccountID("")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := ParseAccountID("not-a-uuid")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func TestAccountIDJSON(t *testing.T) {
	id := NewAccountID()
	b, err := json.Marshal(struct {
		ID AccountID `json:"id"`
	}{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+id.String()+`"}`, string(b))

	var decoded struct {
		ID AccountID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, id, decoded.ID)
}

func TestIsNil(t *testing.T) {
	assert.True(t, AccountID{}.IsNil())
	assert.False(t, NewAccountID().IsNil())
	assert.True(t, ErrorLogID{}.IsNil())
	assert.False(t, NewErrorLogID().IsNil())
}
