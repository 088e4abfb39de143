package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "cli-test-key")
	t.Setenv("JWT_ISSUER", "accounts-cli")
	accountID := uuid.NewString()

	var out bytes.Buffer
	require.NoError(t, run([]string{"issue", "-env", "", "-account-id", accountID, "-json"}, &out))

	var issued tokenOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &issued))
	assert.Equal(t, accountID, issued.AccountID)
	assert.NotEmpty(t, issued.Token)

	out.Reset()
	require.NoError(t, run([]string{"verify", "-env", "", "-token", issued.Token}, &out))
	assert.Contains(t, out.String(), accountID)
	assert.Contains(t, out.String(), "accounts-cli")
}

func TestIssueRequiresSigningKey(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "")

	err := run([]string{"issue", "-env", ""}, &bytes.Buffer{})
	require.ErrorContains(t, err, "JWT_SIGNING_KEY")
}

func TestUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"rotate"}, &out)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "Usage"))
}

func TestIssueRejectsMalformedAccountID(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "cli-test-key")

	err := run([]string{"issue", "-env", "", "-account-id", "not-a-uuid"}, &bytes.Buffer{})
	require.ErrorContains(t, err, "invalid account ID")
}
