package validation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	dErrors "accounts/pkg/domain-errors"
	"accounts/pkg/validation"
	"accounts/pkg/validation/mocks"
)

//go:generate mockgen -source=email.go -destination=mocks/email_mock.go -package=mocks EmailChecker

func TestEmailField(t *testing.T) {
	ctx := context.Background()

	t.Run("calls the checker with the field value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := mocks.NewMockEmailChecker(ctrl)
		checker.EXPECT().IsValid("any_email@email.com").Return(true, nil)

		fieldErr, err := validation.NewEmailField("email", checker).Validate(ctx, validation.Body{"email": "any_email@email.com"})
		require.NoError(t, err)
		assert.Nil(t, fieldErr)
	})

	t.Run("returns invalid field when the checker rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := mocks.NewMockEmailChecker(ctrl)
		checker.EXPECT().IsValid("any_email@email.com").Return(false, nil)

		fieldErr, err := validation.NewEmailField("email", checker).Validate(ctx, validation.Body{"email": "any_email@email.com"})
		require.NoError(t, err)
		assert.Equal(t, dErrors.InvalidField("email"), fieldErr)
	})

	t.Run("propagates checker failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := mocks.NewMockEmailChecker(ctrl)
		boom := errors.New("checker exploded")
		checker.EXPECT().IsValid(gomock.Any()).Return(false, boom)

		fieldErr, err := validation.NewEmailField("email", checker).Validate(ctx, validation.Body{"email": "any_email@email.com"})
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, fieldErr)
	})

	t.Run("passes non-string values as empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := mocks.NewMockEmailChecker(ctrl)
		checker.EXPECT().IsValid("").Return(false, nil)

		fieldErr, err := validation.NewEmailField("email", checker).Validate(ctx, validation.Body{"email": true})
		require.NoError(t, err)
		assert.Equal(t, dErrors.InvalidField("email"), fieldErr)
	})
}

func TestPlaygroundEmailChecker(t *testing.T) {
	checker := validation.NewEmailChecker()

	tests := []struct {
		email string
		want  bool
	}{
		{"john@x.com", true},
		{"first.last+tag@example.co.uk", true},
		{"", false},
		{"not-an-email", false},
		{"missing@", false},
		{strings.Repeat("a", validation.MaxEmailLength) + "@x.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			ok, err := checker.IsValid(tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
