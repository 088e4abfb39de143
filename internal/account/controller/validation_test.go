package controller_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"accounts/internal/account/controller"
	dErrors "accounts/pkg/domain-errors"
	"accounts/pkg/validation"
	validationmocks "accounts/pkg/validation/mocks"
)

func TestSignUpValidatorOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		body validation.Body
		want *dErrors.Error
	}{
		{"everything missing reports name", validation.Body{}, dErrors.MissingField("name")},
		{"email before password", validation.Body{"name": "John"}, dErrors.MissingField("email")},
		{"password before confirmation", validation.Body{"name": "John", "email": "bad"}, dErrors.MissingField("password")},
		{"confirmation required", validation.Body{"name": "John", "email": "bad", "password": "p"}, dErrors.MissingField("passwordConfirmation")},
		{
			"mismatch before email syntax",
			validation.Body{"name": "John", "email": "bad", "password": "p", "passwordConfirmation": "q"},
			dErrors.InvalidField("passwordConfirmation"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			checker := validationmocks.NewMockEmailChecker(ctrl)
			checker.EXPECT().IsValid(gomock.Any()).Times(0)

			fieldErr, err := controller.NewSignUpValidator(checker).Validate(ctx, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fieldErr)
		})
	}

	t.Run("email syntax checked last", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := validationmocks.NewMockEmailChecker(ctrl)
		checker.EXPECT().IsValid("bad").Return(false, nil)

		body := validation.Body{"name": "John", "email": "bad", "password": "p", "passwordConfirmation": "p"}
		fieldErr, err := controller.NewSignUpValidator(checker).Validate(ctx, body)
		require.NoError(t, err)
		assert.Equal(t, dErrors.InvalidField("email"), fieldErr)
	})
}

func TestLoginValidatorWithRealChecker(t *testing.T) {
	v := controller.NewLoginValidator(validation.NewEmailChecker())
	ctx := context.Background()

	fieldErr, err := v.Validate(ctx, validation.Body{"email": "john@x.com", "password": "p"})
	require.NoError(t, err)
	assert.Nil(t, fieldErr)

	fieldErr, err = v.Validate(ctx, validation.Body{"email": "john", "password": "p"})
	require.NoError(t, err)
	assert.Equal(t, dErrors.InvalidField("email"), fieldErr)

	fieldErr, err = v.Validate(ctx, validation.Body{"email": "john@x.com"})
	require.NoError(t, err)
	assert.Equal(t, dErrors.MissingField("password"), fieldErr)
}
