package controller

import (
	"context"

	"accounts/internal/account/models"
	"accounts/pkg/platform/httputil"
	"accounts/pkg/requestcontext"
	"accounts/pkg/validation"
)

// SignUp creates an account. The success body is the persisted account.
type SignUp struct {
	base
	accounts  AccountAdder
	validator validation.Validator
}

func NewSignUp(accounts AccountAdder, validator validation.Validator, opts ...Option) *SignUp {
	return &SignUp{
		base:      newBase("signup", opts),
		accounts:  accounts,
		validator: validator,
	}
}

func (c *SignUp) Handle(ctx context.Context, req *Request) (resp *httputil.Response) {
	defer recoverServerError(&resp)
	body := bodyOf(req)

	fieldErr, err := c.validator.Validate(ctx, body)
	if err != nil {
		return httputil.ServerError(err)
	}
	if fieldErr != nil {
		c.logger.WarnContext(ctx, "invalid signup request",
			"error", fieldErr,
			"field", fieldErr.Field,
			"request_id", requestcontext.RequestID(ctx),
		)
		return httputil.BadRequest(fieldErr)
	}

	account, err := c.accounts.AddAccount(ctx, &models.AddAccountRequest{
		Name:     field(body, "name"),
		Email:    field(body, "email"),
		Password: field(body, "password"),
	})
	if err != nil {
		return httputil.ServerError(err)
	}
	return httputil.Success(account)
}

var _ Controller = (*SignUp)(nil)
