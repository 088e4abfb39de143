package controller

import (
	"context"

	"accounts/internal/account/models"
	"accounts/pkg/platform/httputil"
	"accounts/pkg/requestcontext"
	"accounts/pkg/validation"
)

// Login exchanges credentials for an access token.
type Login struct {
	base
	auth      Authenticator
	validator validation.Validator
}

func NewLogin(auth Authenticator, validator validation.Validator, opts ...Option) *Login {
	return &Login{
		base:      newBase("login", opts),
		auth:      auth,
		validator: validator,
	}
}

func (c *Login) Handle(ctx context.Context, req *Request) (resp *httputil.Response) {
	defer recoverServerError(&resp)
	body := bodyOf(req)

	fieldErr, err := c.validator.Validate(ctx, body)
	if err != nil {
		return httputil.ServerError(err)
	}
	if fieldErr != nil {
		c.logger.WarnContext(ctx, "invalid login request",
			"error", fieldErr,
			"field", fieldErr.Field,
			"request_id", requestcontext.RequestID(ctx),
		)
		return httputil.BadRequest(fieldErr)
	}

	token, err := c.auth.Authenticate(ctx, &models.AuthenticationRequest{
		Email:    field(body, "email"),
		Password: field(body, "password"),
	})
	if err != nil {
		return httputil.ServerError(err)
	}
	if token == "" {
		return httputil.Unauthorized()
	}
	return httputil.Success(models.LoginResult{AccessToken: token})
}

var _ Controller = (*Login)(nil)
