package controller

import "accounts/pkg/validation"

// NewSignUpValidator checks, in order: name, email, password and
// passwordConfirmation are present, the passwords match, the email is valid.
func NewSignUpValidator(checker validation.EmailChecker) *validation.Composite {
	return validation.NewComposite(
		validation.NewRequiredField("name"),
		validation.NewRequiredField("email"),
		validation.NewRequiredField("password"),
		validation.NewRequiredField("passwordConfirmation"),
		validation.NewCompareFields("password", "passwordConfirmation"),
		validation.NewEmailField("email", checker),
	)
}

// NewLoginValidator checks, in order: email and password are present, the email is valid.
func NewLoginValidator(checker validation.EmailChecker) *validation.Composite {
	return validation.NewComposite(
		validation.NewRequiredField("email"),
		validation.NewRequiredField("password"),
		validation.NewEmailField("email", checker),
	)
}
