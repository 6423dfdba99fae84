package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrUserEmailNotUnique      = errors.New("a user with this email address already exists")
	ErrPreferenceNameNotUnique = errors.New("this preference already exists for the user")
	ErrCurrencyCodeNotUnique   = errors.New("the currency code must be unique per user group")
)
