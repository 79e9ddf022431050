package user

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAdminNotFound      = errors.New("admin user not found")
	ErrInvalidInput       = errors.New("invalid admin user input")
)
