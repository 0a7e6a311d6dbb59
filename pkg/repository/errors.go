package repository

import "github.com/m-mizutani/goerr/v2"

var (
	ErrNotFound      = goerr.New("not found")
	ErrInvalidInput  = goerr.New("invalid input")
	ErrAlreadyExists = goerr.New("already exists")
)
