package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrMissingField    = goerr.New("required field is missing")
	ErrNoFile          = goerr.New("no file was uploaded")
	ErrColumnNotFound  = goerr.New("required column not found")
	ErrProjectNotFound = goerr.New("project not found")
	ErrNoWorkbooks     = goerr.New("no workbooks found in project")
)
