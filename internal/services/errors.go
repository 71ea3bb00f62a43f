package services

import "errors"

// ErrMissingAddress is returned when a geocode request has no address
var ErrMissingAddress = errors.New("missing address parameter")
