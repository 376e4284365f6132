package utils

import "errors"

var (
	ErrEmptyAIResponse = errors.New("ai response contained no usable text")
	ErrMissingAPIKey   = errors.New("missing api key")
)
