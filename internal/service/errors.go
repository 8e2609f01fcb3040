package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrImageTooLarge        = errors.New("image is too large")
	ErrUnsupportedImageType = errors.New("unsupported image type")

	ErrRegisterOnServer  = errors.New("registration on server failed")
	ErrLoginOnServer     = errors.New("login on server failed")
	ErrRecordNotFound    = errors.New("record not found")
	ErrServerUnavailable = errors.New("server unavailable")
)
