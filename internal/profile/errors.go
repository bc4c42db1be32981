package profile

import "errors"

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrUnauthorized   = errors.New("profile provider rejected the access token")
	ErrUpstream       = errors.New("profile provider error")
)
