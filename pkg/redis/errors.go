package redis

import "errors"

var (
	ErrNotConfigured = errors.New("redis: no connection url")
	ErrInvalidURL    = errors.New("redis: invalid connection url")
	ErrNotReady      = errors.New("redis: server not ready")
	ErrUnhealthy     = errors.New("redis: ping failed")
)
