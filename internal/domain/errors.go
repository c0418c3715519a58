package domain

import "errors"

var (
	ErrPhotoNotFound        = errors.New("photo not found")
	ErrSourceUnavailable    = errors.New("photo source unavailable")
	ErrNoMetadata           = errors.New("no metadata")
	ErrUnsupportedImage     = errors.New("unsupported image")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrStoreNotConfigured   = errors.New("photo store not configured")
	ErrPublishNotConfigured = errors.New("publishing not configured")
)
