package usecasecontract

import (
	"time"
)

// IConfigProvider exposes the configuration values the usecases need.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetMediaBucket() string
	GetMediaPublicBaseURL() string
}
