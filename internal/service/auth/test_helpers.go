package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time function.
// Only for use in tests; production code constructs the service from
// configuration via NewJWTService.
func NewTestJWTService(secret string, tokenLifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
