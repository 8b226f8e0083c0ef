package config

import "time"

// Built-in defaults applied after every other source.
const (
	DefaultHTTPAddress            = "localhost:8080"
	DefaultTokenIssuer            = "fin-simulator"
	DefaultTokenDuration          = 60 * time.Minute
	DefaultPasswordHashIterations = 29000
	DefaultRequestTimeout         = 10 * time.Second
	DefaultAuthRateLimit          = 5
	DefaultAuthRateBurst          = 10
	DefaultSessionCheckInterval   = 30 * time.Second
	DefaultClientSessionDSN       = "fin-simulator-session.db"
	DefaultVersion                = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:            DefaultTokenIssuer,
			TokenDuration:          DefaultTokenDuration,
			PasswordHashIterations: DefaultPasswordHashIterations,
			Version:                DefaultVersion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AuthRateLimit:  DefaultAuthRateLimit,
			AuthRateBurst:  DefaultAuthRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			SessionCheckInterval: DefaultSessionCheckInterval,
		},
	}
}
