package config

import "time"

const (
	defaultTokenIssuer          = "go-accounts"
	defaultLogLevel             = "info"
	defaultTokenDuration        = 23 * time.Hour
	defaultPasswordHashCost     = 10
	defaultHTTPAddress          = "localhost:3000"
	defaultRequestTimeout       = 30 * time.Second
	defaultAvatarDir            = "public/avatars"
	defaultSMTPPort             = 465
	defaultVerifyResendInterval = time.Minute
	defaultVerifyResendBurst    = 3
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
			BaseURL:          "http://" + defaultHTTPAddress,
		},
		Storage: Storage{
			Files: Files{AvatarDir: defaultAvatarDir},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			Mail: Mail{SMTPPort: defaultSMTPPort},
		},
		Limits: Limits{
			VerifyResendInterval: defaultVerifyResendInterval,
			VerifyResendBurst:    defaultVerifyResendBurst,
		},
	}
}
