package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Backend       BackendConfig
	Slack         SlackConfig
	Razorpay      RazorpayConfig
	Turso         TursoConfig
	ProjectID     string
}

type BackendConfig struct {
	BaseURL string
	APIKey  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type RazorpayConfig struct {
	KeyID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
