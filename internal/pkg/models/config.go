package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Logger   LoggerConfig
	Gateway  GatewayConfig
	Premium  PremiumConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address      string
	SettledTopic string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// GatewayConfig contains payment gateway configuration.
//
// The status vocabulary a gateway uses for "funds captured" differs between
// gateways and between gateway versions, so SettledStatuses is configuration
// rather than code. The same applies to ResponseURLPaths: the JSON path the
// payment URL appears at has drifted across gateway API versions, and the
// ordered candidate list is probed first-match-wins.
type GatewayConfig struct {
	Provider         string   `mapstructure:"provider"`
	BaseURL          string   `mapstructure:"base_url"`
	PaymentPath      string   `mapstructure:"payment_path"`
	ClientID         string   `mapstructure:"client_id"`
	SecretKey        string   `mapstructure:"secret_key"`
	ServerKey        string   `mapstructure:"server_key"`
	CallbackURL      string   `mapstructure:"callback_url"`
	Production       bool     `mapstructure:"production"`
	TimeoutSeconds   int      `mapstructure:"timeout_seconds"`
	SettledStatuses  []string `mapstructure:"settled_statuses"`
	ResponseURLPaths []string `mapstructure:"response_url_paths"`
}

// IsSettled reports whether a gateway status string means funds were captured
func (g GatewayConfig) IsSettled(status string) bool {
	for _, s := range g.SettledStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// PremiumConfig contains premium subscription configuration
type PremiumConfig struct {
	PlanDays int
}
