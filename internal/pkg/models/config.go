package models

// Config is the root configuration for the dispatch service
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Match    MatchConfig
	Rides    RidesConfig
	Ledger   LedgerConfig
	Logger   LoggerConfig
}

// AppConfig holds application identity settings
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ daemon addresses
type NSQConfig struct {
	Address        string
	LookupdAddress string
}

// JWTConfig holds driver session token settings
type JWTConfig struct {
	Secret     string
	Issuer     string
	Expiration int // minutes
}

// MatchConfig holds dispatch matching settings
type MatchConfig struct {
	SearchRadiusKm float64
	MaxCandidates  int
}

// RidesConfig holds ride lifecycle settings
type RidesConfig struct {
	ExpiryTimeoutSec int
	SweepIntervalSec int
}

// LedgerConfig holds points ledger settings
type LedgerConfig struct {
	PointsPerKm    int
	RegisterBonus  int
	HistoryPageMax int
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level    string
	FilePath string
}
