package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/fastaxi/dispatch/internal/pkg/models"
)

// InitConfig loads configuration from an optional env file and the process
// environment. Environment variables always win over file values.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "dispatch")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "dispatch")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_LOOKUPD_ADDRESS", "")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "fastaxi-dispatch")
	v.SetDefault("JWT_EXPIRATION", 1440)

	v.SetDefault("MATCH_SEARCH_RADIUS_KM", 5.0)
	v.SetDefault("MATCH_MAX_CANDIDATES", 10)

	v.SetDefault("RIDES_EXPIRY_TIMEOUT_SEC", 300)
	v.SetDefault("RIDES_SWEEP_INTERVAL_SEC", 30)

	v.SetDefault("LEDGER_POINTS_PER_KM", 10)
	v.SetDefault("LEDGER_REGISTER_BONUS", 100)
	v.SetDefault("LEDGER_HISTORY_PAGE_MAX", 100)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")

	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.LookupdAddress = v.GetString("NSQ_LOOKUPD_ADDRESS")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")

	configs.Match.SearchRadiusKm = v.GetFloat64("MATCH_SEARCH_RADIUS_KM")
	configs.Match.MaxCandidates = v.GetInt("MATCH_MAX_CANDIDATES")

	configs.Rides.ExpiryTimeoutSec = v.GetInt("RIDES_EXPIRY_TIMEOUT_SEC")
	configs.Rides.SweepIntervalSec = v.GetInt("RIDES_SWEEP_INTERVAL_SEC")

	configs.Ledger.PointsPerKm = v.GetInt("LEDGER_POINTS_PER_KM")
	configs.Ledger.RegisterBonus = v.GetInt("LEDGER_REGISTER_BONUS")
	configs.Ledger.HistoryPageMax = v.GetInt("LEDGER_HISTORY_PAGE_MAX")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
