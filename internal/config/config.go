package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConf struct {
	Env  string
	Port int
}

type MongoConf struct {
	URI      string
	Database string
}

type RedisConf struct {
	Addr     string
	Password string
	DB       int
}

type StorageConf struct {
	Root string
}

type WorkerConf struct {
	Count int
}

type Config struct {
	App     AppConf
	Mongo   MongoConf
	Redis   RedisConf
	Storage StorageConf
	Worker  WorkerConf

	// derived
	SessionTTL time.Duration
}

// Load builds the configuration from the environment. Every key has a
// working default so the service starts against local backends with no
// environment at all. A .env file in the working directory is honored.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 5000)
	v.SetDefault("MONGO_URI", "mongodb://127.0.0.1:27017")
	v.SetDefault("MONGO_DB", "files_manager")
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("FILES_PATH", "/tmp/files_manager")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("WORKER_COUNT", 1)

	cfg := &Config{
		App: AppConf{
			Env:  v.GetString("APP_ENV"),
			Port: v.GetInt("PORT"),
		},
		Mongo: MongoConf{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DB"),
		},
		Redis: RedisConf{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Storage: StorageConf{
			Root: v.GetString("FILES_PATH"),
		},
		Worker: WorkerConf{
			Count: v.GetInt("WORKER_COUNT"),
		},
	}
	if cfg.Worker.Count < 1 {
		cfg.Worker.Count = 1
	}
	ttlHours := v.GetInt("SESSION_TTL_HOURS")
	if ttlHours <= 0 {
		ttlHours = 24
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	return cfg, nil
}
