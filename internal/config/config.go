package config

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Storage struct {
		// Driver selects the collection medium: file, redis or postgres.
		Driver  string `mapstructure:"driver"`
		DataDir string `mapstructure:"data_dir"`
	} `mapstructure:"storage"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
	} `mapstructure:"auth"`
	Assist struct {
		// Provider selects the text-generation backend: gemini, ollama or
		// empty to disable assist endpoints.
		Provider     string `mapstructure:"provider"`
		GeminiAPIKey string `mapstructure:"gemini_api_key"`
		GeminiModel  string `mapstructure:"gemini_model"`
		OllamaHost   string `mapstructure:"ollama_host"`
		OllamaModel  string `mapstructure:"ollama_model"`
	} `mapstructure:"assist"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
}

func LoadConfig(path string) (cfg Config, err error) {

	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil {
		log.Println("warning: .env file not found, use environment only.")
	}

	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read environment only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("storage.driver", "STORAGE_DRIVER")
	viper.BindEnv("storage.data_dir", "STORAGE_DATA_DIR")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	viper.BindEnv("assist.provider", "ASSIST_PROVIDER")
	viper.BindEnv("assist.gemini_api_key", "GEMINI_API_KEY")
	viper.BindEnv("assist.gemini_model", "GEMINI_MODEL")
	viper.BindEnv("assist.ollama_host", "OLLAMA_HOST")
	viper.BindEnv("assist.ollama_model", "OLLAMA_MODEL")
	viper.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.data_dir", "data")
	viper.SetDefault("auth.token_lifespan", 24*time.Hour)
	viper.SetDefault("assist.gemini_model", "gemini-2.5-flash")
	viper.SetDefault("assist.ollama_model", "phi3:mini")

	err = viper.Unmarshal(&cfg)
	return
}
