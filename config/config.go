package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	JWT          JWT
	Mail         Mail
	GeminiApiKey string
	OpenAI       OpenAI
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWT struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type Mail struct {
	From string
}

type OpenAI struct {
	ApiKey       string
	DefaultModel string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_ACCESS_TTL_MINUTES", 60)
	viper.SetDefault("JWT_REFRESH_TTL_HOURS", 168)
	viper.SetDefault("OPENAI_DEFAULT_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("MAIL_FROM", "no-reply@polliwog.local")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.AccessSecret = viper.GetString("JWT_SECRET")
	config.JWT.RefreshSecret = viper.GetString("JWT_REFRESH_SECRET")
	config.JWT.AccessTTL = time.Duration(viper.GetInt("JWT_ACCESS_TTL_MINUTES")) * time.Minute
	config.JWT.RefreshTTL = time.Duration(viper.GetInt("JWT_REFRESH_TTL_HOURS")) * time.Hour

	config.Mail.From = viper.GetString("MAIL_FROM")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.OpenAI.ApiKey = viper.GetString("CHAT_GPT_API_KEY")
	config.OpenAI.DefaultModel = viper.GetString("OPENAI_DEFAULT_MODEL")

	log.Info().Str("port", config.Server.Port).Str("db", config.Database.Name).Msg("Config loaded")
	return &config, nil
}
