package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	JWT        JWT
	Mail       Mail
	Forum      Forum
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
	BaseURL     string
}

type BunConfig struct {
	DSN string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

type JWT struct {
	Secret           string
	ExpiredIn        int // access token lifetime, seconds
	RefreshExpiredIn int // refresh token lifetime, seconds
}

type Mail struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// AdminRecipient receives subforum approval requests.
	AdminRecipient string
}

type Forum struct {
	// EmailDomain is the institutional suffix required at registration.
	EmailDomain string
	// ActivationTokenTTL is the lifetime of activation links, seconds.
	ActivationTokenTTL int
	TokenSecret        string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	return &c, nil
}
