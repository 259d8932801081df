package config

import (
	"flag"
	"strings"

	"github.com/spf13/viper"
)

const (
	serverEnvPrefix      = "GISTSERVER"
	defaultServerAddress = "localhost:8080"
)

// ServerConfig настройки локального эмулятора Gist API.
type ServerConfig struct {
	ServerAddress string // адрес HTTP-сервера
	BaseURL       string // публичный адрес для полей url/html_url, пусто = из заголовка Host
	BasicAuth     string // единственная принимаемая пара user:token, пусто = любая
	LogLevel      string // уровень логирования
	FilePath      string // файл для сохранения gist между перезапусками, пусто = не сохранять
}

// NewServerConfig разбирает флаги эмулятора. Переменные окружения GISTSERVER_*
// перекрывают значения флагов.
func NewServerConfig(args []string) (*ServerConfig, error) {
	cfg := &ServerConfig{}

	fs := flag.NewFlagSet("gistserver", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "a", defaultServerAddress, "HTTP server address")
	fs.StringVar(&cfg.BaseURL, "b", "", "public base URL of the emulator")
	fs.StringVar(&cfg.BasicAuth, "u", "", "accepted credentials in user:token format")
	fs.StringVar(&cfg.LogLevel, "l", "info", "log level")
	fs.StringVar(&cfg.FilePath, "f", "", "file to persist gists between restarts")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(serverEnvPrefix)
	v.AutomaticEnv()

	if envAddr := v.GetString("address"); envAddr != "" {
		cfg.ServerAddress = envAddr
	}
	if envBaseURL := v.GetString("base_url"); envBaseURL != "" {
		cfg.BaseURL = envBaseURL
	}
	if envAuth := v.GetString("basic_auth"); envAuth != "" {
		cfg.BasicAuth = envAuth
	}
	if envLevel := v.GetString("log_level"); envLevel != "" {
		cfg.LogLevel = envLevel
	}
	if envPath := v.GetString("file_storage_path"); envPath != "" {
		cfg.FilePath = envPath
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return cfg, nil
}
