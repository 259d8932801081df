package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// Name имя программы, используется в User-Agent и в сообщениях об ошибках.
	Name = "quist"

	envPrefix = "QUIST"

	defaultAPIURL   = "https://api.github.com"
	defaultTimeout  = 30 * time.Second
	defaultLogLevel = "warn"
)

// Ключи конфигурации. Переменные окружения получаются добавлением префикса QUIST_.
const (
	KeyAPIURL      = "api_url"
	KeyBasicAuth   = "basic_auth"
	KeyDescription = "description"
	KeyLogLevel    = "log_level"
	KeyTimeout     = "timeout"
	KeyConfigFile  = "config"
)

// Version подменяется при сборке через -ldflags "-X .../config.Version=v1.2.3".
var Version = "develop"

var ErrNoFiles = errors.New("at least one FILE is required")

type Config struct {
	APIURL      string        // базовый адрес GitHub API
	BasicAuth   string        // учетные данные в формате user:token
	Description string        // описание создаваемого gist
	LogLevel    string        // уровень логирования
	Timeout     time.Duration // таймаут одного HTTP-запроса
	Files       []string      // пути к загружаемым файлам
}

// UserAgent значение заголовка User-Agent для запросов к API.
func UserAgent() string {
	return Name + "/" + Version
}

// NewViper создает источник настроек: значения по умолчанию и переменные окружения.
// Флаги командной строки записываются в него через Set и имеют наивысший приоритет.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyAPIURL, defaultAPIURL)
	v.SetDefault(KeyTimeout, defaultTimeout)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyBasicAuth, "")
	v.SetDefault(KeyDescription, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load читает необязательный файл конфигурации и собирает итоговые настройки.
func Load(v *viper.Viper, files []string) (*Config, error) {
	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	cfg := &Config{
		APIURL:      strings.TrimSuffix(v.GetString(KeyAPIURL), "/"),
		BasicAuth:   v.GetString(KeyBasicAuth),
		Description: v.GetString(KeyDescription),
		LogLevel:    v.GetString(KeyLogLevel),
		Timeout:     v.GetDuration(KeyTimeout),
		Files:       files,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации.
// Учетные данные здесь не проверяются: их разбором занимается пакет auth.
func (cfg *Config) Validate() error {
	if cfg.APIURL == "" {
		return errors.New("api url cannot be empty")
	}
	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api url %q", cfg.APIURL)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if len(cfg.Files) == 0 {
		return ErrNoFiles
	}
	return nil
}

// readConfigFile ищет config.yaml в $XDG_CONFIG_HOME/quist. Явно указанный файл
// (QUIST_CONFIG) обязан существовать, файл по умолчанию нет.
func readConfigFile(v *viper.Viper) error {
	explicit := v.GetString(KeyConfigFile)
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("cannot read config file %s: %w", explicit, err)
		}
		return nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(dir, Name))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("cannot read config file: %w", err)
	}
	return nil
}
