package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultListen      = "127.0.0.1:8080"
	defaultSite        = "https://vsu.by"
	defaultPage        = "/universitet/fakultety/%s/raspisanie.html"
	defaultTimeout     = 15 * time.Second
	defaultInstitution = "ВГУ"
	defaultLogLevel    = "info"
)

// Config настройки процесса. Всё, что не указано в файле, берётся по умолчанию.
type Config struct {
	// Listen адрес HTTP API
	Listen string `yaml:"listen" json:"listen"`

	// Institution учебное заведение (имя плагина)
	Institution string `yaml:"institution" json:"institution"`

	// Site корень сайта, от него разрешаются ссылки на таблицы
	Site string `yaml:"site" json:"site"`

	// Page шаблон пути страницы расписания факультета, %s - DepartmentSpec.Link
	Page string `yaml:"page" json:"page"`

	// Timeout ограничение на один запрос к сайту
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// Presets путь к пресету специальностей, пустой - встроенный
	Presets string `yaml:"presets" json:"presets"`

	LogLevel string `yaml:"log_level" json:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:      defaultListen,
		Institution: defaultInstitution,
		Site:        defaultSite,
		Page:        defaultPage,
		Timeout:     defaultTimeout,
		LogLevel:    defaultLogLevel,
	}
}

// Normalize заполнить пустые поля значениями по умолчанию
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = defaultListen
	}
	if c.Institution == "" {
		c.Institution = defaultInstitution
	}
	if c.Site == "" {
		c.Site = defaultSite
	}
	c.Site = strings.TrimRight(c.Site, "/")
	if !strings.Contains(c.Page, "%s") {
		c.Page = defaultPage
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

// Load прочитать конфиг. Пустой путь или отсутствующий файл - настройки по умолчанию.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}
