package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uselessgoddess/suns/config"
	appLog "github.com/uselessgoddess/suns/log"
	"github.com/uselessgoddess/suns/plugin"
)

var (
	configPath  string
	presetsPath string
	pluginName  string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "suns",
	Short: "Расписание занятий ВГУ из таблиц на сайте факультетов",
	Long: `suns скачивает страницу расписания факультета, находит таблицу нужного курса
и разбирает её в недельное расписание (5 дней x 8 пар, по подгруппам).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute запуск CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Файл настроек (yaml)")
	rootCmd.PersistentFlags().StringVar(&presetsPath, "presets", "", "Пресет специальностей (yaml), по умолчанию встроенный")
	rootCmd.PersistentFlags().StringVar(&pluginName, "plugin", "", "Требуемое учебное учреждение")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info или error")
}

type app struct {
	cfg         *config.Config
	departments config.Departments
	plugin      plugin.Plugin
}

// setup конфиг и пресет читаются один раз, дальше только передаются
func setup() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if presetsPath != "" {
		cfg.Presets = presetsPath
	}
	if pluginName != "" {
		cfg.Institution = pluginName
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := appLog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	appLog.SetLevel(level)

	departments, err := config.LoadDepartments(cfg.Presets)
	if err != nil {
		return nil, err
	}

	plug, err := plugin.NewPlugin(cfg.Institution, cfg, departments)
	if err != nil {
		return nil, err
	}

	appLog.Debug("effective config",
		"institution", cfg.Institution,
		"site", cfg.Site,
		"timeout", cfg.Timeout,
		"departments", len(departments),
	)

	return &app{cfg: cfg, departments: departments, plugin: plug}, nil
}
