package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "todo.db"
	DefaultStoreKey       = "tasks"
	DefaultNotifyDelayMS  = 3000
)

type Keymap struct {
	Quit            string `toml:"quit"`
	Add             string `toml:"add"`
	Up              string `toml:"up"`
	Down            string `toml:"down"`
	Toggle          string `toml:"toggle"`
	Edit            string `toml:"edit"`
	Delete          string `toml:"delete"`
	Confirm         string `toml:"confirm"`
	Cancel          string `toml:"cancel"`
	FilterAll       string `toml:"filter_all"`
	FilterCompleted string `toml:"filter_completed"`
	FilterPending   string `toml:"filter_pending"`
	FilterNext      string `toml:"filter_next"`
	Theme           string `toml:"theme"`
}

type Config struct {
	DBPath        string `toml:"db_path"`
	StoreKey      string `toml:"store_key"`
	DefaultFilter string `toml:"default_filter"`
	DarkMode      bool   `toml:"dark_mode"`
	NotifyDelayMS int    `toml:"notify_delay_ms"`
	LogPath       string `toml:"log_path"`
	LogLevel      string `toml:"log_level"`
	Keys          Keymap `toml:"keys"`
}

// NotifyDelay is how long a notification stays visible.
func (c Config) NotifyDelay() time.Duration {
	return time.Duration(c.NotifyDelayMS) * time.Millisecond
}

func (c Config) Validate() error {
	switch c.DefaultFilter {
	case "all", "completed", "pending":
	default:
		return fmt.Errorf("default_filter %q: must be all, completed or pending", c.DefaultFilter)
	}
	if c.NotifyDelayMS <= 0 {
		return fmt.Errorf("notify_delay_ms must be positive, got %d", c.NotifyDelayMS)
	}
	if c.StoreKey == "" {
		return errors.New("store_key is empty")
	}
	return nil
}

// ResolveConfigPath picks $TODO_CONFIG, then $XDG_CONFIG_HOME/todo, then the
// user config dir, falling back to the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv("TODO_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todo", DefaultConfigFileName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "todo", DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.StoreKey == "" {
		cfg.StoreKey = DefaultStoreKey
	}
	if cfg.DefaultFilter == "" {
		cfg.DefaultFilter = "all"
	}
	if cfg.NotifyDelayMS == 0 {
		cfg.NotifyDelayMS = DefaultNotifyDelayMS
	}
	return cfg, cfg.Validate()
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		DBPath:        DefaultDBName,
		StoreKey:      DefaultStoreKey,
		DefaultFilter: "all",
		NotifyDelayMS: DefaultNotifyDelayMS,
		LogLevel:      "info",
		Keys: Keymap{
			Quit:            "q",
			Add:             "a",
			Up:              "k",
			Down:            "j",
			Toggle:          " ",
			Edit:            "e",
			Delete:          "d",
			Confirm:         "enter",
			Cancel:          "esc",
			FilterAll:       "1",
			FilterCompleted: "2",
			FilterPending:   "3",
			FilterNext:      "tab",
			Theme:           "t",
		},
	}
}
