// Package config loads vim-mux settings from file and environment.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Keys maps navigation directions to tmux key names. The same key is both
// the binding trigger and the key forwarded to the editor.
type Keys struct {
	Left     string
	Right    string
	Up       string
	Down     string
	Previous string
}

// For returns the key bound to a direction name, or "" if unknown.
func (k Keys) For(direction string) string {
	switch direction {
	case "left":
		return k.Left
	case "right":
		return k.Right
	case "up":
		return k.Up
	case "down":
		return k.Down
	case "previous":
		return k.Previous
	}
	return ""
}

// Config holds all vim-mux settings.
type Config struct {
	Editors  []string      // extra editor basenames on top of the builtin pattern
	Timeout  time.Duration // deadline for one whole check
	LogLevel string
	Keys     Keys
}

// Default returns the built-in settings: vim-tmux-navigator style keys and
// a snapshot deadline generous enough for a loaded host.
func Default() Config {
	return Config{
		Timeout:  500 * time.Millisecond,
		LogLevel: "warn",
		Keys: Keys{
			Left:     "C-h",
			Right:    "C-l",
			Up:       "C-k",
			Down:     "C-j",
			Previous: `C-\`,
		},
	}
}

// Load reads ~/.config/vim-mux/config.yaml and VIM_MUX_* environment
// variables. Any read failure falls back to defaults: configuration must
// never break a navigation key press.
func Load() Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/vim-mux")
	v.SetEnvPrefix("VIM_MUX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	// Missing file is the common case; any other error also falls through
	// to whatever defaults and env provide.
	_ = v.ReadInConfig()
	return FromViper(v)
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("timeout", def.Timeout)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("keys.left", def.Keys.Left)
	v.SetDefault("keys.right", def.Keys.Right)
	v.SetDefault("keys.up", def.Keys.Up)
	v.SetDefault("keys.down", def.Keys.Down)
	v.SetDefault("keys.previous", def.Keys.Previous)
}

// FromViper materializes a Config from a prepared viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		Editors:  v.GetStringSlice("editors"),
		Timeout:  v.GetDuration("timeout"),
		LogLevel: v.GetString("log_level"),
		Keys: Keys{
			Left:     v.GetString("keys.left"),
			Right:    v.GetString("keys.right"),
			Up:       v.GetString("keys.up"),
			Down:     v.GetString("keys.down"),
			Previous: v.GetString("keys.previous"),
		},
	}
}
