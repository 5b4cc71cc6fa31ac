package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type ConsoleOptions struct {
	IndentUnit   string `toml:"indent-unit"`
	TabWidth     int    `toml:"tab-width"`
	Markup       string `toml:"markup"`
	ScrollMargin int    `toml:"scroll-margin"`
}

type Theme struct {
	Theme                string `toml:"theme"`
	Foreground           string `toml:"foreground"`
	Background           string `toml:"background"`
	StatuslineForeground string `toml:"statusline-foreground"`
	StatuslineBackground string `toml:"statusline-background"`
	LiteralIndicator     string `toml:"literal-indicator"`
	SyntaxKeyword        string `toml:"syntax-keyword"`
	SyntaxString         string `toml:"syntax-string"`
	SyntaxComment        string `toml:"syntax-comment"`
	SyntaxNumber         string `toml:"syntax-number"`
	SyntaxOperator       string `toml:"syntax-operator"`
}

type Config struct {
	Console ConsoleOptions `toml:"console"`
	Theme   Theme          `toml:"theme"`
	Grammar GrammarOptions `toml:"grammar"`
}

func Default() Config {
	return Config{
		Console: ConsoleOptions{
			IndentUnit:   "\t",
			TabWidth:     4,
			Markup:       "ansi",
			ScrollMargin: 2,
		},
		Theme: Theme{
			Theme:                "",
			Foreground:           "#B3B1AD",
			Background:           "#0A0E14",
			StatuslineForeground: "#B3B1AD",
			StatuslineBackground: "#0F1419",
			LiteralIndicator:     "#BAE67E",
			SyntaxKeyword:        "#FFA759",
			SyntaxString:         "#BAE67E",
			SyntaxComment:        "#5C6773",
			SyntaxNumber:         "#D4BFFF",
			SyntaxOperator:       "#F29668",
		},
		Grammar: DefaultGrammar(),
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if userCfg.Console.IndentUnit != "" {
		cfg.Console.IndentUnit = userCfg.Console.IndentUnit
	}
	if userCfg.Console.TabWidth > 0 {
		cfg.Console.TabWidth = userCfg.Console.TabWidth
	}
	if userCfg.Console.Markup != "" {
		cfg.Console.Markup = userCfg.Console.Markup
	}
	if userCfg.Console.ScrollMargin > 0 {
		cfg.Console.ScrollMargin = userCfg.Console.ScrollMargin
	}

	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)

	if userCfg.Grammar.Grammar != "" {
		g, err := LoadGrammar(userCfg.Grammar.Grammar)
		if err != nil {
			return cfg, err
		}
		mergeGrammar(&cfg.Grammar, g)
		cfg.Grammar.Grammar = userCfg.Grammar.Grammar
	}
	mergeGrammar(&cfg.Grammar, userCfg.Grammar)

	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.StatuslineForeground != "" {
		dst.StatuslineForeground = src.StatuslineForeground
	}
	if src.StatuslineBackground != "" {
		dst.StatuslineBackground = src.StatuslineBackground
	}
	if src.LiteralIndicator != "" {
		dst.LiteralIndicator = src.LiteralIndicator
	}
	if src.SyntaxKeyword != "" {
		dst.SyntaxKeyword = src.SyntaxKeyword
	}
	if src.SyntaxString != "" {
		dst.SyntaxString = src.SyntaxString
	}
	if src.SyntaxComment != "" {
		dst.SyntaxComment = src.SyntaxComment
	}
	if src.SyntaxNumber != "" {
		dst.SyntaxNumber = src.SyntaxNumber
	}
	if src.SyntaxOperator != "" {
		dst.SyntaxOperator = src.SyntaxOperator
	}
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err == nil && t != (Theme{}) {
		return t, nil
	}
	var wrap struct {
		Theme Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", name, err)
	}
	return wrap.Theme, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("QCONSOLE_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "qconsole"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qconsole"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
