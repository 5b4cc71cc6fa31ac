package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultGrammarRoundTrip(t *testing.T) {
	g := DefaultGrammar().Lexer()
	require.Equal(t, '@', g.VerbatimPrefix)
	require.Equal(t, '$', g.InterpolatedPrefix)
	require.Equal(t, '\\', g.Escape)
	require.Equal(t, "{([", g.OpenBrackets)
	require.Contains(t, g.Keywords, "class")
}

func TestLoadGrammarFlatAndWrapped(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QCONSOLE_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "grammar", "lua.toml"), `
keywords = ["local", "function", "end"]
line-comment = "--"
string-delimiters = "\"'"
`)
	writeFile(t, filepath.Join(dir, "grammar", "wrapped.toml"), `
[grammar]
line-comment = "#"
escape = "\\"
`)

	lua, err := LoadGrammar("lua")
	require.NoError(t, err)
	require.Equal(t, []string{"local", "function", "end"}, lua.Keywords)
	require.Equal(t, "--", lua.LineComment)

	wrapped, err := LoadGrammar("wrapped")
	require.NoError(t, err)
	require.Equal(t, "#", wrapped.LineComment)
	require.Equal(t, '\\', wrapped.Lexer().Escape)
}

func TestLoadSelectsGrammar(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QCONSOLE_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "grammar", "shell.toml"), `
keywords = ["if", "then", "fi"]
line-comment = "#"
`)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[grammar]
grammar = "shell"
close-brackets = "})"
`)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "shell", cfg.Grammar.Grammar)
	require.Equal(t, "#", cfg.Grammar.LineComment)
	require.Equal(t, []string{"if", "then", "fi"}, cfg.Grammar.Keywords)
	require.Equal(t, "})", cfg.Grammar.CloseBrackets)
	// Fields the grammar file leaves out keep the built-in values.
	require.Equal(t, "/*", cfg.Grammar.BlockCommentOpen)
}

func TestLoadGrammarMissing(t *testing.T) {
	t.Setenv("QCONSOLE_CONFIG_HOME", t.TempDir())
	_, err := LoadGrammar("nope")
	require.Error(t, err)
}
