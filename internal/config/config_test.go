package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "markdown", c.OutputFormat)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "127.0.0.1:8080", c.ListenAddr)
	assert.Equal(t, []string{"*"}, c.CORSOrigins)
	assert.Equal(t, 100, c.MaxListRows)
	assert.Zero(t, c.Center)
}

func TestLoadFileAndEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "data_source: /data/props.csv\ncenter: 350000\noutput_format: json\ndelimiter: \";\"\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PROPMAP_LOG_LEVEL", "debug")

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "/data/props.csv", c.DataSource)
	assert.Equal(t, int64(350000), c.Center)
	assert.Equal(t, "json", c.OutputFormat)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, ';', c.LoaderOptions().Delimiter)
}

func TestLoadRejectsInvalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(p, []byte("output_format: xml\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := Load("")
	require.NoError(t, err)
	c.Center = 420000
	c.Delimiter = `\t`
	require.NoError(t, Save(c, ""))

	_, err = os.Stat(filepath.Join(home, ".propmap", "config.yaml"))
	require.NoError(t, err)

	back, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(420000), back.Center)
	assert.Equal(t, '\t', back.LoaderOptions().Delimiter)
}

func TestValidateDelimiter(t *testing.T) {
	c := &Global{OutputFormat: "markdown", LogLevel: "info", ListenAddr: ":8080", Delimiter: "ab"}
	assert.Error(t, c.Validate())
	c.Delimiter = "|"
	assert.NoError(t, c.Validate())
	assert.Equal(t, '|', c.LoaderOptions().Delimiter)
	c.Delimiter = ""
	assert.Equal(t, rune(0), c.LoaderOptions().Delimiter)

	for _, tab := range []string{"tab", "TAB", `\t`, "\t"} {
		c.Delimiter = tab
		require.NoError(t, c.Validate(), "delimiter %q", tab)
		assert.Equal(t, '\t', c.LoaderOptions().Delimiter, "delimiter %q", tab)
	}
}
