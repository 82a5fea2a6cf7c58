package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLexicon(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "lexicon.txt")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("informal: true\nbatch_parallelism: 2\n"), 0o644))

	t.Setenv("TMC_CONFIG_PATH", cfgPath)
	t.Setenv("TMC_LEXICON_PATH", lexPath)
	t.Setenv("TMC_API_CORS_ORIGINS", "https://a.org,https://b.org")

	settings, cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "10000", settings.APIPort)
	assert.Equal(t, []string{"https://a.org", "https://b.org"}, settings.CORSOrigins)
	assert.Equal(t, []string{lexPath}, cfg.LexiconPaths)
	assert.True(t, cfg.Informal)
	assert.Equal(t, 2, cfg.BatchParallelism)
	assert.True(t, cfg.AnalysisCache.Enabled, "defaults survive")

	t.Setenv("TMC_CONFIG_PATH", "")
	t.Setenv("TMC_LEXICON_PATH", "")
	_, _, err = loadSettings()
	assert.Error(t, err)
}

func TestAnalyzeCommand(t *testing.T) {
	lexPath := filepath.Join(t.TempDir(), "lexicon.txt")
	writeLexicon(t, lexPath, "kitap\n")
	t.Setenv("TMC_CONFIG_PATH", "")
	t.Setenv("TMC_LEXICON_PATH", lexPath)

	var out bytes.Buffer
	cmd := rootCmd(zerolog.Nop())
	cmd.SetOut(&out)
	cmd.SetIn(bytes.NewBufferString("kitaba\n# comment\nxyz\n"))
	cmd.SetArgs([]string{"analyze"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "kitaba\n\t[kitap:Noun] kitab:Noun+A3sg+a:Dat\nxyz\n\t[UNK:Unk] xyz:Unknown\n", out.String())

	out.Reset()
	cmd.SetArgs([]string{"analyze", "kitaplarda"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "kitaplarda\n\t[kitap:Noun] kitap:Noun+lar:A3pl+da:Loc\n", out.String())
}

func TestLexiconReloader(t *testing.T) {
	lexPath := filepath.Join(t.TempDir(), "lexicon.txt")
	writeLexicon(t, lexPath, "kitap\n")
	t.Setenv("TMC_CONFIG_PATH", "")
	t.Setenv("TMC_LEXICON_PATH", lexPath)
	_, cfg, err := loadSettings()
	require.NoError(t, err)

	r, err := newLexiconReloader(cfg, zerolog.Nop())
	require.NoError(t, err)
	first := r.Current()
	assert.Len(t, first.Analyze("kitaplarda"), 1)
	assert.Empty(t, first.Analyze("elmalar"))

	writeLexicon(t, lexPath, "kitap\nelma\n")
	require.NoError(t, r.reload())
	assert.NotSame(t, first, r.Current())
	assert.Len(t, r.Current().Analyze("elmalar"), 2)

	require.NoError(t, os.Remove(lexPath))
	second := r.Current()
	assert.Error(t, r.reload())
	assert.Same(t, second, r.Current())
}
