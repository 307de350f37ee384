package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Fetch.FeedCacheTTL)
	assert.Equal(t, 8*time.Second, cfg.Fetch.ArticleTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Fetch.ArticleCacheTTL)
	assert.Equal(t, 100, cfg.Extraction.MinSiteRuleLength)
	assert.Equal(t, 200, cfg.Extraction.MinGenericLength)
	assert.Equal(t, 40, cfg.Extraction.MinParagraphLength)
	assert.Equal(t, "biznes", cfg.DefaultTopic)

	// built-in topic registry present
	for _, key := range []string{"biznes", "rynki", "gielda", "crypto", "waluty", "analizy", "gospodarka", "surowce", "all"} {
		topic, ok := cfg.Topics[key]
		assert.True(t, ok, "topic %s registered", key)
		assert.NotEmpty(t, topic.URLs, "topic %s has feed URLs", key)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("/does/not/exist.yml")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Listen)
}

func TestLoad_FromFile(t *testing.T) {
	yamlContent := `
server:
  listen: ":9090"
  timeout: 10s
fetch:
  feed_timeout: 3s
  max_concurrent: 8
default_topic: moje
topics:
  moje:
    urls:
      - https://example.com/feed.xml
    include:
      - akcje
    exclude:
      - reklama
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 3*time.Second, cfg.Fetch.FeedTimeout)
	assert.Equal(t, 8, cfg.Fetch.MaxConcurrent)
	assert.Equal(t, 5*time.Minute, cfg.Fetch.FeedCacheTTL, "unset fields get defaults")
	assert.Equal(t, "moje", cfg.DefaultTopic)

	topic := cfg.Topics["moje"]
	assert.Equal(t, []string{"https://example.com/feed.xml"}, topic.URLs)
	assert.Equal(t, []string{"akcje"}, topic.Include)
	assert.Equal(t, []string{"reklama"}, topic.Exclude)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_LISTEN_ADDR", ":7070")

	yamlContent := `
server:
  listen: "${TEST_LISTEN_ADDR}"
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Listen)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "default topic not registered",
			yaml: "default_topic: brak\ntopics:\n  inny:\n    urls: [https://example.com/f.xml]\n",
			want: "default_topic",
		},
		{
			name: "topic without URLs",
			yaml: "default_topic: pusty\ntopics:\n  pusty:\n    include: [cokolwiek]\n",
			want: "no feed URLs",
		},
		{
			name: "warmup topic unknown",
			yaml: "warmup:\n  schedule: \"*/10 * * * *\"\n  topics: [nieznany]\n",
			want: "warmup topic",
		},
		{
			name: "server timeout too small",
			yaml: "server:\n  timeout: 1ms\n",
			want: "server.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetters(t *testing.T) {
	cfg := Default()

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":8080", listen)
	assert.Equal(t, 30*time.Second, timeout)

	assert.Equal(t, cfg.Fetch, cfg.GetFetchConfig())
	assert.Equal(t, cfg.Extraction, cfg.GetExtractionConfig())
}
