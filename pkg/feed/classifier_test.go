package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/config"
	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/domain"
)

func testTopics() map[string]config.Topic {
	return map[string]config.Topic{
		"crypto": {
			Include: []string{"bitcoin", "krypto", "ethereum"},
		},
		"waluty": {
			Include: []string{"kurs", "euro", "dolar"},
			Exclude: []string{"bitcoin"},
		},
		"biznes": {}, // no keyword set, passes everything
	}
}

func TestClassifier_Filter(t *testing.T) {
	c := NewClassifier(testTopics())

	items := []domain.FeedItem{
		{Title: "Bitcoin osiągnął nowy rekord", Link: "https://e.com/1"},
		{Title: "WIG20 rośnie", Link: "https://e.com/2"},
		{Title: "Rynek kryptowalut w odwrocie", Link: "https://e.com/3", Description: "Ethereum traci najmocniej"},
	}

	got := c.Filter(items, "crypto")
	assert.Len(t, got, 2)
	assert.Equal(t, "Bitcoin osiągnął nowy rekord", got[0].Title)
	assert.Equal(t, "Rynek kryptowalut w odwrocie", got[1].Title)
}

func TestClassifier_Filter_Exclude(t *testing.T) {
	c := NewClassifier(testTopics())

	items := []domain.FeedItem{
		{Title: "Kurs euro spada", Link: "https://e.com/1"},
		{Title: "Kurs bitcoina bije rekordy", Link: "https://e.com/2"},
	}

	got := c.Filter(items, "waluty")
	assert.Len(t, got, 1, "exclude keyword rejects despite include match")
	assert.Equal(t, "Kurs euro spada", got[0].Title)
}

func TestClassifier_Filter_CaseInsensitive(t *testing.T) {
	c := NewClassifier(testTopics())

	items := []domain.FeedItem{
		{Title: "BITCOIN w górę", Link: "https://e.com/1"},
		{Title: "eThErEuM stabilnie", Link: "https://e.com/2"},
	}

	assert.Len(t, c.Filter(items, "crypto"), 2)
}

func TestClassifier_Filter_Passthrough(t *testing.T) {
	c := NewClassifier(testTopics())

	items := []domain.FeedItem{
		{Title: "Cokolwiek", Link: "https://e.com/1"},
		{Title: "Jeszcze coś", Link: "https://e.com/2"},
	}

	t.Run("topic without keyword set", func(t *testing.T) {
		assert.Equal(t, items, c.Filter(items, "biznes"))
	})

	t.Run("unregistered topic", func(t *testing.T) {
		assert.Equal(t, items, c.Filter(items, "nieznany"))
	})
}

func TestClassifier_Filter_Idempotent(t *testing.T) {
	c := NewClassifier(testTopics())

	items := []domain.FeedItem{
		{Title: "Bitcoin osiągnął nowy rekord", Link: "https://e.com/1"},
		{Title: "WIG20 rośnie", Link: "https://e.com/2"},
		{Title: "Halving kryptowaluty coraz bliżej", Link: "https://e.com/3"},
	}

	once := c.Filter(items, "crypto")
	twice := c.Filter(once, "crypto")
	assert.Equal(t, once, twice)
}
