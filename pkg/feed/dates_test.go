package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/domain"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"rfc1123z", "Mon, 02 Jan 2006 15:04:05 +0100", true},
		{"rfc1123", "Mon, 02 Jan 2006 15:04:05 CET", true},
		{"single digit day", "Mon, 2 Jan 2006 15:04:05 +0100", true},
		{"rfc3339", "2006-01-02T15:04:05+01:00", true},
		{"date only", "2006-01-02", true},
		{"garbage", "wczoraj wieczorem", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDate(tt.in)
			assert.Equal(t, tt.ok, !got.IsZero())
		})
	}
}

func TestSortByDate(t *testing.T) {
	items := []domain.FeedItem{
		{Title: "old", Date: "Mon, 02 Jan 2006 10:00:00 +0000"},
		{Title: "unparsable", Date: "kiedyś tam"},
		{Title: "new", Date: "Wed, 04 Jan 2006 10:00:00 +0000"},
		{Title: "mid", Date: "Tue, 03 Jan 2006 10:00:00 +0000"},
	}

	sortByDate(items)

	assert.Equal(t, "new", items[0].Title)
	assert.Equal(t, "mid", items[1].Title)
	assert.Equal(t, "old", items[2].Title)
	assert.Equal(t, "unparsable", items[3].Title, "unparsable dates sort last")
}

func TestSortByDate_AllUnparsable(t *testing.T) {
	// with nothing parsable the merged feed order must be preserved
	items := []domain.FeedItem{
		{Title: "first", Date: "???"},
		{Title: "second", Date: ""},
		{Title: "third", Date: "za tydzień"},
	}

	sortByDate(items)

	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "third", items[2].Title)
}

func TestSortByDate_MixedZones(t *testing.T) {
	items := []domain.FeedItem{
		{Title: "later", Date: "Mon, 02 Jan 2006 16:30:00 +0100"}, // 15:30 UTC
		{Title: "earlier", Date: "Mon, 02 Jan 2006 15:00:00 +0000"},
	}

	sortByDate(items)
	assert.Equal(t, "later", items[0].Title, "comparison is instant-based, not text-based")
}
