package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Free Job Alert</title>
  <link>https://example.org</link>
  <description>jobs</description>
  <item>
    <title>WB Police Constable Recruitment 2026 Last Date 25-02-2026</title>
    <link>https://example.org/wb-police</link>
    <pubDate>Mon, 02 Feb 2026 10:00:00 +0530</pubDate>
    <description><![CDATA[<p>Apply online before <b>25-02-2026</b></p>]]></description>
  </item>
  <item>
    <title>UPSC Civil Services 2026</title>
    <link>https://example.org/upsc</link>
    <pubDate>Sun, 01 Feb 2026 09:00:00 +0530</pubDate>
  </item>
</channel>
</rss>`

func TestHTTPFetcher_Fetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, zap.NewNop())
	entries, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Contains(t, gotUA, "sarkari-tracker")

	// feed order is preserved
	assert.Equal(t, "WB Police Constable Recruitment 2026 Last Date 25-02-2026", entries[0].Title)
	assert.Equal(t, "https://example.org/wb-police", entries[0].Link)
	assert.Contains(t, entries[0].Summary, "25-02-2026")
	assert.Equal(t, 2026, entries[0].Published.Year())

	assert.Equal(t, "https://example.org/upsc", entries[1].Link)
	assert.Empty(t, entries[1].Summary)
}

func TestHTTPFetcher_Fetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, zap.NewNop())
	entries, err := f.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.Nil(t, entries)
}

func TestHTTPFetcher_Fetch_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, zap.NewNop())
	_, err := f.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestHTTPFetcher_Fetch_EmptyChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>x</title></channel></rss>`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, zap.NewNop())
	entries, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
