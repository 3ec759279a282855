package guideadmin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guidetrack-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Colombia, Session{}, ClientOptions{})
	require.Error(t, err)

	_, err = NewClient(Colombia, Session{SessionToken: "s"}, ClientOptions{})
	require.Error(t, err)

	_, err = NewClient(Colombia, Session{SessionToken: "s", XsrfToken: "x"}, ClientOptions{})
	require.NoError(t, err)
}

func TestFetch(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/guideadmin")
	defer cleanup()

	mux := http.NewServeMux()
	mux.HandleFunc("/guides/1774435", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(colombiaFixture))
	})
	mux.HandleFunc("/guides/999", func(w http.ResponseWriter, r *http.Request) {
		// loading shell, the detail view never rendered
		w.Write([]byte(`<html><body><div id="app"></div></body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(Colombia, Session{SessionToken: "s", XsrfToken: "x"}, ClientOptions{
		BaseUrl:      server.URL + "/guides/",
		ReadyTimeout: time.Nanosecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	doc, err := client.Fetch(ctx, 1774435)
	require.NoError(t, err)
	value, ok := extractField(doc, Locator{Kind: LocatorDusk, Key: "id"})
	require.True(t, ok)
	require.Equal(t, "1774435", value)

	_, err = client.Fetch(ctx, 999)
	require.ErrorIs(t, err, ErrPageNotReady)
}
