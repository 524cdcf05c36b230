// File: internal/services/bible/client_test.go
package bible

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	}
}

func TestLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/John 3:16", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"reference": "John 3:16",
			"verses": [{"book_name": "John", "chapter": 3, "verse": 16, "text": "For God so loved the world..."}],
			"text": "For God so loved the world...",
			"translation_name": "World English Bible"
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL))
	require.NoError(t, err)

	passage, err := client.Lookup(context.Background(), "John 3:16")
	require.NoError(t, err)
	assert.Equal(t, "John 3:16", passage.Reference)
	require.Len(t, passage.Verses, 1)
	assert.Equal(t, "John", passage.Verses[0].BookName)
	assert.Equal(t, "World English Bible", passage.Translation)
}

func TestLookupNotFoundIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.Lookup(context.Background(), "Nonexistent 99:99")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLookupRetriesTransientFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"reference": "Psalm 23", "text": "The LORD is my shepherd"}`))
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL))
	require.NoError(t, err)

	passage, err := client.Lookup(context.Background(), "Psalm 23")
	require.NoError(t, err)
	assert.Equal(t, "Psalm 23", passage.Reference)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestLookupValidation(t *testing.T) {
	client, err := NewClient(testConfig("http://localhost:0"))
	require.NoError(t, err)

	_, err = client.Lookup(context.Background(), "   ")
	var be *BibleError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrTypeValidation, be.Type)
}
