package aelapi_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/ael-launcher/catalog/pkg/aelapi"
	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/ael-launcher/catalog/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func respondWith(statusCode int, body string) roundTripFunc {
	return func(r *http.Request) (*http.Response, error) {
		return newResponse(r, statusCode, body), nil
	}
}

func newResponse(r *http.Request, statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    r,
	}
}

func newTestClient(transport http.RoundTripper) *aelapi.Client {
	return aelapi.NewClient("catalog.test", 9876, nil).SetTransport(transport)
}

func TestGetROMsInCollection(t *testing.T) {
	var captured *http.Request
	client := newTestClient(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		captured = r
		return newResponse(r, http.StatusOK, `[{"id":"1","m_name":"Game A"},{"id":"2","m_name":"Game B"}]`), nil
	}))

	roms, err := client.GetROMsInCollection("col-1")
	require.NoError(t, err)
	require.Len(t, roms, 2)

	name, ok := roms[0].GetName()
	assert.True(t, ok)
	assert.Equal(t, "Game A", name)

	id, _ := roms[1].GetID()
	assert.Equal(t, "2", id, "server order is kept")

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "catalog.test:9876", captured.URL.Host)
	assert.Equal(t, aelapi.QueryCollectionROMsPath, captured.URL.Path)
	assert.Equal(t, "col-1", captured.URL.Query().Get(aelapi.ParamID))
}

func TestSettingsQueriesSendParams(t *testing.T) {
	tests := []struct {
		name   string
		call   func(c *aelapi.Client) (map[string]any, error)
		path   string
		params map[string]string
	}{
		{
			name:   "ROM launcher settings",
			call:   func(c *aelapi.Client) (map[string]any, error) { return c.GetROMLauncherSettings("rom-1", "retroarch") },
			path:   aelapi.QueryROMLauncherSettingsPath,
			params: map[string]string{"id": "rom-1", "launcher_id": "retroarch"},
		},
		{
			name:   "Collection launcher settings",
			call:   func(c *aelapi.Client) (map[string]any, error) { return c.GetCollectionLauncherSettings("col-1", "retroarch") },
			path:   aelapi.QueryCollectionLauncherSettingsPath,
			params: map[string]string{"id": "col-1", "launcher_id": "retroarch"},
		},
		{
			name:   "Collection scanner settings",
			call:   func(c *aelapi.Client) (map[string]any, error) { return c.GetCollectionScannerSettings("col-1", "files") },
			path:   aelapi.QueryCollectionScannerSettingsPath,
			params: map[string]string{"id": "col-1", "scanner_id": "files"},
		},
		{
			name:   "Collection launchers",
			call:   func(c *aelapi.Client) (map[string]any, error) { return c.GetCollectionLaunchers("col-1") },
			path:   aelapi.QueryCollectionLaunchersPath,
			params: map[string]string{"id": "col-1"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var captured *http.Request
			client := newTestClient(roundTripFunc(func(r *http.Request) (*http.Response, error) {
				captured = r
				return newResponse(r, http.StatusOK, `{"path":"/roms"}`), nil
			}))

			settings, err := test.call(client)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"path": "/roms"}, settings)

			require.NotNil(t, captured)
			assert.Equal(t, test.path, captured.URL.Path)
			for key, value := range test.params {
				assert.Equal(t, value, captured.URL.Query().Get(key), key)
			}
		})
	}
}

func TestEmptyMappingIsNotNil(t *testing.T) {
	client := newTestClient(respondWith(http.StatusOK, `{}`))

	launchers, err := client.GetCollectionLaunchers("col-1")
	require.NoError(t, err)
	require.NotNil(t, launchers)
	assert.Empty(t, launchers)
}

func TestQueryErrors(t *testing.T) {
	t.Run("MalformedJSON", func(t *testing.T) {
		client := newTestClient(respondWith(http.StatusOK, `{"id":`))
		_, err := client.GetROM("1")
		require.Error(t, err)

		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("WrongShape", func(t *testing.T) {
		client := newTestClient(respondWith(http.StatusOK, `{"id":"1"}`))
		_, err := client.GetROMsInCollection("col-1")
		var typeErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &typeErr)
	})

	t.Run("Transport", func(t *testing.T) {
		transportErr := errors.New("connection refused")
		client := newTestClient(roundTripFunc(func(_ *http.Request) (*http.Response, error) {
			return nil, transportErr
		}))
		_, err := client.GetCollectionLaunchers("col-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, transportErr)
	})

	t.Run("NotFound", func(t *testing.T) {
		client := newTestClient(respondWith(http.StatusNotFound, `{"message":"rom not found"}`))
		_, err := client.GetROM("missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, aelapi.ErrCatalogAPI)

		var statusErr *aelapi.HTTPStatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Equal(t, "rom not found", statusErr.Message)
		assert.Contains(t, statusErr.URL, aelapi.QueryROMPath)
	})

	t.Run("ServerErrorWithoutJSONBody", func(t *testing.T) {
		client := newTestClient(respondWith(http.StatusInternalServerError, `boom`))
		_, err := client.GetCollectionScannerSettings("col-1", "files")
		var statusErr *aelapi.HTTPStatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		assert.Empty(t, statusErr.Message)
	})

	t.Run("Redirect", func(t *testing.T) {
		client := newTestClient(roundTripFunc(func(r *http.Request) (*http.Response, error) {
			resp := newResponse(r, http.StatusFound, ``)
			resp.Header.Set("Location", "http://elsewhere.test/")
			return resp, nil
		}))
		_, err := client.GetROM("1")
		assert.ErrorIs(t, err, aelapi.ErrCatalogAPI)
	})
}

func allStores(c aelapi.CatalogAPI) map[string]func(map[string]any) bool {
	return map[string]func(map[string]any) bool{
		aelapi.StoreLauncherSettingsPath: c.StoreLauncherSettings,
		aelapi.StoreScannerSettingsPath:  c.StoreScannerSettings,
		aelapi.StoreScannedROMsPath:      c.StoreScannedROMs,
		aelapi.StoreDeadROMsPath:         c.StoreDeadROMs,
		aelapi.StoreScrapedROMPath:       c.StoreScrapedROM,
		aelapi.StoreScrapedROMsPath:      c.StoreScrapedROMs,
	}
}

func TestStoreOperations(t *testing.T) {
	t.Run("PostsJSONBody", func(t *testing.T) {
		for path, store := range allStores(newTestClient(roundTripFunc(func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, r.URL.Path, body["path"])

			return newResponse(r, http.StatusOK, `{}`), nil
		}))) {
			assert.True(t, store(map[string]any{"path": path}), path)
		}
	})

	tests := []struct {
		name      string
		transport roundTripFunc
	}{
		{name: "NotFound", transport: respondWith(http.StatusNotFound, `{"message":"no"}`)},
		{name: "ServerError", transport: respondWith(http.StatusInternalServerError, ``)},
		{name: "Created", transport: respondWith(http.StatusCreated, `{}`)},
		{name: "Redirect", transport: respondWith(http.StatusMovedPermanently, ``)},
		{name: "Transport", transport: func(_ *http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset")
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for path, store := range allStores(newTestClient(test.transport)) {
				assert.False(t, store(map[string]any{"id": "1"}), path)
			}
		})
	}
}

func TestNewClientFromConfig(t *testing.T) {
	c := config.NewMapConfig(map[string]string{
		config.KeyHost: "catalog.lan",
		config.KeyPort: "8080",
	})

	client := aelapi.NewClientFromConfig(c, nil)
	assert.Equal(t, "http://catalog.lan:8080", client.BaseURL())

	defaults := aelapi.NewClientFromConfig(config.NewMapConfig(nil), nil)
	assert.Equal(t, "http://localhost:9876", defaults.BaseURL())
}

func TestMockClient(t *testing.T) {
	mock := aelapi.NewMockClient()

	_, err := mock.GetROM("1")
	assert.ErrorIs(t, err, aelapi.ErrCatalogAPI)

	rom := aelmodel.NewROM(map[string]any{"id": "1", "m_name": "Game A"})
	mock.SetROM("1", rom)
	got, err := mock.GetROM("1")
	require.NoError(t, err)
	assert.Same(t, rom, got)

	settings, err := mock.GetCollectionScannerSettings("col-1", "files")
	require.NoError(t, err)
	assert.Empty(t, settings)

	mock.SetSettings(aelapi.QueryCollectionScannerSettingsPath, "col-1", "files", map[string]any{"path": "/roms"})
	settings, err = mock.GetCollectionScannerSettings("col-1", "files")
	require.NoError(t, err)
	assert.Equal(t, "/roms", settings["path"])

	assert.True(t, mock.StoreDeadROMs(map[string]any{"rom_ids": []string{"1"}}))
	require.Len(t, mock.Stored[aelapi.StoreDeadROMsPath], 1)

	mock.SetStoreResult(false)
	assert.False(t, mock.StoreScrapedROM(rom.GetData()))

	queryErr := errors.New("offline")
	mock.SetError(queryErr)
	_, err = mock.GetROMsInCollection("col-1")
	assert.ErrorIs(t, err, queryErr)
}
