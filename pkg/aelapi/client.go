package aelapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/ael-launcher/catalog/pkg/clog"
	"github.com/ael-launcher/catalog/pkg/config"
	"github.com/apex/log"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client performs catalog operations against the server at host:port. Every call is a
// single blocking round trip; there is no caching and no retry.
//
// Query operations return whatever went wrong: transport failures, non-2xx statuses
// (as *HTTPStatusError) and bodies that aren't valid JSON. Store operations only report
// whether the server answered 200.
type Client struct {
	host       string
	port       int
	restClient *resty.Client
	log        *log.Entry
}

// NewClient creates a client for the catalog at host:port. A nil logger logs through
// the process-wide aelapi logging context.
func NewClient(host string, port int, logger *log.Entry) *Client {
	if logger == nil {
		logger = clog.UsingCtx(clog.ClientCtx)
	}

	restClient := resty.New().
		SetBaseURL(fmt.Sprintf("http://%s:%d", host, port)).
		SetHeader("Accept", "application/json").
		SetRedirectPolicy(noFollowRedirects)

	return &Client{
		host:       host,
		port:       port,
		restClient: restClient,
		log:        logger,
	}
}

// NewClientFromConfig creates a client using the AEL_HOST, AEL_PORT and
// AEL_TIMEOUT_SECONDS keys of c.
func NewClientFromConfig(c config.Configer, logger *log.Entry) *Client {
	client := NewClient(
		c.GetKeyWithDefault(config.KeyHost, config.DefaultHost),
		c.GetIntKeyWithDefault(config.KeyPort, config.DefaultPort),
		logger)

	timeout := c.GetIntKeyWithDefault(config.KeyTimeoutSeconds, config.DefaultTimeoutSeconds)
	return client.SetTimeout(time.Duration(timeout) * time.Second)
}

func (c *Client) SetTimeout(timeout time.Duration) *Client {
	c.restClient.SetTimeout(timeout)
	return c
}

// SetTransport replaces the round tripper used for requests.
func (c *Client) SetTransport(transport http.RoundTripper) *Client {
	c.restClient.SetTransport(transport)
	return c
}

func (c *Client) BaseURL() string {
	return c.restClient.BaseURL
}

func (c *Client) GetROM(romID string) (*aelmodel.ROM, error) {
	var romData map[string]any
	if err := c.getJSON(QueryROMPath, map[string]string{ParamID: romID}, &romData); err != nil {
		return nil, err
	}

	return aelmodel.NewROM(romData), nil
}

// GetROMsInCollection returns the ROMs of a collection in the order the server sent them.
func (c *Client) GetROMsInCollection(collectionID string) ([]*aelmodel.ROM, error) {
	var romsData []map[string]any
	if err := c.getJSON(QueryCollectionROMsPath, map[string]string{ParamID: collectionID}, &romsData); err != nil {
		return nil, err
	}

	roms := make([]*aelmodel.ROM, 0, len(romsData))
	for _, romData := range romsData {
		roms = append(roms, aelmodel.NewROM(romData))
	}

	return roms, nil
}

func (c *Client) GetCollectionLaunchers(collectionID string) (map[string]any, error) {
	return c.getMapping(QueryCollectionLaunchersPath, map[string]string{ParamID: collectionID})
}

func (c *Client) GetROMLauncherSettings(romID, launcherID string) (map[string]any, error) {
	return c.getMapping(QueryROMLauncherSettingsPath, map[string]string{
		ParamID:         romID,
		ParamLauncherID: launcherID,
	})
}

func (c *Client) GetCollectionLauncherSettings(collectionID, launcherID string) (map[string]any, error) {
	return c.getMapping(QueryCollectionLauncherSettingsPath, map[string]string{
		ParamID:         collectionID,
		ParamLauncherID: launcherID,
	})
}

func (c *Client) GetCollectionScannerSettings(collectionID, scannerID string) (map[string]any, error) {
	return c.getMapping(QueryCollectionScannerSettingsPath, map[string]string{
		ParamID:        collectionID,
		ParamScannerID: scannerID,
	})
}

func (c *Client) StoreLauncherSettings(data map[string]any) bool {
	return c.postJSON(StoreLauncherSettingsPath, data)
}

func (c *Client) StoreScannerSettings(data map[string]any) bool {
	return c.postJSON(StoreScannerSettingsPath, data)
}

func (c *Client) StoreScannedROMs(data map[string]any) bool {
	return c.postJSON(StoreScannedROMsPath, data)
}

func (c *Client) StoreDeadROMs(data map[string]any) bool {
	return c.postJSON(StoreDeadROMsPath, data)
}

func (c *Client) StoreScrapedROM(data map[string]any) bool {
	return c.postJSON(StoreScrapedROMPath, data)
}

func (c *Client) StoreScrapedROMs(data map[string]any) bool {
	return c.postJSON(StoreScrapedROMsPath, data)
}

// noFollowRedirects hands a 3xx response back to the caller instead of following it, so
// a redirect on a store is a failure and on a query an *HTTPStatusError.
var noFollowRedirects = resty.RedirectPolicyFunc(func(_ *http.Request, _ []*http.Request) error {
	return http.ErrUseLastResponse
})

// getMapping fetches a settings-style response. The mapping is returned exactly as the
// server sent it.
func (c *Client) getMapping(path string, params map[string]string) (map[string]any, error) {
	var mapping map[string]any
	if err := c.getJSON(path, params, &mapping); err != nil {
		return nil, err
	}

	return mapping, nil
}

func (c *Client) getJSON(path string, params map[string]string, result any) error {
	c.log.WithField("path", path).WithField("params", params).Debug("catalog query")

	resp, err := c.restClient.R().SetQueryParams(params).Get(path)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}

	if !resp.IsSuccess() {
		return ToErrorFromResponse(resp)
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return errors.Wrapf(err, "GET %s: unable to parse response", path)
	}

	return nil
}

// postJSON posts data and reports whether the server answered exactly 200. Anything
// else, redirects and other 2xx codes included, is a failure. The reason is logged and
// then dropped.
func (c *Client) postJSON(path string, data map[string]any) bool {
	resp, err := c.restClient.R().
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post(path)

	if err != nil {
		c.log.WithField("path", path).WithError(err).Warn("catalog store failed")
		return false
	}

	if resp.StatusCode() != http.StatusOK {
		c.log.WithField("path", path).WithField("status", resp.StatusCode()).Warn("catalog store rejected")
		return false
	}

	return true
}
