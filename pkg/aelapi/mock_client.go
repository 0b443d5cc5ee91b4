package aelapi

import (
	"github.com/ael-launcher/catalog/pkg/aelmodel"
)

// MockClient is an in-memory CatalogAPI. Queries answer from canned data, stores record
// their bodies by route.
type MockClient struct {
	err            error
	storeResult    bool
	roms           map[string]*aelmodel.ROM
	collectionROMs map[string][]*aelmodel.ROM
	settings       map[string]map[string]any

	// Stored holds every body passed to a store operation, keyed by its route.
	Stored map[string][]map[string]any
}

func NewMockClient() *MockClient {
	return &MockClient{
		storeResult:    true,
		roms:           make(map[string]*aelmodel.ROM),
		collectionROMs: make(map[string][]*aelmodel.ROM),
		settings:       make(map[string]map[string]any),
		Stored:         make(map[string][]map[string]any),
	}
}

// SetError makes every query return err.
func (c *MockClient) SetError(err error) {
	c.err = err
}

// SetStoreResult sets what the store operations return. The default is true.
func (c *MockClient) SetStoreResult(result bool) {
	c.storeResult = result
}

func (c *MockClient) SetROM(romID string, rom *aelmodel.ROM) {
	c.roms[romID] = rom
}

func (c *MockClient) SetCollectionROMs(collectionID string, roms []*aelmodel.ROM) {
	c.collectionROMs[collectionID] = roms
}

// SetSettings sets the mapping returned by the query at path for the given ids. For
// QueryCollectionLaunchersPath subID is "".
func (c *MockClient) SetSettings(path, id, subID string, settings map[string]any) {
	c.settings[settingsKey(path, id, subID)] = settings
}

func (c *MockClient) Err(err error) *MockClient {
	c.err = err
	return c
}

func (c *MockClient) GetROM(romID string) (*aelmodel.ROM, error) {
	if c.err != nil {
		return nil, c.err
	}

	rom, ok := c.roms[romID]
	if !ok {
		return nil, &HTTPStatusError{URL: QueryROMPath + "?id=" + romID, StatusCode: 404, Message: "rom not found"}
	}

	return rom, nil
}

func (c *MockClient) GetROMsInCollection(collectionID string) ([]*aelmodel.ROM, error) {
	if c.err != nil {
		return nil, c.err
	}

	return c.collectionROMs[collectionID], nil
}

func (c *MockClient) GetCollectionLaunchers(collectionID string) (map[string]any, error) {
	return c.getSettings(QueryCollectionLaunchersPath, collectionID, "")
}

func (c *MockClient) GetROMLauncherSettings(romID, launcherID string) (map[string]any, error) {
	return c.getSettings(QueryROMLauncherSettingsPath, romID, launcherID)
}

func (c *MockClient) GetCollectionLauncherSettings(collectionID, launcherID string) (map[string]any, error) {
	return c.getSettings(QueryCollectionLauncherSettingsPath, collectionID, launcherID)
}

func (c *MockClient) GetCollectionScannerSettings(collectionID, scannerID string) (map[string]any, error) {
	return c.getSettings(QueryCollectionScannerSettingsPath, collectionID, scannerID)
}

func (c *MockClient) StoreLauncherSettings(data map[string]any) bool {
	return c.store(StoreLauncherSettingsPath, data)
}

func (c *MockClient) StoreScannerSettings(data map[string]any) bool {
	return c.store(StoreScannerSettingsPath, data)
}

func (c *MockClient) StoreScannedROMs(data map[string]any) bool {
	return c.store(StoreScannedROMsPath, data)
}

func (c *MockClient) StoreDeadROMs(data map[string]any) bool {
	return c.store(StoreDeadROMsPath, data)
}

func (c *MockClient) StoreScrapedROM(data map[string]any) bool {
	return c.store(StoreScrapedROMPath, data)
}

func (c *MockClient) StoreScrapedROMs(data map[string]any) bool {
	return c.store(StoreScrapedROMsPath, data)
}

func (c *MockClient) getSettings(path, id, subID string) (map[string]any, error) {
	if c.err != nil {
		return nil, c.err
	}

	settings, ok := c.settings[settingsKey(path, id, subID)]
	if !ok {
		return map[string]any{}, nil
	}

	return settings, nil
}

func (c *MockClient) store(path string, data map[string]any) bool {
	c.Stored[path] = append(c.Stored[path], data)
	return c.storeResult
}

func settingsKey(path, id, subID string) string {
	return path + "|" + id + "|" + subID
}
