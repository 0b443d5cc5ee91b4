package aelapi

import (
	"github.com/ael-launcher/catalog/pkg/aelmodel"
)

// CatalogAPI is the set of catalog operations. Client talks to a real server,
// MockClient is for testing code that depends on the catalog.
type CatalogAPI interface {
	GetROM(romID string) (*aelmodel.ROM, error)
	GetROMsInCollection(collectionID string) ([]*aelmodel.ROM, error)
	GetCollectionLaunchers(collectionID string) (map[string]any, error)
	GetROMLauncherSettings(romID, launcherID string) (map[string]any, error)
	GetCollectionLauncherSettings(collectionID, launcherID string) (map[string]any, error)
	GetCollectionScannerSettings(collectionID, scannerID string) (map[string]any, error)

	StoreLauncherSettings(data map[string]any) bool
	StoreScannerSettings(data map[string]any) bool
	StoreScannedROMs(data map[string]any) bool
	StoreDeadROMs(data map[string]any) bool
	StoreScrapedROM(data map[string]any) bool
	StoreScrapedROMs(data map[string]any) bool
}

var (
	_ CatalogAPI = (*Client)(nil)
	_ CatalogAPI = (*MockClient)(nil)
)
