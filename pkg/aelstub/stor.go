package aelstub

import (
	"errors"

	"github.com/ael-launcher/catalog/pkg/aelmodel"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrInvalidROM = errors.New("invalid rom")
)

// CatalogStor holds the state behind the stub catalog server. Query methods return
// copies; settings that were never stored come back as an empty mapping.
type CatalogStor interface {
	GetROM(romID string) (map[string]any, error)
	ListCollectionROMs(collectionID string) ([]map[string]any, error)
	ListCollectionLaunchers(collectionID string) (map[string]any, error)
	GetROMLauncherSettings(romID, launcherID string) (map[string]any, error)
	GetCollectionLauncherSettings(collectionID, launcherID string) (map[string]any, error)
	GetCollectionScannerSettings(collectionID, scannerID string) (map[string]any, error)

	SaveLauncherSettings(settings aelmodel.LauncherSettings) error
	SaveScannerSettings(settings aelmodel.ScannerSettings) error

	// AddROMs adds roms to the end of a collection and returns their ids in order.
	// ROMs without an id get a generated one; a ROM whose id is already known
	// replaces the stored one and keeps its position.
	AddROMs(collectionID string, roms []map[string]any) ([]string, error)
	RemoveROMs(collectionID string, romIDs []string) error

	// UpdateROM merges the fields of rom into the stored ROM with the same id.
	UpdateROM(rom map[string]any) error
}

func romIDOf(rom map[string]any) string {
	id, _ := rom[aelmodel.FieldID].(string)
	return id
}
