package aelmodel

import (
	"github.com/ael-launcher/catalog/pkg/decoder"
)

// Bodies of the catalog store operations. The wire client posts plain mappings; these
// types are a convenience for building them (ToMap) and for reading them back on the
// server side.

// LauncherSettings is stored per collection or per ROM, exactly one of the two ids is set.
type LauncherSettings struct {
	ROMCollectionID string         `json:"romcollection_id,omitempty"`
	ROMID           string         `json:"rom_id,omitempty"`
	LauncherID      string         `json:"launcher_id"`
	AddonID         string         `json:"addon_id,omitempty"`
	Settings        map[string]any `json:"settings"`
}

type ScannerSettings struct {
	ROMCollectionID string         `json:"romcollection_id"`
	ScannerID       string         `json:"scanner_id"`
	AddonID         string         `json:"addon_id,omitempty"`
	Settings        map[string]any `json:"settings"`
}

// ScannedROMs announces ROMs a scanner found that the collection doesn't know yet.
type ScannedROMs struct {
	ROMCollectionID string           `json:"romcollection_id"`
	ScannerID       string           `json:"scanner_id"`
	ROMs            []map[string]any `json:"roms"`
}

// DeadROMs lists ROMs of a collection whose files are gone.
type DeadROMs struct {
	ROMCollectionID string   `json:"romcollection_id"`
	ScannerID       string   `json:"scanner_id"`
	ROMIDs          []string `json:"rom_ids"`
}

// ScrapedROMs carries ROMs whose metadata was updated by a scraper.
type ScrapedROMs struct {
	ROMs []map[string]any `json:"roms"`
}

func (p LauncherSettings) ToMap() (map[string]any, error) { return decoder.ToMap(p) }
func (p ScannerSettings) ToMap() (map[string]any, error)  { return decoder.ToMap(p) }
func (p ScannedROMs) ToMap() (map[string]any, error)      { return decoder.ToMap(p) }
func (p DeadROMs) ToMap() (map[string]any, error)         { return decoder.ToMap(p) }
func (p ScrapedROMs) ToMap() (map[string]any, error)      { return decoder.ToMap(p) }

// ROMsData collects the backing mappings of roms, in order.
func ROMsData(roms []*ROM) []map[string]any {
	data := make([]map[string]any, 0, len(roms))
	for _, rom := range roms {
		data = append(data, rom.GetData())
	}

	return data
}
