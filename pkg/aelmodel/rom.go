package aelmodel

import (
	"github.com/ael-launcher/catalog/pkg/aelpath"
)

// ROM is a single playable title in the catalog. It carries the generic metadata
// accessors plus the ROM-only fields (file, platform, scanner, resolved asset paths).
type ROM struct {
	MetaData
}

func NewROM(entityData map[string]any) *ROM {
	return &ROM{MetaData: *NewMetaData(entityData)}
}

// NewROMFromTemplate starts a ROM for which no metadata is known yet. Every recognized
// key is present with an empty value.
func NewROMFromTemplate() *ROM {
	return NewROM(ROMDataTemplate())
}

// ROMDataTemplate returns the canonical shape of a ROM with every recognized field set
// to its empty value. Each call returns fresh maps.
func ROMDataTemplate() map[string]any {
	return map[string]any{
		FieldID:          "",
		FieldName:        "",
		FieldYear:        "",
		FieldGenre:       "",
		FieldDeveloper:   "",
		FieldRating:      "",
		FieldPlot:        "",
		FieldNPlayers:    "",
		FieldESRB:        "",
		FieldPlatform:    "",
		FieldFilename:    "",
		FieldScannedByID: "",
		FieldAssets:      map[string]any{},
		FieldAssetPaths:  map[string]any{},
	}
}

func (r *ROM) GetScannedBy() (string, bool) {
	return r.text(FieldScannedByID)
}

func (r *ROM) SetScannedBy(scannerID string) {
	r.data()[FieldScannedByID] = scannerID
}

func (r *ROM) SetFile(file aelpath.FileName) {
	r.data()[FieldFilename] = file.Path()
}

// GetFile returns the launchable file of the ROM, or ok == false when no path, or an
// empty one, is stored.
func (r *ROM) GetFile() (aelpath.FileName, bool) {
	path, ok := r.text(FieldFilename)
	if !ok || path == "" {
		return aelpath.FileName{}, false
	}

	return aelpath.NewFileName(path), true
}

func (r *ROM) SetPlatform(platform string) {
	r.data()[FieldPlatform] = platform
}

func (r *ROM) GetPlatform() (string, bool) {
	return r.text(FieldPlatform)
}

// GetAssetPath looks up the resolved file path of an asset kind in asset_paths. This is
// independent of the assets map, a kind can be in one and not the other.
func (r *ROM) GetAssetPath(assetKind string) (string, bool) {
	assetPaths, ok := r.nestedMap(FieldAssetPaths)
	if !ok {
		return "", false
	}

	return toText(assetPaths[assetKind])
}

func (r *ROM) SetAssetPath(assetKind, path string) {
	r.ensureNestedMap(FieldAssetPaths)[assetKind] = path
}
