package aelstub

import (
	"maps"
	"sync"

	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/hashicorp/go-uuid"
)

type InMemoryCatalogStor struct {
	// Can be used to simulate an error by setting it.
	ErrorToReturn error

	mu                  sync.Mutex
	roms                map[string]map[string]any
	collections         map[string][]string
	romLaunchers        map[string]aelmodel.LauncherSettings
	collectionLaunchers map[string]map[string]aelmodel.LauncherSettings
	scanners            map[string]aelmodel.ScannerSettings
}

func NewInMemoryCatalogStor() *InMemoryCatalogStor {
	return &InMemoryCatalogStor{
		roms:                make(map[string]map[string]any),
		collections:         make(map[string][]string),
		romLaunchers:        make(map[string]aelmodel.LauncherSettings),
		collectionLaunchers: make(map[string]map[string]aelmodel.LauncherSettings),
		scanners:            make(map[string]aelmodel.ScannerSettings),
	}
}

func (s *InMemoryCatalogStor) GetROM(romID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return nil, s.ErrorToReturn
	}

	rom, ok := s.roms[romID]
	if !ok {
		return nil, ErrNotFound
	}

	return maps.Clone(rom), nil
}

func (s *InMemoryCatalogStor) ListCollectionROMs(collectionID string) ([]map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return nil, s.ErrorToReturn
	}

	roms := make([]map[string]any, 0, len(s.collections[collectionID]))
	for _, romID := range s.collections[collectionID] {
		roms = append(roms, maps.Clone(s.roms[romID]))
	}

	return roms, nil
}

func (s *InMemoryCatalogStor) ListCollectionLaunchers(collectionID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return nil, s.ErrorToReturn
	}

	launchers := make(map[string]any)
	for launcherID, settings := range s.collectionLaunchers[collectionID] {
		m, err := settings.ToMap()
		if err != nil {
			return nil, err
		}
		launchers[launcherID] = m
	}

	return launchers, nil
}

func (s *InMemoryCatalogStor) GetROMLauncherSettings(romID, launcherID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return nil, s.ErrorToReturn
	}

	return settingsOrEmpty(s.romLaunchers[romID+"|"+launcherID].Settings), nil
}

func (s *InMemoryCatalogStor) GetCollectionLauncherSettings(collectionID, launcherID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return nil, s.ErrorToReturn
	}

	return settingsOrEmpty(s.collectionLaunchers[collectionID][launcherID].Settings), nil
}

func (s *InMemoryCatalogStor) GetCollectionScannerSettings(collectionID, scannerID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return nil, s.ErrorToReturn
	}

	return settingsOrEmpty(s.scanners[collectionID+"|"+scannerID].Settings), nil
}

func (s *InMemoryCatalogStor) SaveLauncherSettings(settings aelmodel.LauncherSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return s.ErrorToReturn
	}

	if settings.ROMID != "" {
		s.romLaunchers[settings.ROMID+"|"+settings.LauncherID] = settings
		return nil
	}

	launchers, ok := s.collectionLaunchers[settings.ROMCollectionID]
	if !ok {
		launchers = make(map[string]aelmodel.LauncherSettings)
		s.collectionLaunchers[settings.ROMCollectionID] = launchers
	}
	launchers[settings.LauncherID] = settings

	return nil
}

func (s *InMemoryCatalogStor) SaveScannerSettings(settings aelmodel.ScannerSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return s.ErrorToReturn
	}

	s.scanners[settings.ROMCollectionID+"|"+settings.ScannerID] = settings
	return nil
}

func (s *InMemoryCatalogStor) AddROMs(collectionID string, roms []map[string]any) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return nil, s.ErrorToReturn
	}

	ids := make([]string, 0, len(roms))
	for _, rom := range roms {
		rom = maps.Clone(rom)
		if rom == nil {
			rom = make(map[string]any)
		}

		romID := romIDOf(rom)
		if romID == "" {
			var err error
			if romID, err = uuid.GenerateUUID(); err != nil {
				return nil, err
			}
			rom[aelmodel.FieldID] = romID
		}

		if _, known := s.roms[romID]; !known {
			s.collections[collectionID] = append(s.collections[collectionID], romID)
		}

		s.roms[romID] = rom
		ids = append(ids, romID)
	}

	return ids, nil
}

func (s *InMemoryCatalogStor) RemoveROMs(collectionID string, romIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return s.ErrorToReturn
	}

	dead := make(map[string]bool, len(romIDs))
	for _, romID := range romIDs {
		dead[romID] = true
	}

	var remaining []string
	for _, romID := range s.collections[collectionID] {
		if dead[romID] {
			delete(s.roms, romID)
			continue
		}
		remaining = append(remaining, romID)
	}
	s.collections[collectionID] = remaining

	return nil
}

func (s *InMemoryCatalogStor) UpdateROM(rom map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return s.ErrorToReturn
	}

	romID := romIDOf(rom)
	if romID == "" {
		return ErrInvalidROM
	}

	stored, ok := s.roms[romID]
	if !ok {
		return ErrNotFound
	}

	maps.Copy(stored, rom)
	return nil
}

func settingsOrEmpty(settings map[string]any) map[string]any {
	if settings == nil {
		return map[string]any{}
	}

	return maps.Clone(settings)
}
