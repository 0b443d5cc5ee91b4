package aelstub

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/ael-launcher/catalog/pkg/lock"
	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ROMRow stores one ROM. Data is the ROM's entity data as JSON.
type ROMRow struct {
	ID           string `gorm:"primaryKey;size:64"`
	CollectionID string `gorm:"index;size:64"`
	Position     int
	Data         string
}

func (ROMRow) TableName() string {
	return "stub_roms"
}

const (
	settingsKindROMLauncher        = "rom_launcher"
	settingsKindCollectionLauncher = "collection_launcher"
	settingsKindCollectionScanner  = "collection_scanner"
)

// SettingsRow stores a posted settings body as JSON. OwnerID is the ROM or collection id,
// RefID the launcher or scanner id.
type SettingsRow struct {
	Kind    string `gorm:"primaryKey;size:32"`
	OwnerID string `gorm:"primaryKey;size:64"`
	RefID   string `gorm:"primaryKey;size:64"`
	Data    string
}

func (SettingsRow) TableName() string {
	return "stub_settings"
}

// CreateTables creates the tables GormCatalogStor needs.
func CreateTables(db *gorm.DB) error {
	return db.AutoMigrate(&ROMRow{}, &SettingsRow{})
}

// GormCatalogStor keeps the catalog in a database. Writes to the same collection or ROM
// are serialized in process, positions and merges are read-modify-write.
type GormCatalogStor struct {
	db    *gorm.DB
	locks *lock.KeyLocker[string]
}

func NewGormCatalogStor(db *gorm.DB) *GormCatalogStor {
	return &GormCatalogStor{db: db, locks: lock.NewKeyLocker[string]()}
}

func (s *GormCatalogStor) GetROM(romID string) (map[string]any, error) {
	var row ROMRow
	if err := s.db.Where("id = ?", romID).First(&row).Error; err != nil {
		return nil, notFoundOr(err)
	}

	return decodeJSONMap(row.Data)
}

func (s *GormCatalogStor) ListCollectionROMs(collectionID string) ([]map[string]any, error) {
	var rows []ROMRow
	err := s.db.Where("collection_id = ?", collectionID).Order("position").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	roms := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		rom, err := decodeJSONMap(row.Data)
		if err != nil {
			return nil, err
		}
		roms = append(roms, rom)
	}

	return roms, nil
}

func (s *GormCatalogStor) ListCollectionLaunchers(collectionID string) (map[string]any, error) {
	var rows []SettingsRow
	err := s.db.Where("kind = ? AND owner_id = ?", settingsKindCollectionLauncher, collectionID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	launchers := make(map[string]any, len(rows))
	for _, row := range rows {
		launcher, err := decodeJSONMap(row.Data)
		if err != nil {
			return nil, err
		}
		launchers[row.RefID] = launcher
	}

	return launchers, nil
}

func (s *GormCatalogStor) GetROMLauncherSettings(romID, launcherID string) (map[string]any, error) {
	return s.getSettings(settingsKindROMLauncher, romID, launcherID)
}

func (s *GormCatalogStor) GetCollectionLauncherSettings(collectionID, launcherID string) (map[string]any, error) {
	return s.getSettings(settingsKindCollectionLauncher, collectionID, launcherID)
}

func (s *GormCatalogStor) GetCollectionScannerSettings(collectionID, scannerID string) (map[string]any, error) {
	return s.getSettings(settingsKindCollectionScanner, collectionID, scannerID)
}

func (s *GormCatalogStor) SaveLauncherSettings(settings aelmodel.LauncherSettings) error {
	if settings.ROMID != "" {
		return s.saveSettings(settingsKindROMLauncher, settings.ROMID, settings.LauncherID, settings)
	}

	return s.saveSettings(settingsKindCollectionLauncher, settings.ROMCollectionID, settings.LauncherID, settings)
}

func (s *GormCatalogStor) SaveScannerSettings(settings aelmodel.ScannerSettings) error {
	return s.saveSettings(settingsKindCollectionScanner, settings.ROMCollectionID, settings.ScannerID, settings)
}

func (s *GormCatalogStor) AddROMs(collectionID string, roms []map[string]any) ([]string, error) {
	ids := make([]string, 0, len(roms))

	s.locks.AcquireLock("collection:" + collectionID)
	defer s.locks.ReleaseLock("collection:" + collectionID)

	// A known id replaces its row, which must not interleave with an UpdateROM merge.
	unlock := s.lockROMs(roms)
	defer unlock()

	err := withTxRetry(s.db, func(tx *gorm.DB) error {
		ids = ids[:0]

		var lastPosition int
		err := tx.Model(&ROMRow{}).
			Where("collection_id = ?", collectionID).
			Select("COALESCE(MAX(position), -1)").
			Scan(&lastPosition).Error
		if err != nil {
			return err
		}

		for _, rom := range roms {
			if rom == nil {
				rom = make(map[string]any)
			}

			romID := romIDOf(rom)
			if romID == "" {
				if romID, err = uuid.GenerateUUID(); err != nil {
					return err
				}
				rom[aelmodel.FieldID] = romID
			}

			data, err := json.Marshal(rom)
			if err != nil {
				return err
			}

			var existing ROMRow
			err = tx.Where("id = ?", romID).First(&existing).Error
			switch {
			case err == nil:
				existing.Data = string(data)
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				lastPosition++
				row := ROMRow{ID: romID, CollectionID: collectionID, Position: lastPosition, Data: string(data)}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			default:
				return err
			}

			ids = append(ids, romID)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return ids, nil
}

// lockROMs takes the rom lock of every id in roms, in sorted order, and returns the
// function that releases them. ROMs without an id get a fresh one and need no lock.
func (s *GormCatalogStor) lockROMs(roms []map[string]any) func() {
	seen := make(map[string]bool, len(roms))
	var keys []string
	for _, rom := range roms {
		romID := romIDOf(rom)
		if romID == "" || seen[romID] {
			continue
		}
		seen[romID] = true
		keys = append(keys, "rom:"+romID)
	}

	sort.Strings(keys)
	for _, key := range keys {
		s.locks.AcquireLock(key)
	}

	return func() {
		for i := len(keys) - 1; i >= 0; i-- {
			s.locks.ReleaseLock(keys[i])
		}
	}
}

func (s *GormCatalogStor) RemoveROMs(collectionID string, romIDs []string) error {
	if len(romIDs) == 0 {
		return nil
	}

	return withTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Where("collection_id = ? AND id IN ?", collectionID, romIDs).Delete(&ROMRow{}).Error
	})
}

func (s *GormCatalogStor) UpdateROM(rom map[string]any) error {
	romID := romIDOf(rom)
	if romID == "" {
		return ErrInvalidROM
	}

	s.locks.AcquireLock("rom:" + romID)
	defer s.locks.ReleaseLock("rom:" + romID)

	return withTxRetry(s.db, func(tx *gorm.DB) error {
		var row ROMRow
		if err := tx.Where("id = ?", romID).First(&row).Error; err != nil {
			return notFoundOr(err)
		}

		stored, err := decodeJSONMap(row.Data)
		if err != nil {
			return err
		}

		for k, v := range rom {
			stored[k] = v
		}

		data, err := json.Marshal(stored)
		if err != nil {
			return err
		}

		return tx.Model(&row).Update("data", string(data)).Error
	})
}

func (s *GormCatalogStor) getSettings(kind, ownerID, refID string) (map[string]any, error) {
	var row SettingsRow
	err := s.db.Where("kind = ? AND owner_id = ? AND ref_id = ?", kind, ownerID, refID).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return map[string]any{}, nil
	case err != nil:
		return nil, err
	}

	stored, err := decodeJSONMap(row.Data)
	if err != nil {
		return nil, err
	}

	settings, ok := stored["settings"].(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}

	return settings, nil
}

func (s *GormCatalogStor) saveSettings(kind, ownerID, refID string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	row := SettingsRow{Kind: kind, OwnerID: ownerID, RefID: refID, Data: string(data)}
	return withTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	})
}

const txRetries = 3

func withTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error

	for i := 0; i < txRetries; i++ {
		err = db.Transaction(fn)
		if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidROM) {
			break
		}
	}

	return err
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return err
}

func decodeJSONMap(data string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return nil, err
	}

	if m == nil {
		m = make(map[string]any)
	}

	return m, nil
}
