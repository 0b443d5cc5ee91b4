package romscan

import (
	"context"

	"github.com/ael-launcher/catalog/pkg/aelapi"
	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/ael-launcher/catalog/pkg/clog"
	"github.com/apex/log"
	"github.com/pkg/errors"
)

var ErrStoreRejected = errors.New("catalog rejected store")

// SyncReport summarizes one Sync. AddedIDs and DeadIDs are the ids sent to the catalog.
type SyncReport struct {
	Scanned  int
	Known    int
	AddedIDs []string
	DeadIDs  []string
}

// Syncer reconciles a ROM collection in the catalog with what a Scanner finds on disk.
type Syncer struct {
	API aelapi.CatalogAPI
	log *log.Entry
}

func NewSyncer(api aelapi.CatalogAPI, logger *log.Entry) *Syncer {
	if logger == nil {
		logger = clog.UsingCtx(clog.ScannerCtx)
	}

	return &Syncer{API: api, log: logger}
}

// Sync scans with scanner, posts files the collection doesn't know yet as scanned ROMs
// and posts ROMs whose file is gone as dead ROMs. Files are matched by filename. Only
// ROMs this scanner recorded, and that have a file, can be reported dead.
func (s *Syncer) Sync(ctx context.Context, collectionID string, scanner *Scanner) (*SyncReport, error) {
	known, err := s.API.GetROMsInCollection(collectionID)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching roms of collection %s", collectionID)
	}

	scanned, err := scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}

	report := &SyncReport{Scanned: len(scanned), Known: len(known)}

	knownFiles := make(map[string]bool, len(known))
	for _, rom := range known {
		if file, ok := rom.GetFile(); ok {
			knownFiles[file.Path()] = true
		}
	}

	var added []*aelmodel.ROM
	for _, rom := range scanned {
		if !knownFiles[filenameOf(rom)] {
			added = append(added, rom)
		}
	}

	for _, rom := range FindDeadROMs(ownedROMs(known, scanner.ScannerID)) {
		if id, ok := rom.GetID(); ok && id != "" {
			report.DeadIDs = append(report.DeadIDs, id)
		}
	}

	if len(added) > 0 {
		payload, err := aelmodel.ScannedROMs{
			ROMCollectionID: collectionID,
			ScannerID:       scanner.ScannerID,
			ROMs:            aelmodel.ROMsData(added),
		}.ToMap()
		if err != nil {
			return nil, err
		}

		if !s.API.StoreScannedROMs(payload) {
			return nil, errors.Wrapf(ErrStoreRejected, "storing %d scanned roms", len(added))
		}

		for _, rom := range added {
			id, _ := rom.GetID()
			report.AddedIDs = append(report.AddedIDs, id)
		}
	}

	if len(report.DeadIDs) > 0 {
		payload, err := aelmodel.DeadROMs{
			ROMCollectionID: collectionID,
			ScannerID:       scanner.ScannerID,
			ROMIDs:          report.DeadIDs,
		}.ToMap()
		if err != nil {
			return nil, err
		}

		if !s.API.StoreDeadROMs(payload) {
			return nil, errors.Wrapf(ErrStoreRejected, "storing %d dead roms", len(report.DeadIDs))
		}
	}

	s.log.WithFields(log.Fields{
		"romcollection_id": collectionID,
		"scanned":          report.Scanned,
		"added":            len(report.AddedIDs),
		"dead":             len(report.DeadIDs),
	}).Info("collection synced")

	return report, nil
}

// ownedROMs returns the ROMs recorded by scannerID that carry a file reference. ROMs from
// other scanners or added without a file are never the scanner's to remove. A scanner
// without an id owns nothing.
func ownedROMs(roms []*aelmodel.ROM, scannerID string) []*aelmodel.ROM {
	if scannerID == "" {
		return nil
	}

	var owned []*aelmodel.ROM
	for _, rom := range roms {
		scannedBy, _ := rom.GetScannedBy()
		if scannedBy != scannerID {
			continue
		}

		if _, ok := rom.GetFile(); !ok {
			continue
		}

		owned = append(owned, rom)
	}

	return owned
}
