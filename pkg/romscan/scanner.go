package romscan

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/ael-launcher/catalog/pkg/aelpath"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/saracen/walker"
)

// Scanner finds launchable files under Root. Every regular file whose extension is in
// Extensions becomes a ROM. An empty Extensions list accepts every file.
type Scanner struct {
	Root       string
	Extensions []string
	Platform   string
	ScannerID  string
}

// Scan walks Root and returns a ROM for every matching file, sorted by filename. The ROMs
// start from the ROM template, so every recognized field is present.
func (s *Scanner) Scan(ctx context.Context) ([]*aelmodel.ROM, error) {
	if s.Root == "" {
		return nil, errors.New("scanner root not set")
	}

	root, err := filepath.Abs(s.Root)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving scanner root %s", s.Root)
	}

	if fi, err := os.Stat(root); err != nil {
		return nil, errors.Wrapf(err, "scanner root %s", root)
	} else if !fi.IsDir() {
		return nil, errors.Errorf("scanner root %s is not a directory", root)
	}

	extensions := normalizeExtensions(s.Extensions)

	var (
		mu   sync.Mutex
		roms []*aelmodel.ROM
	)

	// walker calls the callback from several goroutines.
	walkFn := func(pathname string, fi os.FileInfo) error {
		if !fi.Mode().IsRegular() {
			return nil
		}

		file := aelpath.NewFileName(pathname)
		if !matchesExtension(extensions, file.Ext()) {
			return nil
		}

		rom := s.newROM(root, file)

		mu.Lock()
		roms = append(roms, rom)
		mu.Unlock()

		return nil
	}

	if err := walker.WalkWithContext(ctx, root, walkFn); err != nil {
		return nil, errors.Wrapf(err, "scanning %s", root)
	}

	sort.Slice(roms, func(i, j int) bool {
		return filenameOf(roms[i]) < filenameOf(roms[j])
	})
	uniqueIDs(root, roms)

	return roms, nil
}

func (s *Scanner) newROM(root string, file aelpath.FileName) *aelmodel.ROM {
	rom := aelmodel.NewROMFromTemplate()
	rom.SetFile(file)
	rom.SetName(file.Stem())
	rom.SetPlatform(s.Platform)
	rom.SetScannedBy(s.ScannerID)

	rom.SetCustomAttribute(aelmodel.FieldID, slug.Make(relativePath(root, file)))

	return rom
}

// uniqueIDs keeps slug ids distinct. Slugs drop path separators and punctuation, so
// "a/b.nes" and "a-b.nes" share one. The first rom in filename order keeps the plain
// slug; later ones get a hash of their relative path appended.
func uniqueIDs(root string, roms []*aelmodel.ROM) {
	seen := make(map[string]bool, len(roms))
	for _, rom := range roms {
		id, _ := rom.GetID()
		if seen[id] {
			file, _ := rom.GetFile()
			id = fmt.Sprintf("%s-%08x", id, pathHash(relativePath(root, file)))
			rom.SetCustomAttribute(aelmodel.FieldID, id)
		}
		seen[id] = true
	}
}

func relativePath(root string, file aelpath.FileName) string {
	relPath, err := filepath.Rel(root, file.Path())
	if err != nil {
		return file.Base()
	}

	return relPath
}

func pathHash(path string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(filepath.ToSlash(path)))
	return h.Sum32()
}

// FindDeadROMs returns the ROMs whose file reference is missing or no longer points at a
// regular file.
func FindDeadROMs(roms []*aelmodel.ROM) []*aelmodel.ROM {
	var dead []*aelmodel.ROM
	for _, rom := range roms {
		file, ok := rom.GetFile()
		if !ok || !file.Exists() {
			dead = append(dead, rom)
		}
	}

	return dead
}

func normalizeExtensions(extensions []string) map[string]bool {
	normalized := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		normalized[ext] = true
	}

	return normalized
}

func matchesExtension(extensions map[string]bool, ext string) bool {
	if len(extensions) == 0 {
		return true
	}

	return extensions[ext]
}

func filenameOf(rom *aelmodel.ROM) string {
	file, _ := rom.GetFile()
	return file.Path()
}
