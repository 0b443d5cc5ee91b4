package aelpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileNameParts(t *testing.T) {
	tests := []struct {
		path string
		base string
		stem string
		ext  string
		name string
	}{
		{path: "/roms/nes/Super Mario Bros.NES", base: "Super Mario Bros.NES", stem: "Super Mario Bros", ext: ".nes", name: "Upper case extension"},
		{path: "/roms/snes/zelda.sfc", base: "zelda.sfc", stem: "zelda", ext: ".sfc", name: "Simple file"},
		{path: "/roms/readme", base: "readme", stem: "readme", ext: "", name: "No extension"},
		{path: "", base: "", stem: "", ext: "", name: "Empty path"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := NewFileName(test.path)
			assert.Equal(t, test.base, f.Base())
			assert.Equal(t, test.stem, f.Stem())
			assert.Equal(t, test.ext, f.Ext())
			assert.Equal(t, test.path == "", f.IsEmpty())
			assert.Equal(t, test.path, f.String())
		})
	}
}

func TestFileNameExists(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "game.zip")
	require.NoError(t, os.WriteFile(romPath, []byte("rom"), 0644))

	assert.True(t, NewFileName(romPath).Exists())
	assert.False(t, NewFileName(dir).Exists(), "directories are not launchable files")
	assert.False(t, NewFileName(filepath.Join(dir, "missing.zip")).Exists())
	assert.False(t, FileName{}.Exists())

	assert.Equal(t, romPath, NewFileName(dir).Join("game.zip").Path())
	assert.Equal(t, dir, NewFileName(romPath).Dir())
}
