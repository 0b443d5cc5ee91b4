package aelapi_test

import (
	"testing"

	"github.com/ael-launcher/catalog/pkg/aelapi"
	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/ael-launcher/catalog/pkg/config"
	"github.com/ael-launcher/catalog/pkg/tutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAgainstStubCatalog(t *testing.T) {
	host, port := tutil.StartStubCatalog(t, nil)
	client := aelapi.NewClient(host, port, nil)

	scanned, err := aelmodel.ScannedROMs{
		ROMCollectionID: "col-1",
		ScannerID:       "files",
		ROMs: []map[string]any{
			{"id": "rom-1", "m_name": "Game A"},
			{"id": "rom-2", "m_name": "Game B"},
		},
	}.ToMap()
	require.NoError(t, err)
	require.True(t, client.StoreScannedROMs(scanned))

	roms, err := client.GetROMsInCollection("col-1")
	require.NoError(t, err)
	require.Len(t, roms, 2)
	scannedBy, _ := roms[0].GetScannedBy()
	assert.Equal(t, "files", scannedBy)

	rom, err := client.GetROM("rom-2")
	require.NoError(t, err)
	rom.SetGenre("Puzzle")
	rom.SetRating(7)
	require.True(t, client.StoreScrapedROM(rom.GetData()))

	rom, err = client.GetROM("rom-2")
	require.NoError(t, err)
	genre, _ := rom.GetGenre()
	assert.Equal(t, "Puzzle", genre)
	rating, ok, err := rom.GetRating()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, rating)

	launcher, err := aelmodel.LauncherSettings{
		ROMCollectionID: "col-1",
		LauncherID:      "retroarch",
		AddonID:         "plugin.program.ael.retroarch",
		Settings:        map[string]any{"core": "snes9x"},
	}.ToMap()
	require.NoError(t, err)
	require.True(t, client.StoreLauncherSettings(launcher))

	launchers, err := client.GetCollectionLaunchers("col-1")
	require.NoError(t, err)
	assert.Contains(t, launchers, "retroarch")

	settings, err := client.GetCollectionLauncherSettings("col-1", "retroarch")
	require.NoError(t, err)
	assert.Equal(t, "snes9x", settings["core"])

	settings, err = client.GetROMLauncherSettings("rom-1", "retroarch")
	require.NoError(t, err)
	assert.Empty(t, settings)

	dead, err := aelmodel.DeadROMs{ROMCollectionID: "col-1", ScannerID: "files", ROMIDs: []string{"rom-1"}}.ToMap()
	require.NoError(t, err)
	require.True(t, client.StoreDeadROMs(dead))

	_, err = client.GetROM("rom-1")
	assert.ErrorIs(t, err, aelapi.ErrCatalogAPI)

	assert.False(t, client.StoreScrapedROM(map[string]any{"m_name": "no id"}))
}

func TestClientIntegration(t *testing.T) {
	if !tutil.IsIntegrationTest() {
		t.Skip("set AEL_TEST=integration to run against a real catalog")
	}

	c := config.NewViperConfig("")
	require.NoError(t, c.Load())

	client := aelapi.NewClientFromConfig(c, nil)
	_, err := client.GetCollectionLaunchers("does-not-exist")
	require.NoError(t, err)
}
