package aelmodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateEntityHasEveryField(t *testing.T) {
	rom := NewROMFromTemplate()

	id, ok := rom.GetID()
	assert.True(t, ok, "template id should be present")
	assert.Equal(t, "", id)

	getters := map[string]func() (string, bool){
		"name":      rom.GetName,
		"year":      rom.GetReleaseYear,
		"genre":     rom.GetGenre,
		"developer": rom.GetDeveloper,
		"plot":      rom.GetPlot,
		"nplayers":  rom.GetNumberOfPlayers,
		"esrb":      rom.GetESRBRating,
		"platform":  rom.GetPlatform,
		"scannedBy": rom.GetScannedBy,
	}

	for name, get := range getters {
		val, ok := get()
		assert.Truef(t, ok, "getter %s should report a value on a template entity", name)
		assert.Equalf(t, "", val, "getter %s", name)
	}

	_, _, err := rom.GetRating()
	assert.NoError(t, err, "template carries m_rating so the rating getter must not fail")

	for _, field := range RecognizedFields {
		assert.Containsf(t, rom.GetData(), field, "template is missing %s", field)
	}
}

func TestTemplateReturnsFreshMaps(t *testing.T) {
	first := NewROMFromTemplate()
	first.SetAsset("boxfront", "/a.png")
	first.SetAssetPath("boxfront", "/b.png")

	second := NewROMFromTemplate()
	assert.False(t, second.HasAsset("boxfront"))
	_, ok := second.GetAssetPath("boxfront")
	assert.False(t, ok)
}

func TestEmptyEntityReportsNoValue(t *testing.T) {
	for _, entity := range []Entity{NewMetaData(nil), NewROM(map[string]any{})} {
		_, ok := entity.GetID()
		assert.False(t, ok)

		getters := []func() (string, bool){
			entity.GetName,
			entity.GetReleaseYear,
			entity.GetGenre,
			entity.GetDeveloper,
			entity.GetPlot,
			entity.GetNumberOfPlayers,
			entity.GetESRBRating,
		}

		for i, get := range getters {
			_, ok := get()
			assert.Falsef(t, ok, "getter %d should report no value", i)
		}

		_, _, err := entity.GetRating()
		assert.ErrorIs(t, err, ErrMissingField)
	}

	rom := NewROM(nil)
	_, ok := rom.GetPlatform()
	assert.False(t, ok)
	_, ok = rom.GetScannedBy()
	assert.False(t, ok)
	_, ok = rom.GetFile()
	assert.False(t, ok)
	_, ok = rom.GetAssetPath("boxfront")
	assert.False(t, ok)
}

func TestZeroValueEntityIsUsable(t *testing.T) {
	var rom ROM
	rom.SetName("Zero")

	name, ok := rom.GetName()
	assert.True(t, ok)
	assert.Equal(t, "Zero", name)
}

func TestSetRating(t *testing.T) {
	tests := []struct {
		in         any
		wantStored any
		wantRating int
		wantOK     bool
		name       string
	}{
		{in: "7", wantStored: 7, wantRating: 7, wantOK: true, name: "Numeric string"},
		{in: " 12 ", wantStored: 12, wantRating: 12, wantOK: true, name: "Padded string"},
		{in: 9, wantStored: 9, wantRating: 9, wantOK: true, name: "Int"},
		{in: 7.9, wantStored: 7, wantRating: 7, wantOK: true, name: "Float is truncated"},
		{in: "abc", wantStored: "", wantOK: false, name: "Not a number"},
		{in: "7.5", wantStored: "", wantOK: false, name: "Decimal string"},
		{in: nil, wantStored: "", wantOK: false, name: "Nil"},
		{in: []int{1}, wantStored: "", wantOK: false, name: "Unsupported type"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rom := NewROM(nil)
			rom.SetRating(test.in)
			assert.Equal(t, test.wantStored, rom.GetCustomAttribute(FieldRating, nil))

			rating, ok, err := rom.GetRating()
			require.NoError(t, err)
			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.wantRating, rating)
		})
	}
}

func TestGetRatingFromServerValues(t *testing.T) {
	tests := []struct {
		value   any
		rating  int
		ok      bool
		wantErr error
		name    string
	}{
		{value: float64(8), rating: 8, ok: true, name: "JSON number"},
		{value: "5", rating: 5, ok: true, name: "JSON string"},
		{value: "", ok: false, name: "Empty string"},
		{value: nil, ok: false, name: "Null"},
		{value: float64(0), ok: false, name: "Zero"},
		{value: "great", ok: false, wantErr: ErrInvalidValue, name: "Garbage"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rom := NewROM(map[string]any{FieldRating: test.value})
			rating, ok, err := rom.GetRating()
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.rating, rating)
		})
	}
}

func TestHasAsset(t *testing.T) {
	rom := NewROM(nil)

	_, err := rom.HasAssetCompat("boxfront")
	assert.ErrorIs(t, err, ErrMissingField, "compat check fails when there is no assets map")
	assert.False(t, rom.HasAsset("boxfront"))

	rom.SetAsset("boxfront", "/path/x.png")

	// Once an assets map exists the compat check answers false for every kind,
	// including the one just stored.
	for _, kind := range []string{"boxfront", "fanart"} {
		has, err := rom.HasAssetCompat(kind)
		require.NoError(t, err)
		assert.Falsef(t, has, "compat check for %s", kind)
	}

	assert.True(t, rom.HasAsset("boxfront"))
	assert.False(t, rom.HasAsset("fanart"))

	path, ok := rom.GetAsset("boxfront")
	assert.True(t, ok)
	assert.Equal(t, "/path/x.png", path)
}

func TestAssetMapsBuiltByCaller(t *testing.T) {
	rom := NewROM(map[string]any{
		FieldAssets:     map[string]string{"boxfront": "/a.png"},
		FieldAssetPaths: map[string]string{"snap": "/snap.png"},
	})

	assert.True(t, rom.HasAsset("boxfront"))
	rom.SetAsset("fanart", "/f.png")
	assert.True(t, rom.HasAsset("boxfront"), "existing entries survive conversion")
	assert.True(t, rom.HasAsset("fanart"))

	path, ok := rom.GetAssetPath("snap")
	assert.True(t, ok)
	assert.Equal(t, "/snap.png", path)
}

func TestCustomAttributes(t *testing.T) {
	m := NewMetaData(map[string]any{"m_publisher": "Nintendo"})

	assert.Equal(t, "Nintendo", m.GetCustomAttribute("m_publisher", "n/a"))
	assert.Equal(t, "n/a", m.GetCustomAttribute("m_region", "n/a"))

	m.SetCustomAttribute("m_region", "EU")
	assert.Equal(t, "EU", m.GetCustomAttribute("m_region", nil))
	assert.Equal(t, "EU", m.GetData()["m_region"])
}

func TestEntityJSON(t *testing.T) {
	payload := `[{"id":"1","m_name":"Game A","m_year":1993,"m_rating":8,"m_custom":{"a":1}}]`

	var roms []*ROM
	require.NoError(t, json.Unmarshal([]byte(payload), &roms))
	require.Len(t, roms, 1)

	rom := roms[0]
	id, _ := rom.GetID()
	assert.Equal(t, "1", id)
	name, _ := rom.GetName()
	assert.Equal(t, "Game A", name)
	year, _ := rom.GetReleaseYear()
	assert.Equal(t, "1993", year)
	rating, ok, err := rom.GetRating()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 8, rating)

	rom.SetGenre("Platform")
	b, err := json.Marshal(rom)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, "Platform", back[FieldGenre])
	assert.Equal(t, map[string]any{"a": float64(1)}, back["m_custom"], "unknown fields survive")
}
