package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type launcherSettings struct {
	LauncherID string `json:"launcher_id"`
	Args       string `json:"args"`
}

func TestDecodeMap(t *testing.T) {
	m := map[string]any{"launcher_id": "retroarch", "args": "-f", "unknown": 1}

	s, err := DecodeMap[launcherSettings](m)
	require.NoError(t, err)
	assert.Equal(t, "retroarch", s.LauncherID)
	assert.Equal(t, "-f", s.Args)

	_, err = DecodeMapStrict[launcherSettings](m)
	assert.Error(t, err, "strict decode should reject unknown keys")

	delete(m, "unknown")
	s, err = DecodeMapStrict[launcherSettings](m)
	require.NoError(t, err)
	assert.Equal(t, "retroarch", s.LauncherID)
}

func TestToMap(t *testing.T) {
	m, err := ToMap(launcherSettings{LauncherID: "mame", Args: ""})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"launcher_id": "mame", "args": ""}, m)

	_, err = ToMap([]string{"not", "an", "object"})
	assert.Error(t, err)
}
