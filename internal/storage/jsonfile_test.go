package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name    string  `json:"name"`
	Counter int     `json:"counter"`
	Price   float64 `json:"price"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")

	in := payload{Name: "Widget", Counter: 7, Price: 33.33}
	require.NoError(t, Save(path, in))

	var out payload
	require.NoError(t, Load(path, &out))
	assert.Equal(t, in, out)
}

func TestLoadMissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "absent.json"), &payload{})
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	err := Load(path, &payload{})
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.json")
	require.NoError(t, Save(path, payload{Name: "a"}))
	require.NoError(t, Save(path, payload{Name: "b"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".tmp-"), "temp file left behind: %s", e.Name())
	}

	var out payload
	require.NoError(t, Load(path, &out))
	assert.Equal(t, "b", out.Name)
}
