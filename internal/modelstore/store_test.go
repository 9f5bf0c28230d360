package modelstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fake struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "models"))
	require.NoError(t, err)

	in := fake{Name: "trend", Values: []float64{1.5, -2, 0}}
	require.NoError(t, store.Save("trend", in))

	var out fake
	ok, err := store.Load("trend", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestLoadMissingIsColdStart(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	var out fake
	ok, err := store.Load("nope", &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, out)
}

func TestSaveOverwrites(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("m", fake{Name: "old"}))
	require.NoError(t, store.Save("m", fake{Name: "new"}))

	var out fake
	ok, err := store.Load("m", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", out.Name)
}
