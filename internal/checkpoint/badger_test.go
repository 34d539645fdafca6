package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerStoreSaveAndLoadRoundTrip(t *testing.T) {
	reg := seedRegistry()
	doc := FromRegistry(reg, nil, 3, NewCheckpointID())

	store, err := OpenBadgerStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(doc))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, doc.Header.CheckpointID, loaded.Header.CheckpointID)
	assert.Equal(t, uint64(3), loaded.Header.Scn)
	require.Len(t, loaded.User, 1)
	assert.Equal(t, "HR", loaded.User[0].Name)
}

func TestBadgerStoreLoadWithoutSaveFailsValidation(t *testing.T) {
	store, err := OpenBadgerStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load()
	require.Error(t, err, "loading from an empty store has schema_version 0, which must fail structural validation")
}
