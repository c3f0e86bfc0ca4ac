package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseNamesAndTerminal(t *testing.T) {
	assert.Equal(t, "not-started", NOT_STARTED.String())
	assert.Equal(t, "skipped", SKIPPED.String())
	assert.Equal(t, "unknown", Phase(99).String())

	for _, p := range []Phase{SKIPPED, DONE, FAILED} {
		assert.True(t, p.Terminal(), p.String())
	}
	for _, p := range []Phase{NOT_STARTED, CHECK_TOOL_AVAILABLE, STAGING, POPULATED, INVOKED} {
		assert.False(t, p.Terminal(), p.String())
	}
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	store := NewStore()
	assert.Equal(t, NOT_STARTED, store.Snapshot().Phase)

	store.AddArtifact(Artifact{Path: "icon.png", Kind: "png", Size: 1024})
	snap := store.Snapshot()
	snap.Artifacts[0].Path = "mutated"
	assert.Equal(t, "icon.png", store.Snapshot().Artifacts[0].Path)
}

func TestStoreFail(t *testing.T) {
	store := NewStore()
	store.SetPhase(INVOKED)
	store.Fail(errors.New("exit 1"))
	snap := store.Snapshot()
	assert.Equal(t, FAILED, snap.Phase)
	assert.Equal(t, "exit 1", snap.Err)
}
