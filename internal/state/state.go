package state

import "sync"

// Phase tracks the platform container packager.
type Phase int

const (
	NOT_STARTED Phase = iota
	CHECK_TOOL_AVAILABLE
	SKIPPED
	STAGING
	POPULATED
	INVOKED
	DONE
	FAILED
)

var phaseNames = map[Phase]string{
	NOT_STARTED:          "not-started",
	CHECK_TOOL_AVAILABLE: "check-tool-available",
	SKIPPED:              "skipped",
	STAGING:              "staging",
	POPULATED:            "populated",
	INVOKED:              "invoked",
	DONE:                 "done",
	FAILED:               "failed",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition is possible.
func (p Phase) Terminal() bool {
	return p == SKIPPED || p == DONE || p == FAILED
}

// Artifact is one file written by a run.
type Artifact struct {
	Path string
	Kind string // png, ico, icns
	Size int    // edge in pixels; 0 for multi-size containers
}

type State struct {
	Phase     Phase
	Artifacts []Artifact
	Err       string
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: NOT_STARTED}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snap := store.state
	snap.Artifacts = append([]Artifact(nil), store.state.Artifacts...)
	return snap
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

// Fail moves the packager to FAILED and records why.
func (store *Store) Fail(err error) {
	store.mu.Lock()
	store.state.Phase = FAILED
	if err != nil {
		store.state.Err = err.Error()
	}
	store.mu.Unlock()
}

func (store *Store) AddArtifact(artifact Artifact) {
	store.mu.Lock()
	store.state.Artifacts = append(store.state.Artifacts, artifact)
	store.mu.Unlock()
}
