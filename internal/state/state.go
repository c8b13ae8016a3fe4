package state

import "sync"

type Phase int

const (
	IDLE Phase = iota
	RENDERING
	DONE
	ERROR
)

func (p Phase) String() string {
	switch p {
	case RENDERING:
		return "rendering"
	case DONE:
		return "done"
	case ERROR:
		return "error"
	default:
		return "idle"
	}
}

// RenderInfo describes the most recent render.
type RenderInfo struct {
	Path          string
	BytesWritten  int64
	FallbackFonts bool
	Renders       int
	Err           string
}

type State struct {
	Phase  Phase
	Render RenderInfo
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: IDLE}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

// Finish records the outcome of a render and moves to DONE or ERROR.
func (store *Store) Finish(info RenderInfo) {
	store.mu.Lock()
	info.Renders = store.state.Render.Renders + 1
	store.state.Render = info
	if info.Err != "" {
		store.state.Phase = ERROR
	} else {
		store.state.Phase = DONE
	}
	store.mu.Unlock()
}
