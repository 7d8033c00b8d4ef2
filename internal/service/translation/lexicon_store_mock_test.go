package translation

import (
	"sync"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
	"github.com/heartmarshall/rbmt-backend/internal/lexicon"
)

var _ lexiconStore = &lexiconStoreMock{}

type lexiconStoreMock struct {
	ReloadFunc   func() domain.LexiconStats
	SnapshotFunc func() *lexicon.Snapshot

	calls struct {
		Reload   []struct{}
		Snapshot []struct{}
	}
	lockReload   sync.RWMutex
	lockSnapshot sync.RWMutex
}

func (mock *lexiconStoreMock) Reload() domain.LexiconStats {
	if mock.ReloadFunc == nil {
		panic("lexiconStoreMock.ReloadFunc: method is nil but lexiconStore.Reload was just called")
	}
	mock.lockReload.Lock()
	mock.calls.Reload = append(mock.calls.Reload, struct{}{})
	mock.lockReload.Unlock()
	return mock.ReloadFunc()
}

func (mock *lexiconStoreMock) ReloadCalls() []struct{} {
	mock.lockReload.RLock()
	calls := mock.calls.Reload
	mock.lockReload.RUnlock()
	return calls
}

func (mock *lexiconStoreMock) Snapshot() *lexicon.Snapshot {
	if mock.SnapshotFunc == nil {
		panic("lexiconStoreMock.SnapshotFunc: method is nil but lexiconStore.Snapshot was just called")
	}
	mock.lockSnapshot.Lock()
	mock.calls.Snapshot = append(mock.calls.Snapshot, struct{}{})
	mock.lockSnapshot.Unlock()
	return mock.SnapshotFunc()
}

func (mock *lexiconStoreMock) SnapshotCalls() []struct{} {
	mock.lockSnapshot.RLock()
	calls := mock.calls.Snapshot
	mock.lockSnapshot.RUnlock()
	return calls
}
