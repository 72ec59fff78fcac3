package reactive

import "sync"

// testListener counts MarkDirty calls.
type testListener struct {
	id    uint64
	mu    sync.Mutex
	dirty int
}

func newTestListener() *testListener {
	return &testListener{id: nextID()}
}

func (l *testListener) ID() uint64 { return l.id }

func (l *testListener) MarkDirty() {
	l.mu.Lock()
	l.dirty++
	l.mu.Unlock()
}

func (l *testListener) getDirtyCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dirty
}

// trackingListener records its sources like a component instance does.
type trackingListener struct {
	testListener
	sources []Source
}

func (l *trackingListener) AddSource(s Source) {
	l.sources = append(l.sources, s)
}
