package reactive

// Batch runs fn and delivers the notifications it caused once, after the
// outermost batch returns. A listener notified several times inside the batch
// is marked dirty only once.
func Batch(fn func()) {
	ctx := getTrackingContext()
	ctx.batchDepth++
	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth == 0 {
			flushPendingUpdates()
		}
	}()
	fn()
}

// flushPendingUpdates notifies queued listeners, deduplicated by ID, in the
// order they were first queued.
func flushPendingUpdates() {
	pending := drainPendingUpdates()
	if len(pending) == 0 {
		return
	}

	seen := make(map[uint64]struct{}, len(pending))
	for _, l := range pending {
		id := l.ID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		l.MarkDirty()
	}
}
