package domain

// ChangeTracker tracks whether the in-memory data differs from the bytes last
// written to disk. It holds no lock of its own; the owning handle serializes
// access together with the identity and subscription.
type ChangeTracker struct {
	dirty bool
}

// MarkDirty records that the in-memory data changed. Idempotent.
func (t *ChangeTracker) MarkDirty() {
	t.dirty = true
}

// MarkClean records a successful save. Only the save path calls this.
func (t *ChangeTracker) MarkClean() {
	t.dirty = false
}

// Dirty reports whether there are unsaved changes.
func (t *ChangeTracker) Dirty() bool {
	return t.dirty
}
