package application

import (
	"os"
	"sync"

	"filebase/internal/core/domain"
	"filebase/internal/core/ports"
)

const notificationBuffer = 16

// TrackedFile binds an in-memory value of type T to a single file on disk.
// It keeps the file's identity (directory, name, extension) in sync with
// filesystem events delivered by the watch source, tracks unsaved changes
// and persists the value through the codec.
//
// The mutex guards identity, tracker, data and the live subscription; the
// watch goroutine mutates them through the same lock as the caller.
type TrackedFile[T any] struct {
	codec  ports.Codec
	source ports.WatchSource
	idGen  domain.IDGenerator

	mu       sync.Mutex
	identity domain.Identity
	tracker  domain.ChangeTracker
	data     T
	sub      ports.WatchSubscription
	closed   bool

	wg            sync.WaitGroup
	notifications chan domain.Notification
}

// New returns an unsaved handle with no on-disk location. Calling Save before
// Open or SaveAs fails with an IncompleteIdentityError.
func New[T any](codec ports.Codec, source ports.WatchSource, idGen domain.IDGenerator) *TrackedFile[T] {
	return &TrackedFile[T]{
		codec:         codec,
		source:        source,
		idGen:         idGen,
		notifications: make(chan domain.Notification, notificationBuffer),
	}
}

// Open points the handle at path. If a file exists there its bytes are
// decoded into the owned value and the handle starts clean; otherwise the
// path is treated as a save target and the current value is written out,
// creating the file. Either way the file's directory ends up watched.
func (tf *TrackedFile[T]) Open(path string) error {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	if tf.closed {
		return domain.ErrClosed
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return tf.saveAsLocked(path)
		}
		return err
	}

	return tf.openLocked(path)
}

func (tf *TrackedFile[T]) openLocked(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var value T
	if err := tf.codec.Decode(raw, &value); err != nil {
		return &domain.DecodeError{Err: err}
	}

	tf.identity = domain.IdentityFromPath(path)
	tf.data = value

	if err := tf.watchLocked(); err != nil {
		return err
	}

	tf.tracker.MarkClean()

	return nil
}

// Save writes the owned value to the file's current location and clears the
// unsaved-changes flag. A failed save leaves the flag and the identity
// untouched so the call can simply be retried.
func (tf *TrackedFile[T]) Save() error {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	if tf.closed {
		return domain.ErrClosed
	}

	return tf.saveLocked()
}

func (tf *TrackedFile[T]) saveLocked() error {
	if missing := tf.identity.Missing(); len(missing) > 0 {
		return &domain.IncompleteIdentityError{Op: "save", Missing: missing}
	}

	path, err := tf.identity.AbsolutePath()
	if err != nil {
		return err
	}

	raw, err := tf.codec.Encode(tf.data)
	if err != nil {
		return &domain.EncodeError{Err: err}
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return err
	}

	tf.tracker.MarkClean()

	return nil
}

// SaveAs derives a new identity from path, saves there and replaces the watch
// subscription with one rooted at the new directory.
func (tf *TrackedFile[T]) SaveAs(path string) error {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	if tf.closed {
		return domain.ErrClosed
	}

	return tf.saveAsLocked(path)
}

func (tf *TrackedFile[T]) saveAsLocked(path string) error {
	previous := tf.identity
	tf.identity = domain.IdentityFromPath(path)

	if err := tf.saveLocked(); err != nil {
		tf.identity = previous
		return err
	}

	return tf.watchLocked()
}

// SetData replaces the owned value wholesale and marks the handle dirty.
func (tf *TrackedFile[T]) SetData(value T) error {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	if tf.closed {
		return domain.ErrClosed
	}

	tf.data = value
	tf.tracker.MarkDirty()

	return nil
}

// Data returns the owned value. Reading does not clear the dirty flag.
func (tf *TrackedFile[T]) Data() T {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	return tf.data
}

// HasUnsavedChanges reports whether the value changed since the last save.
func (tf *TrackedFile[T]) HasUnsavedChanges() bool {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	return tf.tracker.Dirty()
}

// Identity returns a copy of the current identity triple.
func (tf *TrackedFile[T]) Identity() domain.Identity {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	return tf.identity
}

// AbsolutePath returns the file's current on-disk path.
func (tf *TrackedFile[T]) AbsolutePath() (string, error) {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	return tf.identity.AbsolutePath()
}

// RecoverFromDelete points the handle at a different file after a deletion
// notice. It re-derives the identity and replaces the subscription but does
// not save; nothing exists at path until the next Save.
func (tf *TrackedFile[T]) RecoverFromDelete(path string) error {
	tf.mu.Lock()
	defer tf.mu.Unlock()

	if tf.closed {
		return domain.ErrClosed
	}

	tf.identity = domain.IdentityFromPath(path)

	return tf.watchLocked()
}

// Notifications delivers conditions raised by the watch goroutine, most
// importantly *domain.FileDeletedError. The channel is buffered; when nobody
// drains it, further notices are dropped rather than wedging the watcher.
func (tf *TrackedFile[T]) Notifications() <-chan domain.Notification {
	return tf.notifications
}

// Close releases the watch subscription, waits for the watch goroutine to
// stop and closes the notification channel. Idempotent. Any mutating call
// after Close returns domain.ErrClosed.
func (tf *TrackedFile[T]) Close() error {
	tf.mu.Lock()
	if tf.closed {
		tf.mu.Unlock()
		return nil
	}
	tf.closed = true
	sub := tf.sub
	tf.sub = nil
	tf.mu.Unlock()

	var err error
	if sub != nil {
		err = sub.Close()
	}

	tf.wg.Wait()
	close(tf.notifications)

	return err
}

// watchLocked subscribes to the identity's directory, replacing any previous
// subscription. The old subscription is closed after the new one is live so
// no window exists where the file is unwatched.
func (tf *TrackedFile[T]) watchLocked() error {
	if missing := tf.identity.Missing(); len(missing) > 0 {
		return &domain.IncompleteIdentityError{Op: "watcher", Missing: missing}
	}

	sub, err := tf.source.Subscribe(tf.identity.Directory)
	if err != nil {
		return err
	}

	if tf.sub != nil {
		tf.sub.Close()
	}
	tf.sub = sub

	tf.wg.Add(1)
	go tf.watchLoop(sub)

	return nil
}

func (tf *TrackedFile[T]) watchLoop(sub ports.WatchSubscription) {
	defer tf.wg.Done()

	errs := sub.Errors()

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				return
			}

			tf.reconcile(event)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if err == nil {
				continue
			}

			tf.notify(err)
		}
	}
}

// reconcile maps one filesystem event onto the handle's state. Events for
// sibling files in the watched directory are ignored; only an event whose
// path matches the current absolute path acts on the handle.
func (tf *TrackedFile[T]) reconcile(event domain.FileEvent) {
	tf.mu.Lock()

	if tf.closed {
		tf.mu.Unlock()
		return
	}

	current, err := tf.identity.AbsolutePath()
	if err != nil || current != event.Path {
		tf.mu.Unlock()
		return
	}

	var raised error

	switch event.Op {
	case domain.EventModified:
		raised = tf.relocateLocked(event.Path)
	case domain.EventMoved:
		raised = tf.relocateLocked(event.DestPath)
	case domain.EventDeleted:
		// Identity, dirty flag and subscription stay as they are; the next
		// Save recreates the file at the old path unless the caller chose
		// to RecoverFromDelete first.
		raised = &domain.FileDeletedError{
			Name:      tf.identity.Name,
			Extension: tf.identity.Extension,
			Directory: tf.identity.Directory,
		}
	}

	tf.mu.Unlock()

	if raised != nil {
		tf.notify(raised)
	}
}

// relocateLocked re-derives the identity from path and recreates the
// subscription. Modified and Moved events both land here, so a rewrite of
// the file in place is just a relocation to the same identity.
func (tf *TrackedFile[T]) relocateLocked(path string) error {
	tf.identity = domain.IdentityFromPath(path)

	return tf.watchLocked()
}

func (tf *TrackedFile[T]) notify(err error) {
	notice, _ := domain.NewNotification(err, tf.idGen)

	select {
	case tf.notifications <- notice:
	default:
	}
}
