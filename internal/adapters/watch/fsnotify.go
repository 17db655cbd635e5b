package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"filebase/internal/core/domain"
	"filebase/internal/core/ports"
)

// How long a bare fsnotify Rename waits for its matching Create before being
// reported as a deletion. fsnotify only reports the source side of a rename,
// so a move inside the watched directory shows up as Rename followed by a
// Create for the destination.
const defaultRenameWindow = 250 * time.Millisecond

// Source creates fsnotify-backed watch subscriptions, one watcher per
// subscribed directory, non-recursive.
type Source struct {
	renameWindow time.Duration
}

func NewSource() *Source {
	return &Source{renameWindow: defaultRenameWindow}
}

func (s *Source) Subscribe(directory string) (ports.WatchSubscription, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(directory); err != nil {
		watcher.Close()
		return nil, err
	}

	sub := &subscription{
		watcher: watcher,
		window:  s.renameWindow,
		events:  make(chan domain.FileEvent, 16),
		errs:    make(chan error, 4),
		done:    make(chan struct{}),
	}

	go sub.run()

	return sub, nil
}

type subscription struct {
	watcher *fsnotify.Watcher
	window  time.Duration
	events  chan domain.FileEvent
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

func (s *subscription) Events() <-chan domain.FileEvent {
	return s.events
}

func (s *subscription) Errors() <-chan error {
	return s.errs
}

func (s *subscription) Close() error {
	var err error

	s.once.Do(func() {
		close(s.done)
		err = s.watcher.Close()
	})

	return err
}

// run translates raw fsnotify events into the domain's tagged union and owns
// the Events channel, closing it on exit.
func (s *subscription) run() {
	defer close(s.events)

	var (
		pendingRename string
		renameTimer   *time.Timer
		renameExpired <-chan time.Time
	)

	clearPending := func() {
		if renameTimer != nil {
			renameTimer.Stop()
		}
		pendingRename, renameTimer, renameExpired = "", nil, nil
	}

	watcherErrs := s.watcher.Errors

	for {
		select {
		case <-s.done:
			return
		case <-renameExpired:
			// No Create arrived in time, the file left the watched
			// directory. That is a deletion from the handle's view.
			moved := pendingRename
			clearPending()
			if !s.emit(domain.FileEvent{Op: domain.EventDeleted, Path: moved}) {
				return
			}
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			switch {
			case event.Has(fsnotify.Rename):
				if pendingRename != "" {
					// A second rename before the first resolved; the
					// earlier file is gone for good.
					if !s.emit(domain.FileEvent{Op: domain.EventDeleted, Path: pendingRename}) {
						return
					}
				}
				clearPending()
				pendingRename = event.Name
				renameTimer = time.NewTimer(s.window)
				renameExpired = renameTimer.C
			case event.Has(fsnotify.Create):
				if pendingRename == "" {
					// A new sibling file, nothing the handle cares about.
					continue
				}
				moved := domain.FileEvent{Op: domain.EventMoved, Path: pendingRename, DestPath: event.Name}
				clearPending()
				if !s.emit(moved) {
					return
				}
			case event.Has(fsnotify.Remove):
				if !s.emit(domain.FileEvent{Op: domain.EventDeleted, Path: event.Name}) {
					return
				}
			case event.Has(fsnotify.Write):
				if !s.emit(domain.FileEvent{Op: domain.EventModified, Path: event.Name}) {
					return
				}
			}
		case err, ok := <-watcherErrs:
			if !ok {
				watcherErrs = nil
				continue
			}
			if err == nil {
				continue
			}

			select {
			case s.errs <- err:
			case <-s.done:
				return
			}
		}
	}
}

func (s *subscription) emit(event domain.FileEvent) bool {
	select {
	case s.events <- event:
		return true
	case <-s.done:
		return false
	}
}
