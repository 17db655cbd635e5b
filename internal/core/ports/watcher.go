package ports

import (
	"filebase/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

type (
	// WatchSource hands out subscriptions to filesystem changes under a
	// single directory, non-recursive.
	WatchSource interface {
		Subscribe(directory string) (WatchSubscription, error)
	}

	// WatchSubscription is one live registration with a watch source.
	// Close releases the registration and closes the Events channel.
	WatchSubscription interface {
		Events() <-chan domain.FileEvent
		Errors() <-chan error
		Close() error
	}
)
