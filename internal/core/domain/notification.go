package domain

// Notification carries a condition raised on the watch side of a handle,
// typically a *FileDeletedError or a watch source failure. It is delivered
// over a channel because the raising goroutine has no synchronous caller.
type Notification struct {
	ID  string
	Err error
}

// NewNotification wraps err into a Notification stamped with a generated ID.
// The notification is usable even when the generator fails; the generator
// error is returned alongside so callers may ignore it.
func NewNotification(err error, idGen IDGenerator) (Notification, error) {
	id, genErr := idGen.Generate()

	return Notification{
		ID:  id,
		Err: err,
	}, genErr
}
