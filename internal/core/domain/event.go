package domain

// FileEventOp is the kind of filesystem change reported by a watch source.
type FileEventOp int

const (
	EventModified FileEventOp = iota
	EventMoved
	EventDeleted
)

func (op FileEventOp) String() string {
	switch op {
	case EventModified:
		return "modified"
	case EventMoved:
		return "moved"
	case EventDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// FileEvent is one filesystem change delivered by a watch source. Path is the
// affected path (the source path for a move); DestPath is only set for
// EventMoved and holds where the file went.
type FileEvent struct {
	Op       FileEventOp
	Path     string
	DestPath string
}
