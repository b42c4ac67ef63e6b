package model

// WatchOp is the kind of a file system change.
type WatchOp int

// Watch operations.
const (
	OpCreate WatchOp = iota
	OpWrite
	OpRemove
	OpRename
)

// WatchEvent is one raw change notification for a file.
type WatchEvent struct {
	Path Path
	Op   WatchOp
}
