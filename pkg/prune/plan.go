package prune

// ActionKind distinguishes the removal of a single support file from the
// removal of a whole directory tree.
type ActionKind string

const (
	// ActionRemoveFile removes one regular file.
	ActionRemoveFile ActionKind = "file"
	// ActionRemoveTree removes a directory and everything below it.
	ActionRemoveTree ActionKind = "tree"
)

// Action is a single planned removal.
type Action struct {
	// Kind is the type of removal.
	Kind ActionKind
	// Path is the absolute path to remove.
	Path string
	// Size is the file size for file removals and the recursive content
	// size for tree removals, in bytes.
	Size int64
	// Token is the gfx token that matched, e.g. "gfx906" or "gfx11".
	Token string
}

// Plan is the ordered list of removals produced for one resolution. A plan
// never modifies the filesystem; Apply does.
type Plan struct {
	Actions []Action
}

// Empty reports whether the plan contains no removals.
func (p *Plan) Empty() bool {
	return len(p.Actions) == 0
}

// TotalSize returns the number of bytes the plan would reclaim.
func (p *Plan) TotalSize() int64 {
	var total int64
	for _, action := range p.Actions {
		total += action.Size
	}

	return total
}

// Result summarises an applied plan.
type Result struct {
	// RemovedFiles is the number of files removed.
	RemovedFiles int
	// RemovedTrees is the number of directory trees removed.
	RemovedTrees int
	// Reclaimed is the number of bytes reclaimed.
	Reclaimed int64
}
