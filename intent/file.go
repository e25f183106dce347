package intent

// File is the root intention for one translated source file (spec §3.1).
// It owns Types (which may each also exist as fragments in other files --
// identity is the type's fully-qualified name, not the owning File),
// top-level global functions, and the import list used by the listener hook
// (package listener).
type File struct {
	Base

	Path            string
	IsHeaderDerived bool

	Imports []string
	Types   []*Type
	Globals []*GlobalFunction
}

// NewFile creates an empty file intention.
func NewFile(path string, isHeaderDerived bool) *File {
	return &File{Path: path, IsHeaderDerived: isHeaderDerived}
}

// AddType appends (or inserts, if at is non-nil) a type intention owned
// directly by this file and sets its parent back-edge. Most types are also
// registered with the owning Graph via Graph.AddType, which is what gives
// them their cross-file identity; a File's own Types slice only reflects
// which fragments were declared in this particular file.
func (f *File) AddType(t *Type, at *int) {
	f.Types = insertChild(f.Types, t, at, f)
}

// RemoveType clears t's parent back-edge and removes it from this file.
func (f *File) RemoveType(t *Type) {
	f.Types = removeChild(f.Types, t)
}

// AddGlobal appends a global function owned by this file.
func (f *File) AddGlobal(g *GlobalFunction, at *int) {
	f.Globals = insertChild(f.Globals, g, at, f)
}

// RemoveGlobal removes a global function owned by this file.
func (f *File) RemoveGlobal(g *GlobalFunction) {
	f.Globals = removeChild(f.Globals, g)
}

var _ Intention = (*File)(nil)
