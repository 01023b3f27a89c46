package workspace

import "fmt"

// Action is a user-triggered intent queued for the event loop.
// New variants only need to implement the marker method.
type Action interface {
	action()
	fmt.Stringer
}

// OpenFile reads Path and makes it the current document.
type OpenFile struct {
	Path string
}

// CloseFile clears the current document.
type CloseFile struct{}

// OpenFolder replaces the tree with a scan of Path.
type OpenFolder struct {
	Path string
}

// SearchFiles runs the file finder under the current root.
type SearchFiles struct {
	Query string
}

func (OpenFile) action()    {}
func (CloseFile) action()   {}
func (OpenFolder) action()  {}
func (SearchFiles) action() {}

func (a OpenFile) String() string    { return fmt.Sprintf("OpenFile(%s)", a.Path) }
func (CloseFile) String() string     { return "CloseFile" }
func (a OpenFolder) String() string  { return fmt.Sprintf("OpenFolder(%s)", a.Path) }
func (a SearchFiles) String() string { return fmt.Sprintf("SearchFiles(%q)", a.Query) }
