// Package workspace holds the editor's shared state: the directory tree
// snapshot, the open document, and the notification feed the presentation
// layer renders. The event loop is the only writer.
package workspace

import "sort"

// FileEntry is a single node of a scanned directory tree.
// Directories carry their children sorted by name; files never do.
type FileEntry struct {
	Name     string
	Path     string
	IsDir    bool
	Children []FileEntry
}

// FileTree is the root listing of a workspace folder.
type FileTree struct {
	Root    string
	Entries []FileEntry
}

// Document is the text of the most recently opened file.
type Document struct {
	Path    string
	Content string
}

// SearchHit is a single match produced by the file finder.
type SearchHit struct {
	Name  string
	Path  string
	IsDir bool
}

// IsEmpty reports whether the tree has no entries.
func (t FileTree) IsEmpty() bool {
	return len(t.Entries) == 0
}

// Count returns the total number of entries at every nesting level.
func (t FileTree) Count() int {
	return countEntries(t.Entries)
}

func countEntries(entries []FileEntry) int {
	n := len(entries)
	for _, e := range entries {
		n += countEntries(e.Children)
	}
	return n
}

// Find resolves an entry by its full path.
func (t FileTree) Find(path string) (FileEntry, bool) {
	return findEntry(t.Entries, path)
}

func findEntry(entries []FileEntry, path string) (FileEntry, bool) {
	for _, e := range entries {
		if e.Path == path {
			return e, true
		}
		if e.IsDir {
			if found, ok := findEntry(e.Children, path); ok {
				return found, true
			}
		}
	}
	return FileEntry{}, false
}

// Walk visits every entry depth-first in listing order.
// Returning false from fn stops the walk.
func (t FileTree) Walk(fn func(depth int, e FileEntry) bool) {
	walkEntries(t.Entries, 0, fn)
}

func walkEntries(entries []FileEntry, depth int, fn func(int, FileEntry) bool) bool {
	for _, e := range entries {
		if !fn(depth, e) {
			return false
		}
		if e.IsDir && !walkEntries(e.Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// SortEntries orders a single directory level by name using byte ordering.
func SortEntries(entries []FileEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
}

// IsSorted reports whether every level of entries is ordered by name.
func IsSorted(entries []FileEntry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Name > entries[i].Name {
			return false
		}
	}
	for _, e := range entries {
		if e.IsDir && !IsSorted(e.Children) {
			return false
		}
	}
	return true
}
