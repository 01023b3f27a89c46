package fs

import (
	"os"
	"path/filepath"

	"github.com/justyntemme/scribe/internal/debug"
	"github.com/justyntemme/scribe/internal/workspace"
)

// Scan builds a full snapshot of root. It recurses depth-first, sorting each
// directory's children by name before attaching them, and sorts the root
// listing the same way.
//
// Entries are classified by their own type, so a symbolic link is listed as
// a file and never followed. Any error aborts the scan and no partial tree
// is returned.
func Scan(root string) (workspace.FileTree, error) {
	debug.Log(debug.FS, "Scan: root=%q", root)

	entries, err := scanDir(root)
	if err != nil {
		debug.Log(debug.FS, "Scan: aborted: %v", err)
		return workspace.FileTree{}, err
	}

	tree := workspace.FileTree{Root: root, Entries: entries}
	debug.Log(debug.FS, "Scan: %d entries under %q", tree.Count(), root)
	return tree, nil
}

func scanDir(dir string) ([]workspace.FileEntry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, newScanError(dir, err)
	}

	entries := make([]workspace.FileEntry, 0, len(dirents))
	for _, d := range dirents {
		entry := workspace.FileEntry{
			Name: d.Name(),
			Path: filepath.Join(dir, d.Name()),
		}
		if d.IsDir() {
			children, err := scanDir(entry.Path)
			if err != nil {
				return nil, err
			}
			entry.IsDir = true
			entry.Children = children
		}
		debug.Log(debug.SCAN, "scanDir: %q isDir=%v", entry.Path, entry.IsDir)
		entries = append(entries, entry)
	}

	workspace.SortEntries(entries)
	return entries, nil
}
