package ui

import (
	"strings"

	"github.com/justyntemme/scribe/internal/workspace"
)

// Row is one visible line of the explorer tree.
type Row struct {
	Entry    workspace.FileEntry
	Depth    int
	Expanded bool
}

// FlattenTree lists the visible rows of tree in display order. Children of a
// directory are shown only when its path is in expanded.
func FlattenTree(tree workspace.FileTree, expanded map[string]bool, dirsFirst bool) []Row {
	var rows []Row
	var walk func(entries []workspace.FileEntry, depth int)
	walk = func(entries []workspace.FileEntry, depth int) {
		for _, e := range displayOrder(entries, dirsFirst) {
			open := e.IsDir && expanded[e.Path]
			rows = append(rows, Row{Entry: e, Depth: depth, Expanded: open})
			if open {
				walk(e.Children, depth+1)
			}
		}
	}
	walk(tree.Entries, 0)
	return rows
}

// displayOrder groups directories above files when dirsFirst is set. The
// name order inside each group is kept; the input slice is not modified.
func displayOrder(entries []workspace.FileEntry, dirsFirst bool) []workspace.FileEntry {
	if !dirsFirst {
		return entries
	}
	out := make([]workspace.FileEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir {
			out = append(out, e)
		}
	}
	for _, e := range entries {
		if !e.IsDir {
			out = append(out, e)
		}
	}
	return out
}

// splitLines breaks content into display lines. A trailing newline does not
// produce an extra empty line and CRLF endings are trimmed.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
