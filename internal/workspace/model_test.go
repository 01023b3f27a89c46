package workspace

import "testing"

func sampleTree() FileTree {
	return FileTree{
		Root: "/w",
		Entries: []FileEntry{
			{Name: "a.txt", Path: "/w/a.txt"},
			{Name: "src", Path: "/w/src", IsDir: true, Children: []FileEntry{
				{Name: "main.go", Path: "/w/src/main.go"},
				{Name: "pkg", Path: "/w/src/pkg", IsDir: true, Children: []FileEntry{
					{Name: "x.go", Path: "/w/src/pkg/x.go"},
				}},
			}},
			{Name: "z.md", Path: "/w/z.md"},
		},
	}
}

func TestFileTreeCount(t *testing.T) {
	if n := sampleTree().Count(); n != 6 {
		t.Errorf("expected 6 entries, got %d", n)
	}
	if n := (FileTree{}).Count(); n != 0 {
		t.Errorf("expected 0 entries, got %d", n)
	}
}

func TestFileTreeFind(t *testing.T) {
	tree := sampleTree()

	e, ok := tree.Find("/w/src/pkg/x.go")
	if !ok {
		t.Fatal("expected to find nested file")
	}
	if e.Name != "x.go" || e.IsDir {
		t.Errorf("unexpected entry: %+v", e)
	}

	if _, ok := tree.Find("/w/missing"); ok {
		t.Error("did not expect to find missing path")
	}
}

func TestFileTreeWalk(t *testing.T) {
	var names []string
	var depths []int
	sampleTree().Walk(func(depth int, e FileEntry) bool {
		names = append(names, e.Name)
		depths = append(depths, depth)
		return true
	})

	wantNames := []string{"a.txt", "src", "main.go", "pkg", "x.go", "z.md"}
	wantDepths := []int{0, 0, 1, 1, 2, 0}
	for i := range wantNames {
		if names[i] != wantNames[i] || depths[i] != wantDepths[i] {
			t.Errorf("visit %d: expected %s@%d, got %s@%d", i, wantNames[i], wantDepths[i], names[i], depths[i])
		}
	}

	visited := 0
	sampleTree().Walk(func(int, FileEntry) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("expected walk to stop after 3 visits, got %d", visited)
	}
}

func TestSortEntriesByteOrder(t *testing.T) {
	entries := []FileEntry{
		{Name: "b"}, {Name: "B"}, {Name: "a"}, {Name: "_x"}, {Name: "A"},
	}
	SortEntries(entries)

	want := []string{"A", "B", "_x", "a", "b"}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], e.Name)
		}
	}
	if !IsSorted(entries) {
		t.Error("IsSorted should accept sorted entries")
	}
}

func TestIsSortedChecksNestedLevels(t *testing.T) {
	tree := sampleTree()
	if !IsSorted(tree.Entries) {
		t.Fatal("sample tree should be sorted")
	}

	tree.Entries[1].Children[0], tree.Entries[1].Children[1] = tree.Entries[1].Children[1], tree.Entries[1].Children[0]
	if IsSorted(tree.Entries) {
		t.Error("expected nested disorder to be detected")
	}
}

func TestActionStrings(t *testing.T) {
	testCases := []struct {
		action   Action
		expected string
	}{
		{OpenFile{Path: "notes.txt"}, "OpenFile(notes.txt)"},
		{CloseFile{}, "CloseFile"},
		{OpenFolder{Path: "/w"}, "OpenFolder(/w)"},
		{SearchFiles{Query: "main"}, `SearchFiles("main")`},
	}
	for _, tc := range testCases {
		if tc.action.String() != tc.expected {
			t.Errorf("expected %q, got %q", tc.expected, tc.action.String())
		}
	}
}
