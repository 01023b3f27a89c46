package workspace

// Store is the explicit context shared by the event loop and the
// presentation layer. It is constructed once and passed by reference.
type Store struct {
	Tree     *Cell[FileTree]
	Document *Cell[*Document]
	Results  *Cell[[]SearchHit]
	Notices  *Feed
}

// NewStore returns a store with an empty tree and no document.
func NewStore() *Store {
	return &Store{
		Tree:     NewCell(FileTree{}),
		Document: NewCell[*Document](nil),
		Results:  NewCell[[]SearchHit](nil),
		Notices:  NewFeed(),
	}
}

// Snapshot holds the values the presentation layer renders in one frame.
type Snapshot struct {
	Tree     FileTree
	Document *Document
	Results  []SearchHit
}

// Snapshot reads the latest value of each cell.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Tree:     s.Tree.Get(),
		Document: s.Document.Get(),
		Results:  s.Results.Get(),
	}
}

// OnChange runs fn after any cell or the feed publishes. Used by the
// presentation layer to schedule a redraw.
func (s *Store) OnChange(fn func()) (cancel func()) {
	cancels := []func(){
		s.Tree.Subscribe(func(FileTree) { fn() }),
		s.Document.Subscribe(func(*Document) { fn() }),
		s.Results.Subscribe(func([]SearchHit) { fn() }),
		s.Notices.Subscribe(func(Notice) { fn() }),
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}
