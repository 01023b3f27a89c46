package app

import (
	"github.com/justyntemme/scribe/internal/recents"
	"github.com/justyntemme/scribe/internal/workspace"
)

// Recorder is the subset of the recents database the history needs.
type Recorder interface {
	Enqueue(req recents.Request) bool
}

// TrackHistory subscribes to the store and records every opened document
// and every loaded folder. It only reads the store.
func TrackHistory(store *workspace.Store, rec Recorder) (cancel func()) {
	cancelDoc := store.Document.Subscribe(func(doc *workspace.Document) {
		if doc == nil {
			return
		}
		rec.Enqueue(recents.Request{Op: recents.RecordOpen, Path: doc.Path})
	})
	cancelTree := store.Tree.Subscribe(func(tree workspace.FileTree) {
		if tree.Root == "" {
			return
		}
		rec.Enqueue(recents.Request{Op: recents.SaveSetting, Key: recents.SettingLastRoot, Value: tree.Root})
	})
	return func() {
		cancelDoc()
		cancelTree()
	}
}
