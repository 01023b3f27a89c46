package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/moby/patternmatcher"

	"github.com/justyntemme/scribe/internal/debug"
	"github.com/justyntemme/scribe/internal/search"
	"github.com/justyntemme/scribe/internal/workspace"
)

// FindOptions bounds a finder walk.
type FindOptions struct {
	MaxResults    int  // 0 means unlimited
	IncludeHidden bool // descend into and report dot entries
	// Exclude holds .dockerignore-style patterns relative to the root.
	// Matching directories are not descended into.
	Exclude []string
}

// Find walks root and returns the entries matching query, sorted by path.
// With MaxResults set, the hits are the MaxResults smallest paths and the
// bool result reports whether any match was dropped.
func Find(root string, query *search.Query, opts FindOptions) ([]workspace.SearchHit, bool, error) {
	debug.Log(debug.SEARCH, "Find: root=%q query=%q max=%d", root, query.Raw, opts.MaxResults)

	if _, err := os.Stat(root); err != nil {
		return nil, false, newScanError(root, err)
	}
	matcher := search.NewMatcher(query)

	var excluder *patternmatcher.PatternMatcher
	if len(opts.Exclude) > 0 {
		pm, err := patternmatcher.New(opts.Exclude)
		if err != nil {
			return nil, false, fmt.Errorf("exclude patterns: %w", err)
		}
		excluder = pm
	}

	var (
		mu        sync.Mutex
		hits      []workspace.SearchHit
		truncated bool
	)

	// Symlinks are not followed, matching the scanner.
	conf := &fastwalk.Config{Follow: false}

	err := fastwalk.Walk(conf, root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			debug.Log(debug.SEARCH, "Find: skipping %q: %v", path, err)
			return nil
		}
		if path == root {
			return nil
		}
		if !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if excluder != nil {
			if skip, _ := excluder.MatchesOrParentMatches(rel); skip {
				if d.IsDir() {
					return fastwalk.SkipDir
				}
				return nil
			}
		}
		c := search.Candidate{
			Path:  path,
			Rel:   filepath.ToSlash(rel),
			Name:  d.Name(),
			IsDir: d.IsDir(),
		}
		if query.IsEmpty() || !matcher.Match(c) {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()
		hits = append(hits, workspace.SearchHit{Name: c.Name, Path: path, IsDir: c.IsDir})
		// Callbacks arrive in no particular order, so the kept set is
		// trimmed by path rather than by arrival.
		if opts.MaxResults > 0 && len(hits) >= 2*opts.MaxResults {
			hits = smallestPaths(hits, opts.MaxResults)
			truncated = true
		}
		return nil
	})
	if err != nil {
		return nil, false, newScanError(root, err)
	}

	sortHits(hits)
	if opts.MaxResults > 0 && len(hits) > opts.MaxResults {
		hits = hits[:opts.MaxResults]
		truncated = true
	}
	debug.Log(debug.SEARCH, "Find: %d hits truncated=%v", len(hits), truncated)
	return hits, truncated, nil
}

func sortHits(hits []workspace.SearchHit) {
	sort.Slice(hits, func(i, j int) bool { return hits[i].Path < hits[j].Path })
}

// smallestPaths keeps the n hits with the smallest paths.
func smallestPaths(hits []workspace.SearchHit, n int) []workspace.SearchHit {
	sortHits(hits)
	return hits[:n]
}
