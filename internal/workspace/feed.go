package workspace

import (
	"sync"
	"time"
)

// NoticeKind is the severity of a user-visible notification.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is one entry of the notification feed.
type Notice struct {
	Kind    NoticeKind
	Message string
	Err     error
	Time    time.Time
}

// maxNotices bounds the history kept for late subscribers.
const maxNotices = 100

// Feed is an append-only stream of notices. Unlike a Cell every published
// notice is delivered, not only the latest one.
type Feed struct {
	mu      sync.Mutex
	notices []Notice
	total   int
	nextID  int
	subs    []subscriber[Notice]
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// Publish appends n and delivers it to every subscriber.
func (f *Feed) Publish(n Notice) {
	if n.Time.IsZero() {
		n.Time = time.Now()
	}

	f.mu.Lock()
	f.notices = append(f.notices, n)
	if len(f.notices) > maxNotices {
		f.notices = f.notices[len(f.notices)-maxNotices:]
	}
	f.total++
	subs := make([]subscriber[Notice], len(f.subs))
	copy(subs, f.subs)
	f.mu.Unlock()

	for _, s := range subs {
		s.fn(n)
	}
}

// Subscribe registers fn for every future notice.
func (f *Feed) Subscribe(fn func(Notice)) (cancel func()) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs = append(f.subs, subscriber[Notice]{id: id, fn: fn})
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, s := range f.subs {
			if s.id == id {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

// All returns the retained notices, oldest first.
func (f *Feed) All() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notice, len(f.notices))
	copy(out, f.notices)
	return out
}

// Len returns how many notices were ever published.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

// Latest returns the most recent notice.
func (f *Feed) Latest() (Notice, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.notices) == 0 {
		return Notice{}, false
	}
	return f.notices[len(f.notices)-1], true
}
