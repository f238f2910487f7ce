package auth

import "sync"

// SessionEvent reports a sign-in or sign-out of an identity.
type SessionEvent struct {
	UserID   string
	Email    string
	SignedIn bool
}

// SessionBroadcaster fans session events out to subscribers. Subscribe returns
// the handle that releases the subscription; callers must invoke it on
// teardown so no callback outlives its owner.
type SessionBroadcaster struct {
	mu   sync.Mutex
	subs map[int]func(SessionEvent)
	next int
}

func NewSessionBroadcaster() *SessionBroadcaster {
	return &SessionBroadcaster{subs: make(map[int]func(SessionEvent))}
}

func (b *SessionBroadcaster) Subscribe(fn func(SessionEvent)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *SessionBroadcaster) Publish(ev SessionEvent) {
	b.mu.Lock()
	fns := make([]func(SessionEvent), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
