package store

import "sync"

// Event notifies subscribers that a collection changed. It carries no
// payload beyond the collection key; readers are expected to re-fetch.
type Event struct {
	Collection string
}

// Name returns the conventional event name for the collection.
func (e Event) Name() string {
	return e.Collection + "-changed"
}

// Bus is a per-collection publish/subscribe channel. Any number of
// independent readers can subscribe to a collection key and stay in sync
// without polling.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[string]map[int]chan Event
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]chan Event)}
}

// Subscribe registers interest in a collection key. The returned cancel
// function removes the subscription and closes the channel; it is safe to
// call more than once.
func (b *Bus) Subscribe(collection string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++

	// Buffered so a reader that is momentarily busy does not stall writers.
	ch := make(chan Event, 8)
	if b.subs[collection] == nil {
		b.subs[collection] = make(map[int]chan Event)
	}
	b.subs[collection][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[collection], id)
			close(ch)
		})
	}

	return ch, cancel
}

// Publish broadcasts a change event for the collection to all current
// subscribers. Delivery is fire-and-forget: a subscriber whose buffer is
// full misses the event rather than blocking the writer, which is safe
// because events carry no state beyond "re-read this collection".
func (b *Bus) Publish(collection string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs[collection] {
		select {
		case ch <- Event{Collection: collection}:
		default:
		}
	}
}
