package event

import "sync"

// Notifier is a multicast, replay-none change signal. Emit never blocks: a
// subscriber that has not drained its channel keeps the single pending signal
// and re-reads state when it gets to it, so delivery is "something changed",
// never the change itself. This is weaker than a per-emit callback: a slow
// subscriber sees consecutive emits coalesced into one pending signal, and
// only a subscriber that drains between mutations receives one signal per
// mutation.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]chan struct{}
}

type Subscription struct {
	C      <-chan struct{}
	cancel func()
}

// Unsubscribe detaches the subscriber. Safe to call more than once.
func (s Subscription) Unsubscribe() { s.cancel() }

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan struct{})}
}

func (n *Notifier) Subscribe() Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	ch := make(chan struct{}, 1)
	n.subs[id] = ch

	return Subscription{
		C: ch,
		cancel: func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if sub, ok := n.subs[id]; ok {
				delete(n.subs, id)
				close(sub)
			}
		},
	}
}

func (n *Notifier) Emit() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
