/*
Package game
File: clock.go
Description:
    The Clock is the day heartbeat of the simulation.
    Components subscribe once, at construction, and are notified on every Tick
    in subscription order. The Clock only holds references; it never owns or
    tears down its subscribers.
*/

package game

// Observer reacts to a day passing.
type Observer interface {
	OnTick()
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func()

func (f ObserverFunc) OnTick() { f() }

// Subscription is the capability handed back by Subscribe.
// Revoking it silences the observer without touching the Clock's list.
type Subscription struct {
	observer Observer
	revoked  bool
}

// Revoke stops future notifications. Safe to call more than once.
func (s *Subscription) Revoke() { s.revoked = true }

// Active reports whether the subscription still receives ticks.
func (s *Subscription) Active() bool { return !s.revoked }

// Clock fans a tick out to its subscribers. It keeps no day counter.
type Clock struct {
	subscribers []*Subscription
}

// NewClock creates an empty Clock.
func NewClock() *Clock {
	return &Clock{}
}

// Subscribe appends o to the notification order.
// A subscription made while a tick is running starts with the next tick.
func (c *Clock) Subscribe(o Observer) *Subscription {
	sub := &Subscription{observer: o}
	c.subscribers = append(c.subscribers, sub)
	return sub
}

// Subscribers counts the active subscriptions.
func (c *Clock) Subscribers() int {
	n := 0
	for _, s := range c.subscribers {
		if s.Active() {
			n++
		}
	}
	return n
}

// Tick notifies every active subscriber once, synchronously, in order.
func (c *Clock) Tick() {
	// Snapshot so subscribers added during notification wait for the next day.
	snapshot := make([]*Subscription, len(c.subscribers))
	copy(snapshot, c.subscribers)

	for _, sub := range snapshot {
		if !sub.Active() {
			continue
		}
		sub.observer.OnTick()
	}
}
