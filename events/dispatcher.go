package events

import "reflect"

type Handler func(Event)

type window struct{}

// Window is the subscription scope that receives events of a kind whatever
// their target is.
var Window any = window{}

type Dispatcher struct {
	subscriptions []*Subscription
}

type Subscription struct {
	dispatcher *Dispatcher
	scope      any
	kind       Kind
	handler    Handler
	active     bool
}

type targeted interface {
	target() any
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Subscribe(scope any, kind Kind, handler Handler) *Subscription {
	s := &Subscription{dispatcher: d, scope: scope, kind: kind, handler: handler, active: true}
	d.subscriptions = append(d.subscriptions, s)
	return s
}

// Unsubscribe is safe to call more than once and from inside a handler.
func (s *Subscription) Unsubscribe() {
	if !s.active {
		return
	}
	s.active = false
	subs := s.dispatcher.subscriptions
	for i, sub := range subs {
		if sub == s {
			s.dispatcher.subscriptions = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

func (s *Subscription) Active() bool {
	return s.active
}

// Dispatch calls, in subscription order, every active handler whose kind and
// scope match the event, and returns how many were called. Handlers
// subscribed during the dispatch do not see the event; handlers cancelled
// during the dispatch are skipped.
func (d *Dispatcher) Dispatch(event Event) int {
	var target any
	if t, ok := event.(targeted); ok {
		target = t.target()
	}
	snapshot := make([]*Subscription, len(d.subscriptions))
	copy(snapshot, d.subscriptions)

	called := 0
	for _, s := range snapshot {
		if !s.active || s.kind != event.Kind() {
			continue
		}
		if s.scope != Window && !sameTarget(s.scope, target) {
			continue
		}
		s.handler(event)
		called++
	}
	return called
}

// Len reports the number of active subscriptions.
func (d *Dispatcher) Len() int {
	return len(d.subscriptions)
}

// sameTarget compares scope and target by identity. Values whose type cannot
// be compared never match, so they cannot make Dispatch panic.
func sameTarget(scope, target any) bool {
	if target == nil {
		return false
	}
	t := reflect.TypeOf(target)
	if reflect.TypeOf(scope) != t || !t.Comparable() {
		return false
	}
	return scope == target
}
