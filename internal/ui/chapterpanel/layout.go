package chapterpanel

// layoutObserver runs listeners after each layout pass. A listener receives
// a remove function and may call it to unregister itself while running.
type layoutObserver struct {
	listeners []*layoutListener
}

type layoutListener struct {
	fn      func(remove func())
	removed bool
}

func (o *layoutObserver) add(fn func(remove func())) {
	o.listeners = append(o.listeners, &layoutListener{fn: fn})
}

// dispatch notifies every listener registered before the call.
func (o *layoutObserver) dispatch() {
	current := o.listeners
	for _, l := range current {
		if l.removed {
			continue
		}
		l.fn(func() { l.removed = true })
	}
	kept := o.listeners[:0]
	for _, l := range o.listeners {
		if !l.removed {
			kept = append(kept, l)
		}
	}
	clear(o.listeners[len(kept):])
	o.listeners = kept
}

func (o *layoutObserver) clear() {
	o.listeners = nil
}

func (o *layoutObserver) len() int {
	return len(o.listeners)
}
