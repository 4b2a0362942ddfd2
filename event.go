package macroui

// Event is one input or render event. Fields that do not apply to Type are
// zero.
type Event struct {
	Category Category
	Type     EventType

	// Position is the pointer location in tree space (Click, MouseMove).
	Position Vec2
	// Char is the typed code point (CharInput).
	Char rune
	// Key and Action describe a key transition (Key).
	Key    Key
	Action Action
	// Width and Height are the new framebuffer size in pixels (Resize).
	Width, Height int
}

// ClickEvent returns a primary-button click at p.
func ClickEvent(p Vec2) Event {
	return Event{Category: CategoryInput, Type: EventClick, Position: p}
}

// MouseMoveEvent returns a pointer move to p.
func MouseMoveEvent(p Vec2) Event {
	return Event{Category: CategoryInput, Type: EventMouseMove, Position: p}
}

// CharEvent returns a typed character.
func CharEvent(r rune) Event {
	return Event{Category: CategoryInput, Type: EventCharInput, Char: r}
}

// KeyEvent returns a key transition.
func KeyEvent(k Key, a Action) Event {
	return Event{Category: CategoryInput, Type: EventKey, Key: k, Action: a}
}

// ResizeEvent returns a framebuffer resize to w x h pixels.
func ResizeEvent(w, h int) Event {
	return Event{Category: CategoryRender, Type: EventResize, Width: w, Height: h}
}

// initialStackCap is the capacity reserved by the first Push.
const initialStackCap = 32

// EventStack is a growable buffer of pending events. Pop removes the most
// recently pushed event; Drain hands over everything in push order.
// An EventStack must only be used from the goroutine running the host loop.
type EventStack struct {
	events []Event
}

// Push copies ev onto the top of the stack.
func (s *EventStack) Push(ev Event) {
	if s.events == nil {
		s.events = make([]Event, 0, initialStackCap)
	}
	s.events = append(s.events, ev)
}

// Pop removes and returns the most recently pushed event. On an empty stack
// it returns the zero Event and false.
func (s *EventStack) Pop() (Event, bool) {
	n := len(s.events)
	if n == 0 {
		return Event{}, false
	}
	ev := s.events[n-1]
	s.events = s.events[:n-1]
	return ev, true
}

// Drain removes every pending event and returns them oldest first. The
// returned slice is owned by the caller.
func (s *EventStack) Drain() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// Len returns the number of pending events.
func (s *EventStack) Len() int {
	return len(s.events)
}

// Reset discards all pending events, keeping capacity.
func (s *EventStack) Reset() {
	s.events = s.events[:0]
}
