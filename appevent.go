package macroui

// EventSink receives application events emitted by widgets. Set one on a
// Tree with SetSink.
type EventSink interface {
	Emit(ev AppEvent)
}

// AppEvent carries an application-level widget event.
type AppEvent struct {
	Type AppEventType
	Node Handle
	ID   ID
	// Text is the input's content after the change (AppInputChanged,
	// AppFocusChanged).
	Text string
	// Focused is the input's focus state after the event.
	Focused bool
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(AppEvent)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev AppEvent) { f(ev) }

func (t AppEventType) String() string {
	switch t {
	case AppButtonClicked:
		return "button-clicked"
	case AppInputChanged:
		return "input-changed"
	case AppFocusChanged:
		return "focus-changed"
	default:
		return "unknown"
	}
}
