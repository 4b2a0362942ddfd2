package macroui

// Widget is a node's variant payload. The set of implementations is closed:
// *Container, *Text, *Button and *Input.
type Widget interface {
	Kind() Kind
	// handle reacts to an input event on node h and reports whether it was
	// absorbed.
	handle(t *Tree, h Handle, ev Event) bool
	release()
}

// Container groups children. Its order flags are recorded on the node but
// children are not laid out automatically.
type Container struct{}

// NewContainer returns a container payload.
func NewContainer() *Container { return &Container{} }

func (*Container) Kind() Kind                       { return KindContainer }
func (*Container) handle(*Tree, Handle, Event) bool { return false }
func (*Container) release()                         {}

// Text is static text. Its on-screen extent is measured by the renderer.
type Text struct {
	Content *UString
}

// NewText returns a text payload holding s.
func NewText(s string) *Text { return &Text{Content: NewUString(s)} }

func (*Text) Kind() Kind                       { return KindText }
func (*Text) handle(*Tree, Handle, Event) bool { return false }
func (w *Text) release()                       { w.Content.Reset() }

// Button is a clickable box. Hover is the display color while the pointer
// is inside; OnClick runs when a click lands inside.
type Button struct {
	Hover   Color
	OnClick func(t *Tree, h Handle)
}

// NewButton returns a button payload.
func NewButton(hover Color, onClick func(t *Tree, h Handle)) *Button {
	return &Button{Hover: hover, OnClick: onClick}
}

func (*Button) Kind() Kind { return KindButton }
func (w *Button) release() { w.OnClick = nil }

func (w *Button) handle(t *Tree, h Handle, ev Event) bool {
	switch ev.Type {
	case EventClick:
		if !t.IsHovered(h, ev.Position) {
			return false
		}
		id := t.ID(h)
		if w.OnClick != nil {
			w.OnClick(t, h)
		}
		t.emit(AppEvent{Type: AppButtonClicked, Node: h, ID: id})
		return true
	case EventMouseMove:
		n := t.node(h)
		if t.IsHovered(h, ev.Position) {
			n.display = w.Hover
		} else {
			n.display = n.color
		}
		return false
	}
	return false
}

// Input is a single-line text field. Focus is the node's FlagFocused;
// several inputs may be focused at once.
type Input struct {
	Content *UString
}

// NewInput returns an input payload holding s.
func NewInput(s string) *Input { return &Input{Content: NewUString(s)} }

func (*Input) Kind() Kind { return KindInput }
func (w *Input) release() { w.Content.Reset() }

func (w *Input) handle(t *Tree, h Handle, ev Event) bool {
	focused := t.Flags(h)&FlagFocused != 0
	switch ev.Type {
	case EventClick:
		if !t.IsHovered(h, ev.Position) {
			if focused {
				t.ClearFlags(h, FlagFocused)
				t.emit(AppEvent{Type: AppFocusChanged, Node: h, ID: t.ID(h), Text: w.Content.String()})
			}
			return false
		}
		if !focused {
			t.SetFlags(h, FlagFocused)
			t.emit(AppEvent{Type: AppFocusChanged, Node: h, ID: t.ID(h), Focused: true, Text: w.Content.String()})
		}
		return true
	case EventCharInput:
		if !focused {
			return false
		}
		w.Content.PushRune(ev.Char)
		t.emit(AppEvent{Type: AppInputChanged, Node: h, ID: t.ID(h), Focused: true, Text: w.Content.String()})
		return true
	case EventKey:
		if !focused || ev.Key != KeyBackspace || ev.Action == ActionRelease {
			return false
		}
		if w.Content.TrimEnd(1) > 0 {
			t.emit(AppEvent{Type: AppInputChanged, Node: h, ID: t.ID(h), Focused: true, Text: w.Content.String()})
		}
		return true
	}
	return false
}
