package macroui

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions and points in tree space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// ID is an application-assigned node identifier, independent of storage.
type ID uint32

const (
	// RootID is reserved for the tree root.
	RootID ID = 0
	// NoID is the "no id" sentinel. Nodes created with NoID are anonymous
	// and cannot be found by id; FindByID(from, NoID) matches from itself.
	NoID ID = math.MaxUint32
)

// Kind is the widget variant of a node.
type Kind uint8

const (
	KindContainer Kind = iota // grouping node
	KindText                  // static text
	KindButton                // clickable box with hover color
	KindInput                 // focusable single-line text input
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindInput:
		return "input"
	default:
		return "unknown"
	}
}

// Flags is the per-node flag bitset.
type Flags uint8

const (
	FlagHidden          Flags = 1 << iota // node and descendants are not drawn or dispatched to
	FlagWireframe                         // renderer draws the outline only
	FlagFocused                           // input has keyboard focus
	FlagOrderVertical                     // container child order (recorded, no auto-flow)
	FlagOrderHorizontal                   // container child order (recorded, no auto-flow)
)

// SizeFill selects axes whose extent mirrors the direct parent's extent.
type SizeFill uint8

const (
	FillNone   SizeFill = 0 // real size on both axes
	FillWidth  SizeFill = 1 // width follows the parent's width
	FillHeight SizeFill = 2 // height follows the parent's height
)

// Size is a node's extent in tree space, plus optional fill overrides.
type Size struct {
	Width, Height float64
	Fill          SizeFill
}

// MaxExtent is the largest extent SetSize accepts on either axis.
const MaxExtent = 1.01

// Category groups event types by their consumer.
type Category uint8

const (
	CategoryNone   Category = iota
	CategoryInput           // pointer and keyboard events, dispatched to widgets
	CategoryRender          // renderer events, ignored by widgets
)

// EventType identifies a kind of event.
type EventType uint8

const (
	EventNone      EventType = iota
	EventClick               // primary button pressed at Position
	EventCharInput           // a decoded character was typed (Char)
	EventMouseMove           // pointer moved to Position
	EventFocusSet            // reserved; no widget handles it
	EventKey                 // Key changed state (Action)
	EventResize              // framebuffer resized to Width x Height pixels
)

func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventCharInput:
		return "char"
	case EventMouseMove:
		return "move"
	case EventFocusSet:
		return "focus"
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Key identifies a keyboard key. Only keys the widgets or the host react to
// have names; backends may pass any other key as KeyUnknown.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyHome
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Action is the state transition of a key.
type Action uint8

const (
	ActionRelease Action = iota // key released
	ActionPress                 // key pressed
	ActionRepeat                // key held long enough to auto-repeat
)

// AppEventType identifies an application-level event emitted by widgets.
type AppEventType uint8

const (
	AppButtonClicked AppEventType = iota // a button absorbed a click
	AppInputChanged                      // an input's text was edited
	AppFocusChanged                      // an input gained or lost focus
)
