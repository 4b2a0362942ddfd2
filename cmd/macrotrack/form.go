package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phanxgames/macroui"
	"github.com/phanxgames/macroui/internal/macros"
)

// Node ids of the entry form.
const (
	idPanel macroui.ID = iota + 1
	idStatus
	idCalories
	idProtein
	idFat
	idCarbs
	idAddMeal
	idLabelBase macroui.ID = 100
)

var (
	colorPanel  = macroui.Color{R: 0.55, G: 0.55, B: 0.6, A: 1}
	colorField  = macroui.Color{R: 0.18, G: 0.18, B: 0.22, A: 1}
	colorButton = macroui.Color{R: 0.2, G: 0.45, B: 0.3, A: 1}
	colorHover  = macroui.Color{R: 0.3, G: 0.6, B: 0.4, A: 1}
)

var fields = []struct {
	id    macroui.ID
	label string
}{
	{idCalories, "Calories"},
	{idProtein, "Protein (g)"},
	{idFat, "Fat (g)"},
	{idCarbs, "Carbs (g)"},
}

// form is the meal entry panel and the log it feeds.
type form struct {
	tree *macroui.Tree
	db   *macros.Database
	log  *slog.Logger
	now  func() time.Time
}

// buildForm lays out the entry panel under tree's root.
func buildForm(tree *macroui.Tree, db *macros.Database, log *slog.Logger) (*form, error) {
	f := &form{tree: tree, db: db, log: log, now: time.Now}

	panel, err := tree.AddChild(tree.Root(), macroui.Descriptor{
		ID:    idPanel,
		Flags: macroui.FlagOrderVertical | macroui.FlagWireframe,
		Size:  macroui.Size{Width: 1.2, Height: 0.9},
		Color: colorPanel,
	})
	if err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}

	add := func(d macroui.Descriptor) error {
		if _, err := tree.AddChild(panel, d); err != nil {
			return fmt.Errorf("build form: %w", err)
		}
		return nil
	}

	if err := add(macroui.Descriptor{
		ID:       idStatus,
		Size:     macroui.Size{Fill: macroui.FillWidth, Height: 0.1},
		Position: macroui.Vec2{Y: 0.35},
		Widget:   macroui.NewText("Enter a meal"),
	}); err != nil {
		return nil, err
	}

	for i, fd := range fields {
		y := 0.2 - float64(i)*0.12
		if err := add(macroui.Descriptor{
			ID:       idLabelBase + fd.id,
			Size:     macroui.Size{Width: 0.5, Height: 0.1},
			Position: macroui.Vec2{X: -0.28, Y: y},
			Widget:   macroui.NewText(fd.label),
		}); err != nil {
			return nil, err
		}
		if err := add(macroui.Descriptor{
			ID:       fd.id,
			Size:     macroui.Size{Width: 0.5, Height: 0.1},
			Position: macroui.Vec2{X: 0.28, Y: y},
			Color:    colorField,
			Widget:   macroui.NewInput(""),
		}); err != nil {
			return nil, err
		}
	}

	if err := add(macroui.Descriptor{
		ID:       idAddMeal,
		Size:     macroui.Size{Width: 0.4, Height: 0.1},
		Position: macroui.Vec2{Y: -0.32},
		Color:    colorButton,
		Widget:   macroui.NewButton(colorHover, nil),
	}); err != nil {
		return nil, err
	}
	// Buttons carry no text; the label is a sibling drawn on top of it.
	if err := add(macroui.Descriptor{
		ID:       idLabelBase + idAddMeal,
		Size:     macroui.Size{Width: 0.4, Height: 0.1},
		Position: macroui.Vec2{X: 0.09, Y: -0.32},
		Widget:   macroui.NewText("Add meal"),
	}); err != nil {
		return nil, err
	}
	return f, nil
}

// field returns the content of the input with the given id.
func (f *form) field(id macroui.ID) string {
	h, ok := f.tree.FindByID(f.tree.Root(), id)
	if !ok {
		return ""
	}
	in, ok := f.tree.Widget(h).(*macroui.Input)
	if !ok {
		return ""
	}
	return in.Content.String()
}

// clearFields empties every input.
func (f *form) clearFields() {
	for _, fd := range fields {
		if h, ok := f.tree.FindByID(f.tree.Root(), fd.id); ok {
			f.tree.Widget(h).(*macroui.Input).Content.Reset()
		}
	}
}

// setStatus replaces the status line.
func (f *form) setStatus(s string) {
	h, ok := f.tree.FindByID(f.tree.Root(), idStatus)
	if !ok {
		return
	}
	c := f.tree.Widget(h).(*macroui.Text).Content
	c.Reset()
	c.AppendString(s)
}

// submit parses the inputs and logs a meal for today.
func (f *form) submit() error {
	m, err := macros.ParseMacro(f.field(idCalories), f.field(idProtein), f.field(idFat), f.field(idCarbs))
	if err != nil {
		f.setStatus("Macros must be whole numbers")
		return err
	}
	meal, err := f.db.Add(macros.Meal{Macro: m, Date: macros.DateOf(f.now())})
	if err != nil {
		if errors.Is(err, macros.ErrInvalidMeal) {
			f.setStatus("Meal's macros are greater than calories")
		}
		return err
	}
	f.clearFields()
	total := f.db.Total(meal.Date)
	f.setStatus(fmt.Sprintf("Today: %d kcal, %dg protein", total.Calories, total.Protein))
	f.log.Info("meal added", "id", meal.ID, "date", meal.Date.String(), "calories", m.Calories)
	return nil
}

// handle reacts to application events from the tree.
func (f *form) handle(ev macroui.AppEvent) {
	switch ev.Type {
	case macroui.AppButtonClicked:
		if ev.ID != idAddMeal {
			return
		}
		if err := f.submit(); err != nil {
			f.log.Warn("meal rejected", "err", err)
		}
	case macroui.AppInputChanged:
		f.log.Debug("input changed", "id", ev.ID, "text", ev.Text)
	case macroui.AppFocusChanged:
		f.log.Debug("focus changed", "id", ev.ID, "focused", ev.Focused)
	}
}
