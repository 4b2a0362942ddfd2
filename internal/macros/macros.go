// Package macros is the in-memory meal log of the macro tracker.
package macros

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidMeal is returned by Add when a meal's macros account for at
// least as many calories as the meal declares.
var ErrInvalidMeal = errors.New("meal's macros are greater than calories")

// Macro is the nutrient breakdown of a meal. Grams, except Calories (kcal).
type Macro struct {
	Calories uint32
	Protein  uint32
	Fat      uint32
	Carbs    uint32
}

// MacroCalories returns the energy the macros account for: 4 kcal per gram
// of protein and carbs, 9 per gram of fat.
func (m Macro) MacroCalories() uint64 {
	return (uint64(m.Protein)+uint64(m.Carbs))*4 + uint64(m.Fat)*9
}

// Date is a calendar day.
type Date struct {
	Year  uint32
	Month uint32
	Day   uint32
}

// DateOf returns t's calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: uint32(y), Month: uint32(m), Day: uint32(d)}
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
}

// Meal is one logged meal.
type Meal struct {
	ID    string
	Macro Macro
	Date  Date
}

// Valid reports whether the declared calories exceed what the macros
// account for.
func (m Meal) Valid() bool {
	return uint64(m.Macro.Calories) > m.Macro.MacroCalories()
}

// Database holds meals in insertion order.
type Database struct {
	meals []Meal
}

// NewDatabase returns an empty meal log.
func NewDatabase() *Database {
	return &Database{meals: make([]Meal, 0, 32)}
}

// Add validates and appends meal, assigning an ID when it has none.
func (db *Database) Add(meal Meal) (Meal, error) {
	if !meal.Valid() {
		return Meal{}, fmt.Errorf("add meal (%d kcal, macros %d kcal): %w",
			meal.Macro.Calories, meal.Macro.MacroCalories(), ErrInvalidMeal)
	}
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	db.meals = append(db.meals, meal)
	return meal, nil
}

// Len returns the number of meals.
func (db *Database) Len() int {
	return len(db.meals)
}

// Meals returns a copy of the logged meals.
func (db *Database) Meals() []Meal {
	out := make([]Meal, len(db.meals))
	copy(out, db.meals)
	return out
}

// Total sums the macros of all meals logged on day.
func (db *Database) Total(day Date) Macro {
	var sum Macro
	for _, m := range db.meals {
		if m.Date != day {
			continue
		}
		sum.Calories += m.Macro.Calories
		sum.Protein += m.Macro.Protein
		sum.Fat += m.Macro.Fat
		sum.Carbs += m.Macro.Carbs
	}
	return sum
}

// ParseMacro parses the four entry fields. Blank fields count as zero.
func ParseMacro(calories, protein, fat, carbs string) (Macro, error) {
	var m Macro
	fields := []struct {
		name string
		in   string
		out  *uint32
	}{
		{"calories", calories, &m.Calories},
		{"protein", protein, &m.Protein},
		{"fat", fat, &m.Fat},
		{"carbs", carbs, &m.Carbs},
	}
	for _, f := range fields {
		s := strings.TrimSpace(f.in)
		if s == "" {
			continue
		}
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return Macro{}, fmt.Errorf("parse %s %q: %w", f.name, f.in, err)
		}
		*f.out = uint32(v)
	}
	return m, nil
}
