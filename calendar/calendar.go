// Package calendar defines the fixed event calendar: ordered days, ordered
// slots per day, and the lunch/break blackouts shared by every rep.
package calendar

import (
	"fmt"
	"strings"
	"time"

	customerrors "meeting-scheduler/errors"
)

// SlotState tags a slot as bookable or blacked out.
type SlotState string

const (
	Open  SlotState = "open"
	Lunch SlotState = "lunch"
	Break SlotState = "break"
)

// Slot is one meeting slot within a day.
type Slot struct {
	Label string    `json:"label"`
	State SlotState `json:"state"`
}

// Day is an ordered list of slots.
type Day struct {
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// Calendar is the full event calendar. It is read-only once built.
type Calendar struct {
	Days []Day `json:"days"`
}

// Key identifies a slot by day and slot index.
type Key struct {
	Day  int
	Slot int
}

// IsOpen reports whether the slot exists and is bookable. An empty state is
// treated as open.
func (c Calendar) IsOpen(k Key) bool {
	if k.Day < 0 || k.Day >= len(c.Days) {
		return false
	}
	slots := c.Days[k.Day].Slots
	if k.Slot < 0 || k.Slot >= len(slots) {
		return false
	}
	st := slots[k.Slot].State
	return st == "" || st == Open
}

// OpenSlots returns the indices of the bookable slots of a day in calendar order.
func (c Calendar) OpenSlots(day int) []int {
	var out []int
	for i := range c.Days[day].Slots {
		if c.IsOpen(Key{Day: day, Slot: i}) {
			out = append(out, i)
		}
	}
	return out
}

// OpenCount is the number of bookable slots across all days.
func (c Calendar) OpenCount() int {
	n := 0
	for d := range c.Days {
		n += len(c.OpenSlots(d))
	}
	return n
}

// Labels returns the day name and slot label for a key.
func (c Calendar) Labels(k Key) (string, string) {
	day := c.Days[k.Day]
	return day.Name, day.Slots[k.Slot].Label
}

// Validate checks slot states and that at least one slot can be booked.
func (c Calendar) Validate() error {
	if len(c.Days) == 0 {
		return &customerrors.ConfigError{Field: "calendar.days", Value: 0, Err: customerrors.ErrNoOpenSlots}
	}
	for _, d := range c.Days {
		for _, s := range d.Slots {
			switch SlotState(strings.ToLower(string(s.State))) {
			case "", Open, Lunch, Break:
			default:
				return &customerrors.ConfigError{
					Field: fmt.Sprintf("calendar.%s.%s.state", d.Name, s.Label),
					Value: s.State,
					Err:   customerrors.ErrInvalidConfig,
				}
			}
		}
	}
	if c.OpenCount() == 0 {
		return &customerrors.ConfigError{Field: "calendar", Value: len(c.Days), Err: customerrors.ErrNoOpenSlots}
	}
	return nil
}

// Normalize lower-cases slot states so config files may use "LUNCH" or "Lunch".
func (c *Calendar) Normalize() {
	for d := range c.Days {
		for s := range c.Days[d].Slots {
			st := &c.Days[d].Slots[s].State
			*st = SlotState(strings.ToLower(string(*st)))
		}
	}
}

// Default returns the two-day forum calendar: 20 minute slots from 9:00 AM to
// 4:40 PM, a morning and an afternoon break, and a one hour lunch.
func Default() Calendar {
	blackouts := map[string]SlotState{
		"10:20 AM": Break,
		"12:00 PM": Lunch,
		"12:20 PM": Lunch,
		"12:40 PM": Lunch,
		"2:40 PM":  Break,
	}
	build := func(name string) Day {
		day := Day{Name: name}
		start := time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC)
		for t := start; t.Hour() < 17; t = t.Add(20 * time.Minute) {
			label := t.Format("3:04 PM")
			state := Open
			if b, ok := blackouts[label]; ok {
				state = b
			}
			day.Slots = append(day.Slots, Slot{Label: label, State: state})
		}
		return day
	}
	return Calendar{Days: []Day{build("Day 1"), build("Day 2")}}
}
