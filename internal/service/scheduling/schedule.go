package scheduling

import (
	"fmt"
	"time"

	"github.com/clinicore/clinic-api/internal/config"
	"github.com/clinicore/clinic-api/internal/model"
)

// Schedule is the clinic's fixed daily appointment template: an ordered,
// immutable sequence of bookable slot times split into a morning and an
// afternoon block.
type Schedule struct {
	slots []string
	index map[string]struct{}
}

// NewSchedule builds a template from an ordered list of HH:MM times.
func NewSchedule(slots []string) Schedule {
	s := Schedule{
		slots: make([]string, len(slots)),
		index: make(map[string]struct{}, len(slots)),
	}
	copy(s.slots, slots)
	for _, t := range slots {
		s.index[t] = struct{}{}
	}
	return s
}

// FromConfig derives the template from the clinic's block configuration.
// Block ends are exclusive, so morning 09:00-12:00 and afternoon
// 14:00-17:30 at 30 minutes yield the 13 reference slots.
func FromConfig(cfg config.ClinicConfig) (Schedule, error) {
	if cfg.SlotMinutes <= 0 {
		return Schedule{}, fmt.Errorf("invalid slot length %d", cfg.SlotMinutes)
	}

	var slots []string
	for _, block := range [][2]string{
		{cfg.MorningStart, cfg.MorningEnd},
		{cfg.AfternoonStart, cfg.AfternoonEnd},
	} {
		start, err := time.Parse(model.SlotLayout, block[0])
		if err != nil {
			return Schedule{}, fmt.Errorf("invalid block start %q: %w", block[0], err)
		}
		end, err := time.Parse(model.SlotLayout, block[1])
		if err != nil {
			return Schedule{}, fmt.Errorf("invalid block end %q: %w", block[1], err)
		}
		for t := start; t.Before(end); t = t.Add(time.Duration(cfg.SlotMinutes) * time.Minute) {
			slots = append(slots, t.Format(model.SlotLayout))
		}
	}
	if len(slots) == 0 {
		return Schedule{}, fmt.Errorf("schedule has no slots")
	}
	return NewSchedule(slots), nil
}

// Slots returns the full template in order.
func (s Schedule) Slots() []string {
	out := make([]string, len(s.slots))
	copy(out, s.slots)
	return out
}

// Len returns the number of slots in the template.
func (s Schedule) Len() int {
	return len(s.slots)
}

// Contains reports whether t is a template slot.
func (s Schedule) Contains(t string) bool {
	_, ok := s.index[t]
	return ok
}

// Available computes the template slots not occupied by any entry of
// booked, preserving template order. With no bookings the full template
// comes back.
func (s Schedule) Available(booked []string) []string {
	occupied := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		occupied[t] = struct{}{}
	}

	available := make([]string, 0, len(s.slots))
	for _, t := range s.slots {
		if _, ok := occupied[t]; !ok {
			available = append(available, t)
		}
	}
	return available
}
