package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slider renders a horizontal gauge showing where a value sits in a
// range, used for the salary field's at-a-glance position.
type Slider struct {
	Value float64
	Min   float64
	Max   float64
	Width int

	TrackStyle lipgloss.Style
	ThumbStyle lipgloss.Style
}

// NewSlider creates a slider over [min, max].
func NewSlider(min, max float64) *Slider {
	return &Slider{
		Min:        min,
		Max:        max,
		Width:      30,
		TrackStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ThumbStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

// SetValue clamps and stores the value.
func (s *Slider) SetValue(value float64) {
	if value < s.Min {
		value = s.Min
	}
	if value > s.Max {
		value = s.Max
	}
	s.Value = value
}

// Percentage returns the value's position in the range.
func (s *Slider) Percentage() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Render draws the track with a filled portion up to the value.
func (s *Slider) Render() string {
	filled := int(s.Percentage() * float64(s.Width))
	if filled > s.Width {
		filled = s.Width
	}
	bar := s.ThumbStyle.Render(strings.Repeat("█", filled)) +
		s.TrackStyle.Render(strings.Repeat("░", s.Width-filled))
	return bar
}
