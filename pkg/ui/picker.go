package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"

	"jigcalc/pkg/presets"
)

// PickerModel is the preset picker overlay: a fuzzy-filtered list of the
// named example geometries.
type PickerModel struct {
	all      []presets.Preset
	filtered []int // indexes into all, in match order
	search   textinput.Model
	selected int

	width  int
	height int

	confirmed bool
	cancelled bool
	choice    *presets.Preset
}

// NewPickerModel creates a picker over the given presets.
func NewPickerModel(ps []presets.Preset) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Filter presets..."
	ti.Prompt = "/ "
	ti.CharLimit = 48
	ti.Width = 32
	ti.Focus()

	m := PickerModel{
		all:    ps,
		search: ti,
		width:  60,
		height: 20,
	}
	m.filterItems()
	return m
}

// SetSize updates the picker dimensions.
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles a key press. All printable keys go to the search input.
func (m *PickerModel) Update(key string) {
	switch key {
	case "esc":
		m.cancelled = true
	case "enter":
		if len(m.filtered) > 0 && m.selected < len(m.filtered) {
			p := m.all[m.filtered[m.selected]]
			m.choice = &p
			m.confirmed = true
		}
	case "up", "ctrl+k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "ctrl+j":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
	case "backspace":
		v := m.search.Value()
		if len(v) > 0 {
			m.search.SetValue(v[:len(v)-1])
			m.filterItems()
		}
	default:
		if len(key) == 1 {
			m.search.SetValue(m.search.Value() + key)
			m.filterItems()
		}
	}
}

// IsConfirmed returns true once a preset has been chosen.
func (m *PickerModel) IsConfirmed() bool { return m.confirmed }

// IsCancelled returns true once the picker was dismissed.
func (m *PickerModel) IsCancelled() bool { return m.cancelled }

// Choice returns the chosen preset, or nil.
func (m *PickerModel) Choice() *presets.Preset { return m.choice }

// ItemCount returns the number of presets matching the current filter.
func (m *PickerModel) ItemCount() int { return len(m.filtered) }

func (m *PickerModel) filterItems() {
	query := strings.TrimSpace(m.search.Value())
	if query == "" {
		m.filtered = make([]int, len(m.all))
		for i := range m.all {
			m.filtered[i] = i
		}
		m.selected = 0
		return
	}

	targets := make([]string, len(m.all))
	for i, p := range m.all {
		targets[i] = p.Name + " " + p.Mode.Label()
	}
	matches := fuzzy.Find(query, targets)
	m.filtered = make([]int, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, match.Index)
	}
	m.selected = 0
}

// View renders the picker overlay centered in the viewport.
func (m *PickerModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Presets"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	innerWidth := 44
	if len(m.filtered) == 0 {
		b.WriteString(HintStyle.Render("no matches"))
	}
	for pos, idx := range m.filtered {
		p := m.all[idx]
		prefix := "  "
		nameStyle := LabelStyle
		if pos == m.selected {
			prefix = "▸ "
			nameStyle = FocusedLabelStyle
		}
		name := truncate.StringWithTail(p.Name, uint(innerWidth-18), "…")
		line := prefix + nameStyle.Render(name) +
			HintStyle.Render("  "+p.Mode.Label())
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HintStyle.Render("↑↓ nav · ⏎ apply · esc close"))

	box := FocusedPanelStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
