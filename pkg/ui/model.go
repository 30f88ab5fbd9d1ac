// Package ui is the interactive calculator: a live form whose outputs
// recompute on every keystroke. The geometry core stays UI-free; this
// package only parses text fields into a parameter snapshot and renders the
// evaluation back.
package ui

import (
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jigcalc/pkg/geometry"
	"jigcalc/pkg/presets"
)

// Model is the top-level bubbletea model for the calculator.
type Model struct {
	mode        geometry.Mode
	inputs      map[geometry.Field]textinput.Model
	axleToCrown bool
	focus       int

	outputs  geometry.FixtureOutputs
	issues   geometry.ValidationResult
	parseErr map[geometry.Field]bool

	presets []presets.Preset
	picker  *PickerModel

	width  int
	height int
	status string
}

// NewModel creates the calculator pre-populated from an optional snapshot.
func NewModel(ps []presets.Preset, mode geometry.Mode, initial geometry.FrameParameters) Model {
	if !mode.IsValid() {
		mode = geometry.ModeStackReach
	}

	m := Model{
		mode:     mode,
		inputs:   make(map[geometry.Field]textinput.Model),
		parseErr: make(map[geometry.Field]bool),
		presets:  ps,
		width:    100,
		height:   30,
	}

	fields := []geometry.Field{
		geometry.FieldHTA, geometry.FieldSTA, geometry.FieldHTLength,
		geometry.FieldStack, geometry.FieldReach, geometry.FieldFrontCenter,
		geometry.FieldETTTaiwanese, geometry.FieldETTTopTube, geometry.FieldHTTOffset,
		geometry.FieldForkLength, geometry.FieldForkOffset, geometry.FieldLHSH,
		geometry.FieldCSLength, geometry.FieldBBDrop,
	}
	for _, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "—"
		ti.CharLimit = 10
		ti.Width = 10
		m.inputs[f] = ti
	}

	m.applyParams(initial)
	m.axleToCrown = initial.IsAxleToCrown
	m.syncFocus()
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.picker != nil {
			m.picker.SetSize(m.width, m.height)
		}
		return m, nil

	case tea.KeyMsg:
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.picker.Update(msg.String())
	if m.picker.IsConfirmed() {
		if p := m.picker.Choice(); p != nil {
			m.applyPreset(*p)
		}
		m.picker = nil
	} else if m.picker != nil && m.picker.IsCancelled() {
		m.picker = nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "enter", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil

	case "ctrl+t":
		m.cycleMode()
		return m, nil

	case "ctrl+a":
		if m.mode.UsesFork() {
			m.axleToCrown = !m.axleToCrown
			m.recompute()
		}
		return m, nil

	case "ctrl+p":
		picker := NewPickerModel(m.presets)
		picker.SetSize(m.width, m.height)
		m.picker = &picker
		return m, nil

	case "ctrl+y":
		if err := clipboard.WriteAll(PlainSheet(m.mode, m.outputs)); err != nil {
			m.status = "copy failed: " + err.Error()
		} else {
			m.status = "setup sheet copied"
		}
		return m, nil
	}

	// Everything else edits the focused field.
	f := m.focusedField()
	ti, cmd := m.inputs[f].Update(msg)
	m.inputs[f] = ti
	m.recompute()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.picker != nil {
		return m.picker.View()
	}

	header := TitleStyle.Render("jigcalc") + HintStyle.Render("  ·  frame jig setup")
	modeLine := LabelStyle.Render("Mode: ") + FocusedLabelStyle.Render(m.mode.Label())

	left := FocusedPanelStyle.Render(m.renderForm())
	right := PanelStyle.Render(RenderSheet(m.mode, m.outputs))
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	footer := m.renderFooter()

	sections := []string{header, modeLine, panels, RenderDivider(lipgloss.Width(panels))}
	if m.status != "" {
		sections = append(sections, HintStyle.Render(m.status))
	}
	sections = append(sections, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderForm() string {
	var b strings.Builder
	for i, f := range m.mode.Fields() {
		label := LabelStyle
		marker := "  "
		if i == m.focus {
			label = FocusedLabelStyle
			marker = "▸ "
		}
		b.WriteString(marker + label.Render(padLabel(f.Label())) + m.inputs[f].View())
		b.WriteString("\n")
		for _, issue := range m.issues.ForField(f) {
			b.WriteString(IssueStyle.Render("    " + issue.Reason))
			b.WriteString("\n")
		}
		if m.parseErr[f] {
			b.WriteString(IssueStyle.Render("    not a number"))
			b.WriteString("\n")
		}
	}

	if m.mode.UsesFork() {
		flag := "no"
		if m.axleToCrown {
			flag = "yes"
		}
		b.WriteString("\n  " + LabelStyle.Render(padLabel("Axle-to-Crown")) + ValueStyle.Render(flag))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderFooter() string {
	sep := HintStyle.Render(" · ")
	bind := func(key, desc string) string {
		return KeyStyle.Render(key) + HintStyle.Render(" "+desc)
	}
	parts := []string{
		bind("tab", "next"),
		bind("^t", "mode"),
		bind("^p", "presets"),
		bind("^y", "copy"),
	}
	if m.mode.UsesFork() {
		parts = append(parts, bind("^a", "a-to-c"))
	}
	parts = append(parts, bind("esc", "quit"))
	return strings.Join(parts, sep)
}

func padLabel(s string) string {
	const w = 24
	if len(s) >= w {
		return s + " "
	}
	return s + strings.Repeat(" ", w-len(s))
}

// ── focus and mode handling ─────────────────────────────────────────────────

func (m *Model) focusedField() geometry.Field {
	fields := m.mode.Fields()
	if m.focus >= len(fields) {
		m.focus = 0
	}
	return fields[m.focus]
}

func (m *Model) moveFocus(delta int) {
	fields := m.mode.Fields()
	m.focus = (m.focus + delta + len(fields)) % len(fields)
	m.syncFocus()
}

func (m *Model) syncFocus() {
	current := m.focusedField()
	for f, ti := range m.inputs {
		if f == current {
			ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[f] = ti
	}
}

func (m *Model) cycleMode() {
	modes := geometry.Modes()
	for i, mode := range modes {
		if mode == m.mode {
			m.mode = modes[(i+1)%len(modes)]
			break
		}
	}
	m.focus = 0
	m.status = ""
	m.syncFocus()
	m.recompute()
}

// ── data flow ───────────────────────────────────────────────────────────────

func (m *Model) applyParams(p geometry.FrameParameters) {
	for f, ti := range m.inputs {
		if v := p.Value(f); v != nil {
			ti.SetValue(strconv.FormatFloat(*v, 'f', -1, 64))
		} else {
			ti.SetValue("")
		}
		m.inputs[f] = ti
	}
}

func (m *Model) applyPreset(p presets.Preset) {
	m.mode = p.Mode
	m.applyParams(p.Params)
	m.axleToCrown = p.Params.IsAxleToCrown
	m.focus = 0
	m.status = "preset applied: " + p.Name
	m.syncFocus()
	m.recompute()
}

// Snapshot parses the current form into a parameter snapshot for the active
// mode. Unparseable text is treated as absent and flagged inline.
func (m *Model) Snapshot() geometry.FrameParameters {
	var p geometry.FrameParameters
	m.parseErr = make(map[geometry.Field]bool)
	for _, f := range m.mode.Fields() {
		raw := strings.TrimSpace(m.inputs[f].Value())
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.parseErr[f] = true
			continue
		}
		p.Set(f, v)
	}
	p.IsAxleToCrown = m.axleToCrown
	return p
}

// Outputs returns the latest evaluation.
func (m *Model) Outputs() geometry.FixtureOutputs {
	return m.outputs
}

// Mode returns the active primary dimension mode.
func (m *Model) Mode() geometry.Mode {
	return m.mode
}

func (m *Model) recompute() {
	p := m.Snapshot()
	m.issues = geometry.CheckParameters(m.mode, p)

	// Fields that fail validation count as absent for the calculator; the
	// issue stays visible next to the field.
	cleared := p.Clone()
	for _, issue := range m.issues.Issues {
		cleared.Clear(issue.Field)
	}
	m.outputs = geometry.Evaluate(m.mode, cleared)
}
