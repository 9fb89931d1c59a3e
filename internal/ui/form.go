package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"campaigndash/internal/ui/views"
)

type formField struct {
	key      string
	label    string
	input    textinput.Model
	checkbox bool
	checked  bool
}

// form is an ordered set of fields with one focused at a time
type form struct {
	fields []*formField
	focus  int
}

type fieldSpec struct {
	key         string
	label       string
	placeholder string
	password    bool
	checkbox    bool
}

func newForm(specs ...fieldSpec) *form {
	f := &form{}
	for _, s := range specs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = s.placeholder
		ti.CharLimit = 128
		if s.password {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.fields = append(f.fields, &formField{key: s.key, label: s.label, input: ti, checkbox: s.checkbox})
	}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) tea.Cmd {
	n := len(f.fields)
	if n == 0 {
		return nil
	}
	f.focus = (i%n + n) % n
	var cmd tea.Cmd
	for j, field := range f.fields {
		if j == f.focus && !field.checkbox {
			cmd = field.input.Focus()
		} else {
			field.input.Blur()
		}
	}
	return cmd
}

// move shifts focus with wraparound
func (f *form) move(delta int) tea.Cmd {
	return f.setFocus(f.focus + delta)
}

func (f *form) focusKey(key string) tea.Cmd {
	for i, field := range f.fields {
		if field.key == key {
			return f.setFocus(i)
		}
	}
	return nil
}

func (f *form) focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focus].key
}

func (f *form) field(key string) *formField {
	for _, field := range f.fields {
		if field.key == key {
			return field
		}
	}
	return nil
}

func (f *form) value(key string) string {
	if field := f.field(key); field != nil {
		return field.input.Value()
	}
	return ""
}

func (f *form) setValue(key, v string) {
	if field := f.field(key); field != nil {
		field.input.SetValue(v)
	}
}

func (f *form) checked(key string) bool {
	if field := f.field(key); field != nil {
		return field.checked
	}
	return false
}

func (f *form) setChecked(key string, v bool) {
	if field := f.field(key); field != nil {
		field.checked = v
	}
}

// update forwards a message to the focused input
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	field := f.fields[f.focus]
	if field.checkbox {
		return nil
	}
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return cmd
}

func (f *form) reset() {
	for _, field := range f.fields {
		field.input.Reset()
		field.checked = false
	}
	f.setFocus(0)
}

// views renders the fields with the given errors
func (f *form) views(errs map[string]string) []views.FieldView {
	out := make([]views.FieldView, 0, len(f.fields))
	for i, field := range f.fields {
		out = append(out, views.FieldView{
			Key:      field.key,
			Label:    field.label,
			Input:    field.input.View(),
			Error:    errs[field.key],
			Focused:  i == f.focus,
			Checkbox: field.checkbox,
			Checked:  field.checked,
		})
	}
	return out
}
