package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidgetScenario(t *testing.T) {
	var selected []string
	w := NewWidget(func(name string) { selected = append(selected, name) })

	assert.Equal(t, "Ram", w.Selected())
	assert.False(t, w.State().IsOpen)
	assert.Nil(t, w.VisibleOptions())

	w.Toggle()
	require.True(t, w.State().IsOpen)
	assert.Equal(t, []string{"Ram", "Shyam", "Ketan"}, w.VisibleOptions())

	w.Choose("Shyam")
	assert.Equal(t, []string{"Shyam"}, selected)
	assert.Equal(t, "Shyam", w.Selected())
	assert.False(t, w.State().IsOpen)
	assert.Nil(t, w.VisibleOptions())
}

func TestTransitionTable(t *testing.T) {
	closed := InitialState()
	open := State{IsOpen: true, SelectedPerson: "Ram"}

	cases := []struct {
		name       string
		from       State
		event      Event
		want       State
		wantEffect Effect
	}{
		{"toggle opens", closed, Toggle(), open, Effect{}},
		{"toggle closes", open, Toggle(), closed, Effect{}},
		{"choose closes and notifies", open, Choose("Ketan"), State{SelectedPerson: "Ketan"}, Effect{Notify: true, Selected: "Ketan"}},
		{"choose same option still notifies", open, Choose("Ram"), closed, Effect{Notify: true, Selected: "Ram"}},
		{"choose while closed is ignored", closed, Choose("Shyam"), closed, Effect{}},
		{"unknown option is ignored", open, Choose("Mallory"), open, Effect{}},
		{"unknown event is ignored", open, Event{Kind: EventKind(42)}, open, Effect{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, effect := Transition(tc.from, tc.event)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantEffect, effect)
		})
	}
}

func TestOptionsReturnsCopy(t *testing.T) {
	opts := Options()
	opts[0] = "Mallory"
	assert.Equal(t, "Ram", Options()[0])
	assert.True(t, IsOption("Ketan"))
	assert.False(t, IsOption("ram"))
}

func TestWidgetWithoutCallback(t *testing.T) {
	w := NewWidget(nil)
	w.Toggle()
	assert.NotPanics(t, func() { w.Choose("Ketan") })
	assert.Equal(t, "Ketan", w.Selected())
}

func TestRemountResetsState(t *testing.T) {
	w := NewWidget(nil)
	w.Toggle()
	w.Choose("Ketan")

	w = NewWidget(nil)
	assert.Equal(t, InitialState(), w.State())
}
