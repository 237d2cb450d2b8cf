// Package selector - выпадающий список выбора собеседника без привязки к UI.
//
// Переходы описаны чистой функцией Transition(State, Event) -> (State, Effect),
// а Widget хранит текущее состояние и вызывает колбэк onSelect.
package selector

import "slices"

// options - фиксированный список имен
var options = []string{"Ram", "Shyam", "Ketan"}

// DefaultOption выбран при первом рендере
const DefaultOption = "Ram"

// Options возвращает копию списка, чтобы его нельзя было изменить снаружи
func Options() []string {
	return slices.Clone(options)
}

// IsOption - входит ли имя в фиксированный список
func IsOption(name string) bool {
	return slices.Contains(options, name)
}

type State struct {
	IsOpen         bool   `json:"isOpen"`
	SelectedPerson string `json:"selectedPerson"`
}

// InitialState - закрыт, выбран DefaultOption
func InitialState() State {
	return State{SelectedPerson: DefaultOption}
}

type EventKind int

const (
	// EventToggle - нажатие на кнопку списка
	EventToggle EventKind = iota
	// EventChoose - выбор пункта из открытого списка
	EventChoose
)

type Event struct {
	Kind   EventKind
	Option string
}

func Toggle() Event {
	return Event{Kind: EventToggle}
}

func Choose(option string) Event {
	return Event{Kind: EventChoose, Option: option}
}

// Effect - что нужно сделать после перехода. Notify означает вызов onSelect(Selected).
type Effect struct {
	Notify   bool
	Selected string
}

// Transition вычисляет следующее состояние. Выбор при закрытом списке
// или неизвестного имени ничего не меняет.
func Transition(s State, e Event) (State, Effect) {
	switch e.Kind {
	case EventToggle:
		s.IsOpen = !s.IsOpen
		return s, Effect{}
	case EventChoose:
		if !s.IsOpen || !IsOption(e.Option) {
			return s, Effect{}
		}
		return State{IsOpen: false, SelectedPerson: e.Option}, Effect{Notify: true, Selected: e.Option}
	default:
		return s, Effect{}
	}
}

// Widget - состояние на время жизни компонента
type Widget struct {
	state    State
	onSelect func(string)
}

func NewWidget(onSelect func(string)) *Widget {
	return &Widget{
		state:    InitialState(),
		onSelect: onSelect,
	}
}

func (w *Widget) State() State {
	return w.state
}

// Selected - имя на кнопке
func (w *Widget) Selected() string {
	return w.state.SelectedPerson
}

// VisibleOptions - пункты списка, nil пока список закрыт
func (w *Widget) VisibleOptions() []string {
	if !w.state.IsOpen {
		return nil
	}
	return Options()
}

func (w *Widget) Toggle() {
	w.dispatch(Toggle())
}

func (w *Widget) Choose(option string) {
	w.dispatch(Choose(option))
}

func (w *Widget) dispatch(e Event) {
	next, effect := Transition(w.state, e)
	w.state = next
	if effect.Notify && w.onSelect != nil {
		w.onSelect(effect.Selected)
	}
}
