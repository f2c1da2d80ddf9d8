package qtable

import (
	"quixo/game"
)

// Key identifies a state: the serialized board and the player to act.
type Key struct {
	Board  string
	Player game.Player
}

func NewKey(board *game.Board, player game.Player) Key {
	return Key{Board: board.Key(), Player: player}
}

// Values maps actions to values, remembering the order actions were first seen.
type Values struct {
	index   map[game.Action]int
	actions []game.Action
	values  []float64
}

func newValues() *Values {
	return &Values{index: make(map[game.Action]int)}
}

func (v *Values) Len() int {
	return len(v.actions)
}

func (v *Values) Get(action game.Action) (float64, bool) {
	i, ok := v.index[action]
	if !ok {
		return 0, false
	}
	return v.values[i], true
}

// GetOrZero returns the value of action, inserting 0 the first time it is asked for.
func (v *Values) GetOrZero(action game.Action) float64 {
	i, ok := v.index[action]
	if !ok {
		v.insert(action, 0)
		return 0
	}
	return v.values[i]
}

func (v *Values) Set(action game.Action, value float64) {
	if i, ok := v.index[action]; ok {
		v.values[i] = value
		return
	}
	v.insert(action, value)
}

// Add shifts the value of action by delta and returns the result.
func (v *Values) Add(action game.Action, delta float64) float64 {
	value := v.GetOrZero(action) + delta
	v.Set(action, value)
	return value
}

func (v *Values) insert(action game.Action, value float64) {
	v.index[action] = len(v.actions)
	v.actions = append(v.actions, action)
	v.values = append(v.values, value)
}

// Actions returns the known actions in insertion order.
func (v *Values) Actions() []game.Action {
	actions := make([]game.Action, len(v.actions))
	copy(actions, v.actions)
	return actions
}

func (v *Values) Max() (float64, bool) {
	_, value, ok := v.best()
	return value, ok
}

// Best returns the action with the highest value; the earliest inserted wins ties.
func (v *Values) Best() (game.Action, bool) {
	action, _, ok := v.best()
	return action, ok
}

func (v *Values) best() (game.Action, float64, bool) {
	if len(v.actions) == 0 {
		return game.Action{}, 0, false
	}
	best := 0
	for i, value := range v.values[1:] {
		if value > v.values[best] {
			best = i + 1
		}
	}
	return v.actions[best], v.values[best], true
}

// Table is a Q-table: per state, the learned value of each action.
type Table struct {
	states map[Key]*Values
	keys   []Key
}

func New() *Table {
	return &Table{states: make(map[Key]*Values)}
}

func (t *Table) Lookup(key Key) (*Values, bool) {
	v, ok := t.states[key]
	return v, ok
}

// Ensure returns the values of key, adding an empty mapping for unseen states.
func (t *Table) Ensure(key Key) *Values {
	if v, ok := t.states[key]; ok {
		return v
	}
	v := newValues()
	t.states[key] = v
	t.keys = append(t.keys, key)
	return v
}

func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the states in insertion order.
func (t *Table) Keys() []Key {
	keys := make([]Key, len(t.keys))
	copy(keys, t.keys)
	return keys
}
