package manager

import (
	"snake-minigame/game/types"

	"github.com/pkg/errors"
)

// StateManager is the session lifecycle machine. Only transitions listed in
// its table are allowed; Win and ExitModal have no rule unless one is added.
type StateManager struct {
	phase       types.Phase
	transitions map[types.Phase]map[types.Phase]bool
	onChange    []func(from, to types.Phase)
}

func NewStateManager() *StateManager {
	sm := &StateManager{
		phase:       types.NotStarted,
		transitions: make(map[types.Phase]map[types.Phase]bool),
	}
	sm.AddTransition(types.NotStarted, types.WaitPlayer)
	sm.AddTransition(types.WaitPlayer, types.Playing)
	sm.AddTransition(types.Playing, types.GameOver)
	sm.AddTransition(types.GameOver, types.Playing)
	return sm
}

func (sm *StateManager) AddTransition(from, to types.Phase) {
	if sm.transitions[from] == nil {
		sm.transitions[from] = make(map[types.Phase]bool)
	}
	sm.transitions[from][to] = true
}

func (sm *StateManager) CanTransition(to types.Phase) bool {
	return sm.transitions[sm.phase][to]
}

// OnTransition registers fn to run after every phase change.
func (sm *StateManager) OnTransition(fn func(from, to types.Phase)) {
	sm.onChange = append(sm.onChange, fn)
}

func (sm *StateManager) Transition(to types.Phase) error {
	if !sm.CanTransition(to) {
		return errors.Wrapf(types.ErrTransitionNotAllowed, "%s -> %s", sm.phase, to)
	}
	from := sm.phase
	sm.phase = to
	for _, fn := range sm.onChange {
		fn(from, to)
	}
	return nil
}

// Reset returns the machine to NotStarted, as when the host leaves and
// re-enters the minigame.
func (sm *StateManager) Reset() {
	sm.phase = types.NotStarted
}

func (sm *StateManager) Phase() types.Phase {
	return sm.phase
}

func (sm *StateManager) Is(p types.Phase) bool {
	return sm.phase == p
}
