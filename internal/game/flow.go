package game

import (
	"context"

	"github.com/looplab/fsm"
)

// State is a screen of the game flow.
type State string

const (
	StateMenu     State = "menu"
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateGameOver State = "gameover"
	StateVictory  State = "victory"
)

// Transition names a flow event.
type Transition string

const (
	TransitionStart   Transition = "start"
	TransitionPause   Transition = "pause"
	TransitionResume  Transition = "resume"
	TransitionDie     Transition = "die"
	TransitionWin     Transition = "win"
	TransitionRestart Transition = "restart"
	TransitionMenu    Transition = "menu"
)

// flowEvents is the whole transition table.
var flowEvents = fsm.Events{
	{Name: string(TransitionStart), Src: []string{string(StateMenu)}, Dst: string(StatePlaying)},
	{Name: string(TransitionPause), Src: []string{string(StatePlaying)}, Dst: string(StatePaused)},
	{Name: string(TransitionResume), Src: []string{string(StatePaused)}, Dst: string(StatePlaying)},
	{Name: string(TransitionDie), Src: []string{string(StatePlaying)}, Dst: string(StateGameOver)},
	{Name: string(TransitionWin), Src: []string{string(StatePlaying)}, Dst: string(StateVictory)},
	{Name: string(TransitionRestart), Src: []string{string(StatePaused), string(StateGameOver), string(StateVictory)}, Dst: string(StatePlaying)},
	{Name: string(TransitionMenu), Src: []string{string(StatePaused), string(StateGameOver), string(StateVictory)}, Dst: string(StateMenu)},
}

// Flow is the menu/playing/paused/gameover/victory state machine.
type Flow struct {
	fsm *fsm.FSM
}

// NewFlow starts in the menu. onChange, if not nil, runs after every
// successful transition.
func NewFlow(onChange func(t Transition, from, to State)) *Flow {
	callbacks := fsm.Callbacks{}
	if onChange != nil {
		callbacks["enter_state"] = func(_ context.Context, e *fsm.Event) {
			onChange(Transition(e.Event), State(e.Src), State(e.Dst))
		}
	}
	return &Flow{fsm: fsm.NewFSM(string(StateMenu), flowEvents, callbacks)}
}

// State returns the current state.
func (f *Flow) State() State { return State(f.fsm.Current()) }

// Is reports whether the flow is in state s.
func (f *Flow) Is(s State) bool { return f.fsm.Is(string(s)) }

// Can reports whether t is allowed from the current state.
func (f *Flow) Can(t Transition) bool { return f.fsm.Can(string(t)) }

// Fire performs transition t. It returns an error when t is not allowed from
// the current state.
func (f *Flow) Fire(ctx context.Context, t Transition) error {
	return f.fsm.Event(ctx, string(t))
}
