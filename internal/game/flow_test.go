package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowTransitions(t *testing.T) {
	tests := []struct {
		name  string
		steps []Transition
		want  State
	}{
		{"starts in menu", nil, StateMenu},
		{"start", []Transition{TransitionStart}, StatePlaying},
		{"pause", []Transition{TransitionStart, TransitionPause}, StatePaused},
		{"resume", []Transition{TransitionStart, TransitionPause, TransitionResume}, StatePlaying},
		{"die", []Transition{TransitionStart, TransitionDie}, StateGameOver},
		{"win", []Transition{TransitionStart, TransitionWin}, StateVictory},
		{"restart after death", []Transition{TransitionStart, TransitionDie, TransitionRestart}, StatePlaying},
		{"restart from pause", []Transition{TransitionStart, TransitionPause, TransitionRestart}, StatePlaying},
		{"back to menu", []Transition{TransitionStart, TransitionWin, TransitionMenu}, StateMenu},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFlow(nil)
			for _, step := range tc.steps {
				require.NoError(t, f.Fire(context.Background(), step), "transition %s", step)
			}
			assert.Equal(t, tc.want, f.State())
			assert.True(t, f.Is(tc.want))
		})
	}
}

func TestFlowRejectsInvalidTransitions(t *testing.T) {
	f := NewFlow(nil)
	ctx := context.Background()

	assert.False(t, f.Can(TransitionDie))
	assert.Error(t, f.Fire(ctx, TransitionDie), "cannot die from the menu")
	assert.Error(t, f.Fire(ctx, TransitionResume))
	assert.Equal(t, StateMenu, f.State())

	require.NoError(t, f.Fire(ctx, TransitionStart))
	require.NoError(t, f.Fire(ctx, TransitionPause))
	assert.Error(t, f.Fire(ctx, TransitionWin), "no victory while paused")
	assert.Equal(t, StatePaused, f.State())
}

func TestFlowNotifiesChanges(t *testing.T) {
	type change struct {
		t        Transition
		from, to State
	}
	var got []change
	f := NewFlow(func(t Transition, from, to State) {
		got = append(got, change{t, from, to})
	})
	ctx := context.Background()

	require.NoError(t, f.Fire(ctx, TransitionStart))
	require.NoError(t, f.Fire(ctx, TransitionDie))
	_ = f.Fire(ctx, TransitionPause)

	assert.Equal(t, []change{
		{TransitionStart, StateMenu, StatePlaying},
		{TransitionDie, StatePlaying, StateGameOver},
	}, got)
}
