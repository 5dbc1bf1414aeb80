package lobby

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAction_CountdownWhileWaiting(t *testing.T) {
	got := nextAction(lifecycleInputs{queueLen: 2, countdown: 5})
	assert.Equal(t, actionCountdown, got)
}

func TestNextAction_StartsGameWhenCountdownExpires(t *testing.T) {
	got := nextAction(lifecycleInputs{queueLen: 3, countdown: 0})
	assert.Equal(t, actionStartGame, got)
}

func TestNextAction_TicksActiveGame(t *testing.T) {
	got := nextAction(lifecycleInputs{gameActive: true, gameFinished: false})
	assert.Equal(t, actionTickGame, got)
}

func TestNextAction_EndsFinishedGame(t *testing.T) {
	got := nextAction(lifecycleInputs{gameActive: true, gameFinished: true})
	assert.Equal(t, actionEndGame, got)
}

func TestNextAction_IdleWithTooFewPlayers(t *testing.T) {
	got := nextAction(lifecycleInputs{queueLen: 1, countdown: 0})
	assert.Equal(t, actionNone, got)
}

func TestNextAction_IdleWithEmptyQueue(t *testing.T) {
	got := nextAction(lifecycleInputs{})
	assert.Equal(t, actionNone, got)
}
