package hashid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_Deterministic(t *testing.T) {
	a := Hash("player-one")
	b := Hash("player-one")
	assert.Equal(t, a, b)
}

func TestHash_DifferentNamesDiffer(t *testing.T) {
	assert.NotEqual(t, Hash("alice"), Hash("bob"))
}

func TestHash_EmptyName(t *testing.T) {
	assert.NotPanics(t, func() {
		Hash("")
	})
}
