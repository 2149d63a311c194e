package input

import (
	"bytes"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryKeepsAnswersAcrossStates(t *testing.T) {
	var h history
	h.add("first")
	h.add("   ")
	h.add("")
	h.add("second")
	assert.Equal(t, []string{"first", "second"}, h.lines)

	// Each prompt gets a fresh state; both must see the same history.
	for i := 0; i < 2; i++ {
		state := liner.NewLiner()
		h.load(state)

		var buf bytes.Buffer
		_, err := state.WriteHistory(&buf)
		require.NoError(t, err)
		require.NoError(t, state.Close())

		assert.Equal(t, "first\nsecond\n", buf.String())
	}
}
