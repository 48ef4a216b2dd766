package testutils

import (
	"fmt"
	"sync"
)

// ScriptedRoller replays a fixed sequence of die results.
// It satisfies the rpg-toolkit dice.Roller interface.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
}

// NewScriptedRoller creates a roller that returns values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Roll returns the next scripted value, which must fit a die of the given size
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted")
	}
	v := r.values[0]
	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted value %d does not fit a d%d", v, size)
	}
	r.values = r.values[1:]
	return v, nil
}

// RollN returns the next count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Remaining returns how many scripted values have not been consumed
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}
