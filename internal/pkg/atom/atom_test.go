package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomGetSet(t *testing.T) {
	a := New(1)
	assert.Equal(t, 1, a.Get())

	a.Set(5)
	assert.Equal(t, 5, a.Get())
}

func TestAtomSubscribeOrderAndUnsubscribe(t *testing.T) {
	a := New("")
	var calls []string

	unsubA := a.Subscribe(func(v string) { calls = append(calls, "a:"+v) })
	unsubB := a.Subscribe(func(v string) { calls = append(calls, "b:"+v) })

	a.Set("x")
	require.Equal(t, []string{"a:x", "b:x"}, calls)

	unsubA()
	unsubA()
	a.Set("y")
	assert.Equal(t, []string{"a:x", "b:x", "b:y"}, calls)

	unsubB()
	a.Set("z")
	assert.Len(t, calls, 3)
}

func TestAtomUpdateSeesPreviousValue(t *testing.T) {
	a := New(map[string]int{"a": 1})
	var seen map[string]int
	a.Subscribe(func(v map[string]int) { seen = v })

	next := a.Update(func(prev map[string]int) map[string]int {
		out := make(map[string]int, len(prev)+1)
		for k, v := range prev {
			out[k] = v
		}
		out["b"] = 2
		return out
	})

	assert.Equal(t, map[string]int{"a": 1, "b": 2}, next)
	assert.Equal(t, next, seen)
	assert.Equal(t, next, a.Get())
}

func TestAtomSubscriberMayWrite(t *testing.T) {
	a := New(0)
	a.Subscribe(func(v int) {
		if v == 1 {
			a.Set(2)
		}
	})

	a.Set(1)
	assert.Equal(t, 2, a.Get())
}

func TestAtomNilSubscriber(t *testing.T) {
	a := New(0)
	unsub := a.Subscribe(nil)
	unsub()
	a.Set(1)
	assert.Equal(t, 1, a.Get())
}
