package router

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleStacks = [][]string{
	{"home"},
	{"home", "a"},
	{"home", "a", "b"},
	{"home", "a", "b", "c"},
	{"home", "a", "home", "b"},
}

func TestReducePush(t *testing.T) {
	for _, s := range sampleStacks {
		t.Run(fmt.Sprint(s), func(t *testing.T) {
			got, hostBack, err := Reduce(s, Push("x"))
			require.NoError(t, err)
			assert.Equal(t, append(append([]string{}, s...), "x"), got)
			assert.False(t, hostBack)
		})
	}
}

func TestReduceReplaceCurrent(t *testing.T) {
	stacks := append([][]string{{}}, sampleStacks...)
	for _, s := range stacks {
		t.Run(fmt.Sprint(s), func(t *testing.T) {
			got, hostBack, err := Reduce(s, ReplaceCurrent("x"))
			require.NoError(t, err)
			assert.Len(t, got, max(len(s), 1))
			assert.Equal(t, "x", got[len(got)-1])
			if len(s) > 1 {
				assert.Equal(t, s[:len(s)-1], got[:len(got)-1])
			}
			assert.False(t, hostBack)
		})
	}
}

func TestReducePop(t *testing.T) {
	t.Run("single screen requests host back", func(t *testing.T) {
		got, hostBack, err := Reduce([]string{"home"}, Pop[string]())
		require.NoError(t, err)
		assert.Equal(t, []string{"home"}, got)
		assert.True(t, hostBack)
	})

	t.Run("empty stack requests host back", func(t *testing.T) {
		got, hostBack, err := Reduce([]string{}, Pop[string]())
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.True(t, hostBack)
	})

	for _, s := range sampleStacks[1:] {
		t.Run(fmt.Sprint(s), func(t *testing.T) {
			got, hostBack, err := Reduce(s, Pop[string]())
			require.NoError(t, err)
			assert.Equal(t, s[:len(s)-1], got)
			assert.False(t, hostBack)
		})
	}
}

func TestReducePopWithEmptyPolicy(t *testing.T) {
	got, hostBack, err := ReduceBatch(PopToEmpty, []string{"home"}, []Command[string]{Pop[string]()})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, hostBack)

	got, hostBack, err = ReduceBatch(PopToEmpty, got, []Command[string]{Pop[string]()})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, hostBack)
}

func TestReducePopTo(t *testing.T) {
	s := []string{"home", "a", "b", "c"}

	for i, target := range s {
		t.Run("found at "+target, func(t *testing.T) {
			got, hostBack, err := Reduce(s, PopTo(target))
			require.NoError(t, err)
			assert.Equal(t, s[:i+1], got)
			assert.False(t, hostBack)
		})
	}

	t.Run("first occurrence wins", func(t *testing.T) {
		got, _, err := Reduce([]string{"home", "a", "b", "a", "c"}, PopTo("a"))
		require.NoError(t, err)
		assert.Equal(t, []string{"home", "a"}, got)
	})

	t.Run("absent target keeps root", func(t *testing.T) {
		for _, s := range sampleStacks {
			got, hostBack, err := Reduce(s, PopTo("missing"))
			require.NoError(t, err)
			assert.Equal(t, s[:1], got)
			assert.False(t, hostBack)
		}
	})

	t.Run("absent target on empty stack", func(t *testing.T) {
		got, hostBack, err := Reduce([]string{}, PopTo("missing"))
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.False(t, hostBack)
	})
}

func TestReduceResetToRoot(t *testing.T) {
	for _, s := range sampleStacks {
		once, hostBack, err := Reduce(s, ResetToRoot[string]())
		require.NoError(t, err)
		assert.Equal(t, s[:1], once)
		assert.False(t, hostBack)

		twice, _, err := Reduce(once, ResetToRoot[string]())
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestReduceDropStack(t *testing.T) {
	for _, s := range sampleStacks {
		t.Run(fmt.Sprint(s), func(t *testing.T) {
			got, hostBack, err := Reduce(s, DropStack[string]())
			require.NoError(t, err)
			assert.Equal(t, []string{s[len(s)-1]}, got)
			assert.True(t, hostBack)
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := []string{"home", "a", "b"}
	_, _, err := Reduce(s, PopTo("home"))
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "a", "b"}, s)
}

func TestReduceMalformedCommand(t *testing.T) {
	s := []string{"home", "a"}

	got, hostBack, err := Reduce(s, Command[string]{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedCommand))
	assert.True(t, IsMalformedCommand(err))
	assert.Equal(t, s, got)
	assert.False(t, hostBack)
}

func TestReduceBatch(t *testing.T) {
	t.Run("threads commands in order", func(t *testing.T) {
		got, hostBack, err := ReduceBatch(PopAtRoot, []string{"home", "a", "b"}, []Command[string]{
			ResetToRoot[string](),
			ReplaceCurrent("login"),
			Push("welcome"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"login", "welcome"}, got)
		assert.False(t, hostBack)
	})

	t.Run("host back is accumulated", func(t *testing.T) {
		got, hostBack, err := ReduceBatch(PopAtRoot, []string{"home"}, []Command[string]{
			Pop[string](),
			Push("a"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"home", "a"}, got)
		assert.True(t, hostBack)
	})

	t.Run("malformed command is skipped", func(t *testing.T) {
		got, hostBack, err := ReduceBatch(PopAtRoot, []string{"home"}, []Command[string]{
			Push("a"),
			{Kind: Kind(42), Screen: "bogus"},
			Push("b"),
		})
		require.Error(t, err)
		assert.Equal(t, []string{"home", "a", "b"}, got)
		assert.False(t, hostBack)

		var mc *MalformedCommandError
		require.True(t, errors.As(err, &mc))
		assert.Equal(t, 1, mc.Index)
		assert.Equal(t, Kind(42), mc.Kind)
	})

	t.Run("uncomparable screen is contained", func(t *testing.T) {
		got, _, err := ReduceBatch(PopAtRoot, []any{"home", []int{1}}, []Command[any]{
			PopTo[any]([]int{1}),
			Push[any]("after"),
		})
		require.Error(t, err)
		assert.True(t, IsMalformedCommand(err))
		require.Len(t, got, 3)
		assert.Equal(t, "after", got[2])
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		got, hostBack, err := ReduceBatch[string](PopAtRoot, []string{"home"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"home"}, got)
		assert.False(t, hostBack)
	})
}

func TestParsePopPolicy(t *testing.T) {
	tests := []struct {
		raw     string
		want    PopPolicy
		wantErr bool
	}{
		{"", PopAtRoot, false},
		{"root", PopAtRoot, false},
		{" Empty ", PopToEmpty, false},
		{"never", PopAtRoot, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePopPolicy(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, must(ParsePopPolicy(got.String())))
		})
	}
}

func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "push(detail)", Push("detail").String())
	assert.Equal(t, "popTo(home)", PopTo("home").String())
	assert.Equal(t, "dropStack", DropStack[string]().String())
	assert.Equal(t, "kind(0)", Command[string]{}.String())
}
