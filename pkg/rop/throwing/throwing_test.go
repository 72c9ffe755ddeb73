package throwing

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/resultify/internal/try"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunction_Apply(t *testing.T) {
	t.Parallel()

	t.Run("returns the output", func(t *testing.T) {
		out, err := Function[string, int](strconv.Atoi).Apply("42")
		require.NoError(t, err)
		assert.Equal(t, 42, out)
	})

	t.Run("returns the error", func(t *testing.T) {
		_, err := Function[string, int](strconv.Atoi).Apply("abc")
		var numErr *strconv.NumError
		assert.ErrorAs(t, err, &numErr)
	})

	t.Run("converts a panic into an error", func(t *testing.T) {
		f := Lift(func(in []int) int { return in[3] })
		_, err := f.Apply([]int{1})

		var perr try.PanicError
		require.ErrorAs(t, err, &perr)
		assert.NotNil(t, perr.Value)
	})
}

func TestFunction_Unchecked(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := Function[int, int](func(in int) (int, error) {
		if in < 0 {
			return 0, boom
		}
		return in * 2, nil
	}).Unchecked()

	assert.Equal(t, 4, f(2))
	assert.PanicsWithError(t, "boom", func() { f(-1) })
}

func TestSupplier(t *testing.T) {
	t.Parallel()

	out, err := LiftSupplier(func() string { return "ok" }).Get()
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	_, err = Supplier[string](func() (string, error) { panic("nope") }).Get()
	var perr try.PanicError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "nope", perr.Value)

	assert.PanicsWithValue(t, "nope", func() {
		Supplier[string](func() (string, error) { panic("nope") }).Unchecked()()
	})
}

func TestConsumer(t *testing.T) {
	t.Parallel()

	seen := 0
	c := Consumer[int](func(in int) error {
		seen += in
		if in > 10 {
			panic("too big")
		}
		if in > 5 {
			return errors.New("big")
		}
		return nil
	})

	assert.NoError(t, c.Try(1))
	assert.EqualError(t, c.Try(6), "big")

	var perr try.PanicError
	assert.ErrorAs(t, c.Try(11), &perr)

	assert.NotPanics(t, func() { c.Accept(20) })
	assert.Equal(t, 38, seen)
}
