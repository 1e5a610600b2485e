package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/timeseq"
	"github.com/adamluzsi/timeseq/iterators"
)

func TestLast_ValuesAvailable_TheLastValueReturned(t *testing.T) {
	t.Parallel()

	var expected int = 42
	actually, err := iterators.Last[int](iterators.Slice([]int{4, 2, expected}))
	require.Nil(t, err)
	require.Equal(t, expected, actually)
}

func TestLast_AfterTheLastValue_IteratorIsClosed(t *testing.T) {
	t.Parallel()

	m := iterators.Stub[int](iterators.Slice([]int{42}))
	closed := false
	m.StubClose = func() error {
		closed = true
		return nil
	}

	_, err := iterators.Last[int](m)
	require.Nil(t, err)
	require.True(t, closed)
}

func TestLast_SourceHasError_TheErrorReturned(t *testing.T) {
	t.Parallel()

	expected := errors.New("Boom!")
	m := iterators.Stub[int](iterators.Slice([]int{1, 2}))
	m.StubErr = func() error { return expected }

	_, err := iterators.Last[int](m)
	require.Equal(t, expected, err)
}

func TestLast_WhenNoValueAvailable_NotFoundErrorReturned(t *testing.T) {
	t.Parallel()

	_, err := iterators.Last[int](iterators.Empty[int]())
	require.Equal(t, timeseq.ErrNotFound, err)
}
