package iterators_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/timeseq/iterators"
)

func TestWithConcurrentAccess(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test(`it protects against concurrent access`, func(t *testcase.T) {
		i := iterators.WithConcurrentAccess[int](iterators.Slice([]int{1, 2}))
		require.True(t, i.Next())

		var wg sync.WaitGroup
		wg.Add(1)
		defer wg.Wait()
		go func() {
			defer wg.Done()

			require.True(t, i.Next())
			require.Equal(t, 2, i.Value())
		}()

		require.Equal(t, 1, i.Value())
	})

	s.Test(`classic behavior`, func(t *testcase.T) {
		i := iterators.WithConcurrentAccess[int](iterators.Slice([]int{1, 2}))

		var vs []int
		for i.Next() {
			vs = append(vs, i.Value())
		}
		require.Nil(t, i.Err())
		require.Nil(t, i.Close())
		require.ElementsMatch(t, []int{1, 2}, vs)
	})

	s.Test(`exhausted iterator answers Next any number of times`, func(t *testcase.T) {
		i := iterators.WithConcurrentAccess[int](iterators.Slice([]int{1}))

		require.True(t, i.Next())
		require.Equal(t, 1, i.Value())

		require.False(t, i.Next())
		require.False(t, i.Next())
		require.Nil(t, i.Err())
		require.Nil(t, i.Close())
	})

	s.Test(`proxy like behavior for the underlying iterator object`, func(t *testcase.T) {
		m := iterators.Stub[int](iterators.Empty[int]())
		m.StubErr = func() error {
			return errors.New(`ErrErr`)
		}
		m.StubClose = func() error {
			return errors.New(`ErrClose`)
		}
		i := iterators.WithConcurrentAccess[int](m)

		err := i.Close()
		require.Error(t, err)
		require.Equal(t, `ErrClose`, err.Error())

		err = i.Err()
		require.Error(t, err)
		require.Equal(t, `ErrErr`, err.Error())
	})
}
