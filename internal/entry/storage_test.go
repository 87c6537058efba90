package entry

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_AddKeepsOrder(t *testing.T) {
	var s Storage
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Entries())
	assert.Equal(t, "", s.Join("\n"))

	s.Add(New("one"))
	s.Add(New("two"))
	s.Add(New("three"))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"one", "two", "three"}, s.Values())
	assert.Equal(t, "one\ntwo\nthree", s.Join("\n"))
}

func TestStorage_EntriesIsACopy(t *testing.T) {
	var s Storage
	s.Add(New("original"))

	entries := s.Entries()
	entries[0] = New("changed")

	assert.Equal(t, "original", s.Entries()[0].Value())
}

func TestStorage_Filter(t *testing.T) {
	var s Storage
	for _, v := range []string{"Entry 1", "Entry 2", "Note", "Entry 3"} {
		s.Add(New(v))
	}

	kept, err := s.Filter(func(_ int, e Entry) (bool, error) {
		return strings.HasPrefix(e.Value(), "Entry"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Entry 1|Entry 2|Entry 3", Join(kept, "|"))

	kept, err = s.Filter(func(i int, _ Entry) (bool, error) {
		return i%2 == 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Entry 2", "Entry 3"}, values(kept))
}

func TestStorage_FilterError(t *testing.T) {
	var s Storage
	s.Add(New("a"))
	s.Add(New("b"))

	boom := errors.New("boom")
	_, err := s.Filter(func(i int, _ Entry) (bool, error) {
		if i == 1 {
			return false, boom
		}
		return true, nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "entry 1")
}
