package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(id int) Movie {
	return Movie{
		ID:          id,
		Title:       "Inception",
		Director:    "Christopher Nolan",
		ReleaseYear: 2010,
		Genre:       "Sci-Fi",
		IMDBRating:  8.8,
	}
}

func TestAddAndGet(t *testing.T) {
	s := NewMovieStore()

	require.NoError(t, s.Add(sample(1)))

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Inception", got.Title)

	_, err = s.Get(2)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestAddDuplicateID(t *testing.T) {
	s := NewMovieStore()

	require.NoError(t, s.Add(sample(1)))
	assert.ErrorIs(t, s.Add(sample(1)), ErrMovieExists)

	assert.Len(t, s.List(), 1)
}

func TestReplace(t *testing.T) {
	s := NewMovieStore()
	require.NoError(t, s.Add(sample(1)))

	updated := sample(1)
	updated.Title = "Tenet"
	require.NoError(t, s.Replace(1, updated))

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Tenet", got.Title)

	assert.ErrorIs(t, s.Replace(9, sample(9)), ErrMovieNotFound)
}

func TestDelete(t *testing.T) {
	s := NewMovieStore()
	require.NoError(t, s.Add(sample(1)))
	require.NoError(t, s.Add(sample(2)))

	require.NoError(t, s.Delete(1))
	assert.Len(t, s.List(), 1)

	assert.ErrorIs(t, s.Delete(1), ErrMovieNotFound)
}

func TestListReturnsSnapshot(t *testing.T) {
	s := NewMovieStore()
	require.NoError(t, s.Add(sample(1)))

	list := s.List()
	list[0].Title = "mutated"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Inception", got.Title)
}
