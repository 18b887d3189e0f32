package store

import (
	"errors"
	"sync"
)

var (
	ErrMovieExists   = errors.New("movie with this ID already exists")
	ErrMovieNotFound = errors.New("movie not found")
)

// Movie is a catalog entry. IDs are chosen by the client and must be unique.
type Movie struct {
	ID          int     `json:"id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Director    string  `json:"director" binding:"required"`
	ReleaseYear int     `json:"release_year" binding:"required"`
	Genre       string  `json:"genre" binding:"required"`
	IMDBRating  float64 `json:"imdb_rating" binding:"required"`
}

// MovieStore is an in-memory movie catalog. It lives for the lifetime of the
// process and is handed to handlers explicitly; all access goes through its
// methods, which are safe for concurrent use.
type MovieStore struct {
	mu     sync.RWMutex
	movies []Movie
}

func NewMovieStore() *MovieStore {
	return &MovieStore{}
}

// List returns a snapshot of the catalog.
func (s *MovieStore) List() []Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

func (s *MovieStore) Get(id int) (Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return Movie{}, ErrMovieNotFound
}

func (s *MovieStore) Add(movie Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.ID == movie.ID {
			return ErrMovieExists
		}
	}
	s.movies = append(s.movies, movie)
	return nil
}

// Replace swaps the stored movie with the given id for the supplied one.
func (s *MovieStore) Replace(id int, movie Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.movies {
		if m.ID == id {
			s.movies[i] = movie
			return nil
		}
	}
	return ErrMovieNotFound
}

func (s *MovieStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.movies {
		if m.ID == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			return nil
		}
	}
	return ErrMovieNotFound
}
