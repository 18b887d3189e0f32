package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/showfolio/backend/internal/store"
)

// MovieHandler serves the unauthenticated movie catalog. The store is
// injected rather than reached as package state so its lifetime is the
// server's, not the package's.
type MovieHandler struct {
	movies *store.MovieStore
}

func NewMovieHandler(movies *store.MovieStore) *MovieHandler {
	return &MovieHandler{movies: movies}
}

func (h *MovieHandler) RegisterRoutes(router *gin.Engine) {
	movies := router.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.GET("/:id", h.GetMovie)
		movies.POST("", h.AddMovie)
		movies.PUT("/:id", h.UpdateMovie)
		movies.DELETE("/:id", h.DeleteMovie)
	}
}

func (h *MovieHandler) ListMovies(c *gin.Context) {
	c.JSON(http.StatusOK, h.movies.List())
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	movie, err := h.movies.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) AddMovie(c *gin.Context) {
	var movie store.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid movie payload"})
		return
	}

	if err := h.movies.Add(movie); err != nil {
		if errors.Is(err, store.ErrMovieExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Movie with this ID already exists"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	var movie store.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid movie payload"})
		return
	}

	if err := h.movies.Replace(id, movie); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	if err := h.movies.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted successfully"})
}

func movieID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
		return 0, false
	}
	return id, true
}
