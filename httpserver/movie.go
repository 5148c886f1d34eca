package httpserver

import (
	"net/http"

	"movielib/errs"

	"github.com/labstack/echo/v4"
)

var errMovieServiceMissing = errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.POST("", s.handleAddMovie)
	g.GET("/genres/:name", s.handleListMoviesByGenre)
	g.GET("/:title", s.handleGetMovie)
	g.PUT("/:title", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Failure 500 {object} ErrorResponse
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}

// handleListMoviesByGenre godoc
// @Summary List Movies By Genre
// @Description Movies whose genre list contains the given name exactly
// @Tags movies
// @Produce json
// @Param name path string true "Genre name"
// @Success 200 {array} movie.Movie
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/genres/{name} [get]
func (s *Server) handleListMoviesByGenre(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	movies, err := s.MovieService.ListMoviesByGenre(c.Request().Context(), pathParam(c, "name"))
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param title path string true "Movie title"
// @Success 200 {object} movie.Movie
// @Failure 404 {object} ErrorResponse
// @Router /movies/{title} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), pathParam(c, "title"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, m)
}

// handleAddMovie godoc
// @Summary Add Movie
// @Description Creates a movie and returns the whole collection
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body AddMovieRequest true "Movie"
// @Success 201 {array} movie.Movie
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	var req AddMovieRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	movies, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusCreated, movies)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Renames the movie by appending "1" to its title. The request body is ignored.
// @Tags movies
// @Produce json
// @Param title path string true "Movie title"
// @Success 200 {array} movie.Movie
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /movies/{title} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	movies, err := s.MovieService.UpdateMovie(c.Request().Context(), pathParam(c, "title"))
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie id"
// @Success 200 {array} movie.Movie
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	movies, err := s.MovieService.DeleteMovie(c.Request().Context(), pathParam(c, "id"))
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}
