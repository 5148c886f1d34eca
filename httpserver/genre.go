package httpserver

import (
	"net/http"

	"movielib/errs"

	"github.com/labstack/echo/v4"
)

var errGenreServiceMissing = errs.Errorf(errs.ENOTIMPLEMENTED, "genre service not configured")

func (s *Server) RegisterGenreRoutes(g *echo.Group) {
	g.GET("", s.handleListGenres)
	g.POST("", s.handleAddGenre)
	g.GET("/:name", s.handleGetGenre)
	g.PUT("/:name", s.handleUpdateGenre)
	g.DELETE("/:id", s.handleDeleteGenre)
}

// handleListGenres godoc
// @Summary List Genres
// @Tags genres
// @Produce json
// @Success 200 {array} genre.Genre
// @Failure 500 {object} ErrorResponse
// @Router /genres [get]
func (s *Server) handleListGenres(c echo.Context) error {
	if s.GenreService == nil {
		return errGenreServiceMissing
	}

	genres, err := s.GenreService.ListGenres(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, genres)
}

// handleGetGenre godoc
// @Summary Get Genre
// @Tags genres
// @Produce json
// @Param name path string true "Genre name"
// @Success 200 {object} genre.Genre
// @Failure 404 {object} ErrorResponse
// @Router /genres/{name} [get]
func (s *Server) handleGetGenre(c echo.Context) error {
	if s.GenreService == nil {
		return errGenreServiceMissing
	}

	g, err := s.GenreService.GetGenre(c.Request().Context(), pathParam(c, "name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, g)
}

// handleAddGenre godoc
// @Summary Add Genre
// @Description Creates a genre and returns the whole collection
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body AddGenreRequest true "Genre"
// @Success 201 {array} genre.Genre
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /genres [post]
func (s *Server) handleAddGenre(c echo.Context) error {
	if s.GenreService == nil {
		return errGenreServiceMissing
	}

	var req AddGenreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	genres, err := s.GenreService.AddGenre(c.Request().Context(), req.ToGenre())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusCreated, genres)
}

// handleUpdateGenre godoc
// @Summary Update Genre
// @Description Renames the genre by appending a random number to its name. The request body is ignored.
// @Tags genres
// @Produce json
// @Param name path string true "Genre name"
// @Success 200 {array} genre.Genre
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /genres/{name} [put]
func (s *Server) handleUpdateGenre(c echo.Context) error {
	if s.GenreService == nil {
		return errGenreServiceMissing
	}

	genres, err := s.GenreService.UpdateGenre(c.Request().Context(), pathParam(c, "name"))
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, genres)
}

// handleDeleteGenre godoc
// @Summary Delete Genre
// @Tags genres
// @Produce json
// @Param id path string true "Genre id"
// @Success 200 {array} genre.Genre
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /genres/{id} [delete]
func (s *Server) handleDeleteGenre(c echo.Context) error {
	if s.GenreService == nil {
		return errGenreServiceMissing
	}

	genres, err := s.GenreService.DeleteGenre(c.Request().Context(), pathParam(c, "id"))
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, genres)
}
