package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"movielib/errs"
	"movielib/genre"
	"movielib/movie"

	"go.uber.org/zap"
)

const noGenres = "(no genres listed)"

// MovieLens titles end with the release year, e.g. "Heat (1995)".
var titleYear = regexp.MustCompile(`^(.*\S)\s*\((\d{4})\)\s*$`)

type importStats struct {
	Movies  int
	Genres  int
	Skipped int
}

type importer struct {
	movies movie.Repository
	genres genre.Repository
	log    *zap.SugaredLogger

	seenGenres map[string]bool
}

// Import reads a MovieLens movies.csv from r and stores every row that
// passes validation. Rows that are invalid or already stored are skipped.
func (imp *importer) Import(ctx context.Context, r io.Reader, limit int) (importStats, error) {
	var stats importStats
	imp.seenGenres = make(map[string]bool)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idxMovieID, idxTitle, idxGenres, err := parseMovieCSVHeader(reader)
	if err != nil {
		return stats, err
	}

	for limit <= 0 || stats.Movies < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, err
		}

		m, ok := parseMovieRecord(record, idxMovieID, idxTitle, idxGenres)
		if !ok {
			stats.Skipped++
			continue
		}

		added, err := imp.addGenres(ctx, m.Genre)
		stats.Genres += added
		if err != nil {
			return stats, err
		}

		created, err := imp.addMovie(ctx, m)
		if err != nil {
			return stats, err
		}
		if created {
			stats.Movies++
		} else {
			stats.Skipped++
		}
	}

	return stats, nil
}

func (imp *importer) addMovie(ctx context.Context, m movie.Movie) (bool, error) {
	if err := m.Validate(); err != nil {
		imp.log.Debugw("skip invalid movie", "title", m.Title, "error", err)
		return false, nil
	}

	_, err := imp.movies.CreateMovie(ctx, m)
	switch errs.ErrorCode(err) {
	case "":
		return true, nil
	case errs.ECONFLICT:
		imp.log.Debugw("skip existing movie", "title", m.Title)
		return false, nil
	}
	return false, fmt.Errorf("create movie %q: %w", m.Title, err)
}

func (imp *importer) addGenres(ctx context.Context, names []string) (int, error) {
	added := 0
	for _, name := range names {
		if imp.seenGenres[name] {
			continue
		}
		imp.seenGenres[name] = true

		g := genre.Genre{Name: name}
		if err := g.Validate(); err != nil {
			imp.log.Debugw("skip invalid genre", "name", name, "error", err)
			continue
		}

		_, err := imp.genres.CreateGenre(ctx, g)
		switch errs.ErrorCode(err) {
		case "":
			added++
		case errs.ECONFLICT:
		default:
			return added, fmt.Errorf("create genre %q: %w", name, err)
		}
	}
	return added, nil
}

func parseMovieCSVHeader(reader *csv.Reader) (int, int, int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, 0, 0, err
	}

	idxMovieID, idxTitle, idxGenres := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "movieId":
			idxMovieID = i
		case "title":
			idxTitle = i
		case "genres":
			idxGenres = i
		}
	}
	if idxMovieID == -1 || idxTitle == -1 || idxGenres == -1 {
		return 0, 0, 0, errors.New("missing required columns in csv header")
	}

	return idxMovieID, idxTitle, idxGenres, nil
}

// parseMovieRecord turns one csv row into a movie. The year in the title
// becomes a January 1st release date; rows without a year or without genres
// are rejected.
func parseMovieRecord(record []string, idxMovieID, idxTitle, idxGenres int) (movie.Movie, bool) {
	if idxMovieID >= len(record) || idxTitle >= len(record) || idxGenres >= len(record) {
		return movie.Movie{}, false
	}

	match := titleYear.FindStringSubmatch(strings.TrimSpace(record[idxTitle]))
	if match == nil {
		return movie.Movie{}, false
	}

	var genres []string
	for _, g := range strings.Split(record[idxGenres], "|") {
		g = strings.TrimSpace(g)
		if g == "" || g == noGenres {
			continue
		}
		genres = append(genres, g)
	}
	if len(genres) == 0 {
		return movie.Movie{}, false
	}

	return movie.Movie{
		Title:       match[1],
		Genre:       genres,
		ReleaseDate: match[2] + "-01-01",
		Description: fmt.Sprintf("Imported from MovieLens (movieId %s).", strings.TrimSpace(record[idxMovieID])),
	}, true
}
