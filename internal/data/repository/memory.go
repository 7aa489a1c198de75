package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"filmestop/internal/data/entity"
	"filmestop/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory implementations of the repository interfaces, for development
// and tests. Writes apply immediately, so MemoryDB hands out no-op
// transactions to satisfy the transactional review flow.

type memoryState struct {
	mu      sync.RWMutex
	nextID  map[string]int64
	genres  map[int64]entity.Genre
	users   map[int64]entity.User
	movies  map[int64]entity.Movie
	rentals map[int64]entity.Rental
	reviews map[int64]entity.Review
}

func (s *memoryState) id(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

// DefaultGenres mirrors the genre seed migration.
var DefaultGenres = []string{
	"Action", "Comedy", "Drama", "Horror", "Romance",
	"Sci-Fi", "Fantasy", "Thriller", "Documentary", "Animation",
}

// NewMemoryRepository bundles the in-memory stores behind the Repository
// struct, with the genre catalogue pre-seeded.
func NewMemoryRepository() (*Repository, *MemoryDB) {
	state := &memoryState{
		nextID:  make(map[string]int64),
		genres:  make(map[int64]entity.Genre),
		users:   make(map[int64]entity.User),
		movies:  make(map[int64]entity.Movie),
		rentals: make(map[int64]entity.Rental),
		reviews: make(map[int64]entity.Review),
	}

	for _, name := range DefaultGenres {
		id := state.id("genres")
		state.genres[id] = entity.Genre{ID: id, Name: name, CreatedAt: time.Now()}
	}

	return &Repository{
		Genre:  &memoryGenreRepo{state},
		User:   &memoryUserRepo{state},
		Movie:  &memoryMovieRepo{state},
		Rental: &memoryRentalRepo{state},
		Review: &memoryReviewRepo{state},
	}, &MemoryDB{}
}

// ---------------- MemoryDB ----------------

type MemoryDB struct{}

type memoryTx struct{}

func (memoryTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (memoryTx) QueryRow(context.Context, string, ...any) pgx.Row       { return nil }
func (memoryTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (memoryTx) Commit(context.Context) error   { return nil }
func (memoryTx) Rollback(context.Context) error { return nil }

func (*MemoryDB) Begin(context.Context) (database.Tx, error) { return memoryTx{}, nil }

// ---------------- Genre ----------------

type memoryGenreRepo struct{ s *memoryState }

func (r *memoryGenreRepo) FindByID(_ context.Context, id int64) (*entity.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if g, ok := r.s.genres[id]; ok {
		return &g, nil
	}
	return nil, nil
}

func (r *memoryGenreRepo) FindAll(context.Context) ([]*entity.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var genres []*entity.Genre
	for _, g := range r.s.genres {
		g := g
		genres = append(genres, &g)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

// ---------------- User ----------------

type memoryUserRepo struct{ s *memoryState }

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user.ID = r.s.id("users")
	user.CreatedAt = time.Now()
	r.s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *memoryUserRepo) FindAll(context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var users []*entity.User
	for _, u := range r.s.users {
		u := u
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return fmt.Errorf("user %d not found", user.ID)
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return fmt.Errorf("user %d not found", id)
	}
	delete(r.s.users, id)
	return nil
}

// ---------------- Movie ----------------

type memoryMovieRepo struct{ s *memoryState }

func (r *memoryMovieRepo) withGenreName(m entity.Movie) entity.Movie {
	if g, ok := r.s.genres[m.GenreID]; ok {
		name := g.Name
		m.GenreName = &name
	} else {
		m.GenreName = nil
	}
	return m
}

func (r *memoryMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	movie.ID = r.s.id("movies")
	movie.CreatedAt = time.Now()
	movie.AvgRate = 0
	movie.CountReview = 0
	r.s.movies[movie.ID] = *movie
	return nil
}

func (r *memoryMovieRepo) FindByID(_ context.Context, id int64) (*entity.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if m, ok := r.s.movies[id]; ok {
		m = r.withGenreName(m)
		return &m, nil
	}
	return nil, nil
}

func (r *memoryMovieRepo) FindAll(context.Context) ([]*entity.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var movies []*entity.Movie
	for _, m := range r.s.movies {
		m := r.withGenreName(m)
		movies = append(movies, &m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

func (r *memoryMovieRepo) FindByGenreID(_ context.Context, genreID int64) ([]*entity.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var movies []*entity.Movie
	for _, m := range r.s.movies {
		if m.GenreID == genreID {
			m := r.withGenreName(m)
			movies = append(movies, &m)
		}
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

func (r *memoryMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.movies[movie.ID]
	if !ok {
		return fmt.Errorf("movie %d not found", movie.ID)
	}
	movie.AvgRate = existing.AvgRate
	movie.CountReview = existing.CountReview
	r.s.movies[movie.ID] = *movie
	return nil
}

func (r *memoryMovieRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.movies[id]; !ok {
		return fmt.Errorf("movie %d not found", id)
	}
	delete(r.s.movies, id)
	return nil
}

func (r *memoryMovieRepo) Lock(_ context.Context, _ database.Querier, id int64) error {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.movies[id]; !ok {
		return fmt.Errorf("movie %d not found", id)
	}
	return nil
}

func (r *memoryMovieRepo) UpdateAggregates(_ context.Context, _ database.Querier, id int64, avgRate float64, countReview int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.movies[id]
	if !ok {
		return fmt.Errorf("movie %d not found", id)
	}
	m.AvgRate = avgRate
	m.CountReview = countReview
	r.s.movies[id] = m
	return nil
}

// ---------------- Rental ----------------

type memoryRentalRepo struct{ s *memoryState }

func (r *memoryRentalRepo) Create(_ context.Context, rental *entity.Rental) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rental.ID = r.s.id("rentals")
	rental.CreatedAt = time.Now()
	r.s.rentals[rental.ID] = *rental
	return nil
}

func (r *memoryRentalRepo) ExistsByUserAndMovie(_ context.Context, userID, movieID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rent := range r.s.rentals {
		if rent.UserID == userID && rent.MovieID == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRentalRepo) ListRentedMovies(_ context.Context, userID int64) ([]*entity.RentedMovie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var rented []*entity.RentedMovie
	for _, rent := range r.s.rentals {
		if rent.UserID != userID {
			continue
		}
		movie, ok := r.s.movies[rent.MovieID]
		if !ok {
			continue
		}

		row := &entity.RentedMovie{
			RentID:    rent.ID,
			MovieName: movie.Name,
			StartDate: rent.StartDate,
		}
		for _, rev := range r.s.reviews {
			if rev.UserID == userID && rev.MovieID == rent.MovieID {
				rate := rev.Rate
				row.Rate = &rate
				break
			}
		}
		rented = append(rented, row)
	}
	sort.Slice(rented, func(i, j int) bool { return rented[i].RentID < rented[j].RentID })
	return rented, nil
}

// ---------------- Review ----------------

type memoryReviewRepo struct{ s *memoryState }

func (r *memoryReviewRepo) FindByUserAndMovie(_ context.Context, _ database.Querier, userID, movieID int64) (*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rev := range r.s.reviews {
		if rev.UserID == userID && rev.MovieID == movieID {
			rev := rev
			return &rev, nil
		}
	}
	return nil, nil
}

func (r *memoryReviewRepo) Insert(_ context.Context, _ database.Querier, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	review.ID = r.s.id("reviews")
	review.CreatedAt = time.Now()
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *memoryReviewRepo) UpdateRate(_ context.Context, _ database.Querier, id int64, rate int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rev, ok := r.s.reviews[id]
	if !ok {
		return fmt.Errorf("review %d not found", id)
	}
	rev.Rate = rate
	r.s.reviews[id] = rev
	return nil
}

func (r *memoryReviewRepo) AggregateByMovie(_ context.Context, _ database.Querier, movieID int64) (float64, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := 0
	count := 0
	for _, rev := range r.s.reviews {
		if rev.MovieID == movieID {
			total += rev.Rate
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(total) / float64(count), count, nil
}
