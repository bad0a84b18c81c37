package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder collects the statements gorm builds so tests can assert on
// the generated SQL without a live database.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...any) {}

func (r *sqlRecorder) Warn(context.Context, string, ...any) {}

func (r *sqlRecorder) Error(context.Context, string, ...any) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) joined() string {
	return strings.Join(r.statements, "\n")
}

// newDryRunDB opens a gorm handle that builds statements without executing
// them. SkipDefaultTransaction keeps write paths from beginning a real
// transaction, and the pgx pool is lazy, so no connection is attempted.
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	recorder := &sqlRecorder{}
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DriverName: "pgx",
		DSN:        "host=localhost user=bistro dbname=bistro",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 recorder,
	})
	require.NoError(t, err)

	return db, recorder
}

func TestRestaurantRepository_Update_WritesZeroValuedColumns(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewRestaurantRepository(db)

	err := repo.Update(context.Background(), &entity.Restaurant{
		ID:                 uuid.New(),
		Slug:               "trattoria-rosa",
		Name:               "Trattoria Rosa",
		Description:        "",
		Latitude:           0,
		Longitude:          0,
		BookingEnabled:     false,
		AvgDurationMinutes: 90,
		IsActive:           false,
	})
	// Nothing executes in dry-run mode, so the affected-row check reports
	// the row as missing. The built statement is what matters here.
	require.ErrorIs(t, err, repository.ErrRestaurantNotFound)

	stmt := recorder.joined()
	assert.Contains(t, stmt, `"is_active"=false`)
	assert.Contains(t, stmt, `"booking_enabled"=false`)
	assert.Contains(t, stmt, `"description"=''`)
	assert.Contains(t, stmt, `"latitude"=0`)
	assert.NotContains(t, stmt, `"id"=`)
	assert.NotContains(t, stmt, `"created_at"=`)
}

func TestRestaurantRepository_Create_KeepsExplicitFalse(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewRestaurantRepository(db)

	err := repo.Create(context.Background(), &entity.Restaurant{
		Slug:               "quiet-corner",
		Name:               "Quiet Corner",
		BookingEnabled:     false,
		AvgDurationMinutes: 90,
		IsActive:           false,
	})
	require.NoError(t, err)

	stmt := recorder.joined()
	assert.Contains(t, stmt, `"booking_enabled"`)
	assert.Contains(t, stmt, `"is_active"`)
	assert.Contains(t, stmt, "false")
}

func TestSpotlightRepository_Update_WritesZeroValuedColumns(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewSpotlightRepository(db)

	err := repo.Update(context.Background(), &entity.SpotlightItem{
		ID:         7,
		Title:      "Summer menu",
		ModuleType: "home",
		MediaURL:   "https://cdn.example.com/summer.jpg",
		OrderIndex: 0,
		IsActive:   false,
	})
	require.ErrorIs(t, err, repository.ErrSpotlightNotFound)

	stmt := recorder.joined()
	assert.Contains(t, stmt, `"is_active"=false`)
	assert.Contains(t, stmt, `"order_index"=0`)
	assert.NotContains(t, stmt, `"created_at"=`)
}

func TestHeroOfferRepository_Create_KeepsExplicitFalse(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewHeroOfferRepository(db)

	err := repo.Create(context.Background(), &entity.HomeHeroOffer{
		Title:    "Weekend brunch",
		MediaURL: "https://cdn.example.com/brunch.jpg",
		Priority: 1,
		IsActive: false,
	})
	require.NoError(t, err)

	stmt := recorder.joined()
	assert.Contains(t, stmt, `"is_active"`)
	assert.Contains(t, stmt, "false")
}

func TestStoreRepository_List_EscapesTagFilter(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewStoreRepository(db)

	_, _, err := repo.List(context.Background(), repository.StoreFilter{
		Tag:   `pop"up`,
		Limit: 20,
	})
	require.NoError(t, err)

	stmt := recorder.joined()
	assert.Contains(t, stmt, "tags @>")
	assert.Contains(t, stmt, `["pop\"up"]`)
}
