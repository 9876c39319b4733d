package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hjnengare/sayso-server/internal/database"
	"github.com/hjnengare/sayso-server/internal/logger"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return &database.DB{DB: gdb}, mock
}

func newTestBusinessService(db *database.DB) *BusinessService {
	return &BusinessService{
		db:     db,
		claims: &stubResolver{},
		log:    logger.GetLogger("business-test"),
	}
}

// System rows are invisible on the detail endpoint.
func TestGetByIDFiltersSystemRows(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newTestBusinessService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "businesses" WHERE is_system = \$1 AND "businesses"\."id" = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}))

	_, err := svc.GetByID(context.Background(), 7, nil)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A system row can't seed the similar-businesses listing either: the base
// load carries the same visibility predicate as the detail endpoint.
func TestSimilarFiltersSystemBaseRow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newTestBusinessService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "businesses" WHERE is_system = \$1 AND "businesses"\."id" = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}))

	_, err := svc.Similar(context.Background(), 7, 5, nil)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
