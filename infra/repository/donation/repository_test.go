package donation

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/briskfarm/backend/pkg/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return New(db), mock
}

func TestGetBySessionID(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	sessionID := "dummy_card_session_" + id.String()

	mock.ExpectQuery(`SELECT \* FROM "donations" WHERE provider_session_id = \$1 (.+)LIMIT \$2`).
		WithArgs(sessionID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "currency", "status", "provider_session_id"}).
			AddRow(id, int64(5000), "UGX", "pending", sessionID))

	d, err := repo.GetBySessionID(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, id, d.ID)
	assert.Equal(t, int64(5000), d.Amount)
	assert.Equal(t, domain.DonationPending, d.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySessionID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "donations" WHERE provider_session_id = \$1 (.+)LIMIT \$2`).
		WithArgs("dummy_card_session_missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetBySessionID(context.Background(), "dummy_card_session_missing")
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusFrom_CompareAndSet(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donations" SET (.+) WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatusFrom(context.Background(), id,
		domain.DonationPending, domain.DonationConfirmed, "success")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusFrom_LostRace(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donations" SET (.+) WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateStatusFrom(context.Background(), id,
		domain.DonationPending, domain.DonationConfirmed, "success")
	assert.ErrorIs(t, err, domain.ErrConcurrentStatusUpdate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusFrom_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donations" SET (.+)`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.UpdateStatusFrom(context.Background(), uuid.New(),
		domain.DonationPending, domain.DonationConfirmed, "success")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConcurrentStatusUpdate)
}
