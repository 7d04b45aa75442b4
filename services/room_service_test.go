package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRoomsInsertionOrder(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(1, "Executive Suite", "d", 450.0, "", 4, "75 sqm", []byte(`["King Bed"]`), true).
			AddRow(2, "Luxury Ocean View", "d", 650.0, "", 2, "85 sqm", []byte(`[]`), true).
			AddRow(3, "Garden Room", "d", 180.0, "", 2, "", []byte(`[]`), false))

	rooms, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, uint(1), rooms[0].ID)
	assert.Equal(t, uint(2), rooms[1].ID)
	assert.Equal(t, uint(3), rooms[2].ID)
	assert.Equal(t, []string{"King Bed"}, []string(rooms[0].Amenities))
}

func TestListFeaturedRoomsFiltersOnFlag(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("SELECT (.+) FROM `rooms` WHERE featured").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(1, "Executive Suite", "d", 450.0, "", 4, "", []byte(`[]`), true))

	rooms, err := svc.ListFeatured()
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.True(t, rooms[0].Featured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoomByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows(roomColumns()))

	_, err := svc.GetByID(42)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDeleteRoomNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `rooms` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.Delete(42)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
