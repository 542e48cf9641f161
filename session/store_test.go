package session

import (
	"context"
	"testing"
	"tikiti/entities"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCartStore() (*CartStore, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return &CartStore{rdb: db, ttl: 30 * time.Minute}, mock
}

func TestIncrementRefreshesTTL(t *testing.T) {
	store, mock := setupTestCartStore()

	mock.ExpectHIncrBy("cart:sess-1:5", "Standard", 1).SetVal(1)
	mock.ExpectExpire("cart:sess-1:5", 30*time.Minute).SetVal(true)

	err := store.Increment(context.Background(), "sess-1", 5, entities.TicketStandard)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementFloorsAtZeroViaScript(t *testing.T) {
	store, mock := setupTestCartStore()

	mock.ExpectEval(decrementScript, []string{"cart:sess-1:5"}, "VIP").SetVal(int64(0))
	mock.ExpectExpire("cart:sess-1:5", 30*time.Minute).SetVal(true)

	err := store.Decrement(context.Background(), "sess-1", 5, entities.TicketVIP)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementOnEmptyCartCreatesNothing(t *testing.T) {
	store, mock := setupTestCartStore()

	// The script reads and returns 0 without writing, so a decrement on a
	// cart that was never touched must not bring the hash into existence.
	mock.ExpectEval(decrementScript, []string{"cart:sess-9:3"}, "Standard").SetVal(int64(0))
	mock.ExpectExpire("cart:sess-9:3", 30*time.Minute).SetVal(false)

	err := store.Decrement(context.Background(), "sess-9", 3, entities.TicketStandard)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRebuildsSelection(t *testing.T) {
	store, mock := setupTestCartStore()

	mock.ExpectHGetAll("cart:sess-1:5").SetVal(map[string]string{
		"Standard": "2",
		"VIP":      "0",
		"Premium":  "1",
	})

	selection, err := store.Get(context.Background(), "sess-1", 5)

	require.NoError(t, err)
	assert.Equal(t, 2, selection.Quantity(entities.TicketStandard))
	assert.Equal(t, 0, selection.Quantity(entities.TicketVIP))
	assert.Equal(t, 1, selection.Quantity(entities.TicketPremium))
	assert.Equal(t, 3, selection.TicketCount())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOfMissingCartIsEmptySelection(t *testing.T) {
	store, mock := setupTestCartStore()

	mock.ExpectHGetAll("cart:sess-1:9").SetVal(map[string]string{})

	selection, err := store.Get(context.Background(), "sess-1", 9)

	require.NoError(t, err)
	assert.Equal(t, 0, selection.TicketCount())
}

func TestClearDeletesTheHash(t *testing.T) {
	store, mock := setupTestCartStore()

	mock.ExpectDel("cart:sess-1:5").SetVal(1)

	require.NoError(t, store.Clear(context.Background(), "sess-1", 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewIDIsUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
