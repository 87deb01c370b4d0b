package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	Init(nil)

	id, err := GenerateSessionID()
	require.NoError(t, err)
	assert.Len(t, id, 64)

	require.NoError(t, (&Data{UserID: 7, Username: "admin"}).Write(id, time.Minute))

	var got Data
	require.NoError(t, got.Read(id))
	assert.True(t, got.Valid())
	assert.Equal(t, "admin", got.Username)

	require.NoError(t, Delete(id))
	require.ErrorIs(t, got.Read(id), ErrNoSession)
}

func TestReadUnknown(t *testing.T) {
	Init(nil)

	var got Data
	require.ErrorIs(t, got.Read(""), ErrNoSession)
	require.ErrorIs(t, got.Read("unknown"), ErrNoSession)
	assert.False(t, got.Valid())
}
