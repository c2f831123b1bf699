package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	c := Cursor{
		Date:      time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "4f1c2a9e-7a52-4c43-9b0e-2f3a4d5e6f70",
	}

	token := EncodeToken(c)
	assert.NotEmpty(t, token)

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, c, decoded)

	// Zero time values survive the round trip
	zero := Cursor{ID: "x"}
	decoded, err = DecodeToken(EncodeToken(zero))
	require.NoError(t, err)
	assert.True(t, decoded.Date.IsZero())
	assert.True(t, decoded.CreatedAt.IsZero())
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2025-05-15T00:00:00Z"))
	_, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|2025-05-15T14:30:45Z|id"))
	_, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	badCreated := base64.URLEncoding.EncodeToString([]byte("2025-05-15T00:00:00Z|later|id"))
	_, err = DecodeToken(badCreated)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestDecodeOptionalToken(t *testing.T) {
	c, err := DecodeOptionalToken("")
	assert.NoError(t, err)
	assert.Nil(t, c)

	_, err = DecodeOptionalToken("%%%")
	assert.Error(t, err)
}

func TestNextToken(t *testing.T) {
	last := func() Cursor { return Cursor{ID: "last"} }

	assert.Nil(t, NextToken(10, 10, last))
	assert.Nil(t, NextToken(3, 10, last))

	token := NextToken(11, 10, last)
	require.NotNil(t, token)
	decoded, err := DecodeToken(*token)
	require.NoError(t, err)
	assert.Equal(t, "last", decoded.ID)
}
