package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullInt64(t *testing.T) {
	n := Int64Of(17850)
	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(17850), v)
	assert.Equal(t, "17850", n.String())

	var null NullInt64
	_, err = null.Value()
	assert.ErrorIs(t, err, ErrNullValue)
	assert.Empty(t, null.String())
}

func TestNullFloat64(t *testing.T) {
	n := Float64Of(2.55)
	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, 2.55, v)

	var null NullFloat64
	_, err = null.Value()
	assert.ErrorIs(t, err, ErrNullValue)
}

func TestNullTime(t *testing.T) {
	ts := time.Date(2010, 12, 1, 8, 26, 0, 0, time.UTC)
	n := TimeOf(ts)
	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, ts, v)

	var null NullTime
	_, err = null.Value()
	assert.ErrorIs(t, err, ErrNullValue)
}

func TestTransaction_IsCancellation(t *testing.T) {
	assert.True(t, Transaction{InvoiceID: "C536365"}.IsCancellation())
	assert.False(t, Transaction{InvoiceID: "536365"}.IsCancellation())
	assert.False(t, Transaction{}.IsCancellation())
}

func TestSeries_Append(t *testing.T) {
	var s Series
	s.Append("2010-12", 100).Append("2011-01", 300)
	require.Len(t, s.Points, 2)
	assert.Equal(t, "2010-12", s.Points[0].Label)
	assert.Equal(t, 300.0, s.Points[1].Value)
}
