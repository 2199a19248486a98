package volatile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func ip(v int) *int          { return &v }

func TestRoundTrip(t *testing.T) {
	rec := Record{
		ID:      uuid.New(),
		Rank:    ip(1234),
		USD:     f64(1.23),
		USDFoil: nil,
		EUR:     f64(0.50),
	}

	decoded, err := Decode(Encode(rec))
	require.NoError(t, err)

	got, ok := decoded[rec.ID]
	require.True(t, ok)
	require.Equal(t, rec.ID, got.ID)
	require.Equal(t, *rec.Rank, *got.Rank)
	require.InDelta(t, *rec.USD, *got.USD, 0.001)
	require.Nil(t, got.USDFoil)
	require.InDelta(t, *rec.EUR, *got.EUR, 0.001)
	require.Nil(t, got.EURFoil)
	require.Nil(t, got.TIX)
}

func TestDecodeMultiple(t *testing.T) {
	a := Record{ID: uuid.New(), USD: f64(2.00)}
	b := Record{ID: uuid.New(), Rank: ip(5)}

	blob := append(Encode(a), Encode(b)...)
	out, err := Decode(blob)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.InDelta(t, 2.00, *out[a.ID].USD, 0.001)
	require.Equal(t, 5, *out[b.ID].Rank)
}

func TestDecodeMalformedLength(t *testing.T) {
	_, err := Decode(make([]byte, RecordSize+1))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeEmpty(t *testing.T) {
	out, err := Decode(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}
