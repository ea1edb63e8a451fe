package orderstore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// The same logical list arrives bare, or wrapped under data/items/$values;
// every shape must normalize to the same array.
func TestListPayload_Shapes(t *testing.T) {
	shapes := []string{
		`[{"id":1},{"id":2}]`,
		`{"data":[{"id":1},{"id":2}]}`,
		`{"items":[{"id":1},{"id":2}]}`,
		`{"$values":[{"id":1},{"id":2}]}`,
		`{"data":{"$values":[{"id":1},{"id":2}]}}`,
	}
	for _, shape := range shapes {
		arr, err := listPayload([]byte(shape))
		require.NoError(t, err, "shape %s", shape)

		var items []struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(arr, &items))
		require.Len(t, items, 2, "shape %s", shape)
		require.Equal(t, int64(1), items[0].ID)
	}
}

func TestListPayload_Unrecognized(t *testing.T) {
	_, err := listPayload([]byte(`{"message":"ok"}`))
	require.Error(t, err)

	_, err = listPayload([]byte(``))
	require.Error(t, err)
}

func TestParseStoreTime_Variants(t *testing.T) {
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for _, raw := range []string{
		"2024-05-01T10:00:00Z",
		"2024-05-01T10:00:00", // store omits the zone on some fields
	} {
		got, err := parseStoreTime(raw)
		require.NoError(t, err, raw)
		require.True(t, got.Equal(want), raw)
	}

	offset, err := parseStoreTime("2024-05-01T17:00:00+07:00")
	require.NoError(t, err)
	require.True(t, offset.Equal(want))

	_, err = parseStoreTime("yesterday")
	require.Error(t, err)
}

func TestParseOptionalTime(t *testing.T) {
	require.Nil(t, parseOptionalTime(""))
	require.Nil(t, parseOptionalTime("garbage"))
	require.NotNil(t, parseOptionalTime("2024-05-01T10:00:00"))
}
