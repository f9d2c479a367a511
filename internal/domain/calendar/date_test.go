//go:build unit

package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"estate-booking/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	t.Run("parse and format round trip", func(t *testing.T) {
		d, err := calendar.Parse("2024-03-01")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", d.String())
		assert.Equal(t, calendar.New(2024, time.March, 1), d)
	})

	t.Run("invalid formats are rejected", func(t *testing.T) {
		for _, in := range []string{"", "2024/03/01", "01-03-2024", "2024-02-30"} {
			_, err := calendar.Parse(in)
			assert.ErrorIs(t, err, calendar.ErrInvalidDate, in)
		}
	})

	t.Run("days until crosses month and leap day", func(t *testing.T) {
		from := calendar.MustParse("2024-02-27")
		assert.Equal(t, 3, from.DaysUntil(calendar.MustParse("2024-03-01")))
		assert.Equal(t, -3, calendar.MustParse("2024-03-01").DaysUntil(from))
		assert.Equal(t, 0, from.DaysUntil(from))
	})

	t.Run("today uses the given location", func(t *testing.T) {
		now := time.Date(2024, time.March, 1, 23, 30, 0, 0, time.UTC)
		lagos := time.FixedZone("WAT", 3600)
		assert.Equal(t, "2024-03-02", calendar.Today(now, lagos).String())
		assert.Equal(t, "2024-03-01", calendar.Today(now, nil).String())
	})

	t.Run("range is half open", func(t *testing.T) {
		days := calendar.Range(calendar.MustParse("2024-03-01"), calendar.MustParse("2024-03-04"))
		require.Len(t, days, 3)
		assert.Equal(t, "2024-03-03", days[2].String())
		assert.Nil(t, calendar.Range(calendar.MustParse("2024-03-04"), calendar.MustParse("2024-03-01")))
	})

	t.Run("json accepts dates and timestamps", func(t *testing.T) {
		var payload struct {
			A calendar.Date  `json:"a"`
			B calendar.Date  `json:"b"`
			C *calendar.Date `json:"c"`
		}
		err := json.Unmarshal([]byte(`{"a":"2024-01-05","b":"2024-01-06T00:00:00.000Z","c":null}`), &payload)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-05", payload.A.String())
		assert.Equal(t, "2024-01-06", payload.B.String())
		assert.Nil(t, payload.C)

		out, err := json.Marshal(payload.A)
		require.NoError(t, err)
		assert.JSONEq(t, `"2024-01-05"`, string(out))
	})
}
