package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "09:00", want: "09:00"},
		{input: "23:30", want: "23:30"},
		{input: "00:00", want: "00:00"},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeOfDay_Comparisons(t *testing.T) {
	early := NewTimeOfDay(9, 0)
	late := NewTimeOfDay(17, 30)

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.True(t, late.After(early))
	assert.True(t, early.Equal(NewTimeOfDay(9, 0)))
	assert.False(t, early.Equal(late))
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	start := NewTimeOfDay(9, 0)

	assert.Equal(t, "09:30", start.AddMinutes(30).String())
	assert.Equal(t, "11:00", start.AddMinutes(120).String())
	assert.Equal(t, "08:30", start.AddMinutes(-30).String())
}

func TestTimeOfDay_Scan(t *testing.T) {
	t.Run("from postgres time string", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.Scan("09:30:00"))
		assert.Equal(t, "09:30", tod.String())
	})

	t.Run("from byte slice", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.Scan([]byte("17:00:00")))
		assert.Equal(t, "17:00", tod.String())
	})

	t.Run("from time.Time", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.Scan(time.Date(2026, 9, 7, 14, 30, 0, 0, time.UTC)))
		assert.Equal(t, "14:30", tod.String())
	})
}

func TestTimeOfDay_JSON(t *testing.T) {
	tod := NewTimeOfDay(9, 30)

	data, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"09:30"`, string(data))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"17:00"`), &decoded))
	assert.Equal(t, "17:00", decoded.String())
}
