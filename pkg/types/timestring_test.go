package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical", input: "09:30", want: "09:30"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "single digit minute", input: "12:5", wantErr: true},
		{name: "no separator", input: "1230", wantErr: true},
		{name: "with seconds", input: "12:30:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringMinutesAndParts(t *testing.T) {
	ts := TimeString("22:45")

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 22*60+45, minutes)
	assert.Equal(t, 22, ts.Hour())
	assert.Equal(t, 45, ts.Minute())
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("10:40").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:10"), got)

	_, err = TimeString("23:40").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("15:00").IsAfter("09:00"))
	assert.False(t, TimeString("bad").IsAfter("09:00"))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("08:15:00"))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan([]byte("17:05")))
	assert.Equal(t, TimeString("17:05"), ts)

	require.NoError(t, ts.Scan(time.Date(2024, 1, 1, 6, 7, 8, 0, time.UTC)))
	assert.Equal(t, TimeString("06:07"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
