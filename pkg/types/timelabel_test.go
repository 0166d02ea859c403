package types

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00 AM", want: "09:00 AM"},
		{in: "01:30 PM", want: "01:30 PM"},
		{in: "12:00 PM", want: "12:00 PM"},
		{in: "  10:00 am ", want: "10:00 AM"},
		{in: "9:00 AM", wantErr: true},
		{in: "13:00 PM", wantErr: true},
		{in: "09:00", wantErr: true},
		{in: "morning", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		label, err := ParseTimeLabel(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeLabel, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, label.String())
	}
}

func TestNewTimeLabel(t *testing.T) {
	label := NewTimeLabel(time.Date(2026, 1, 1, 14, 30, 0, 0, time.UTC))
	assert.Equal(t, TimeLabel("02:30 PM"), label)

	label = NewTimeLabel(time.Date(2026, 1, 1, 0, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeLabel("12:05 AM"), label)
}

func TestTimeLabelMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeLabel("12:00 AM").Minutes())
	assert.Equal(t, 9*60, TimeLabel("09:00 AM").Minutes())
	assert.Equal(t, 12*60, TimeLabel("12:00 PM").Minutes())
	assert.Equal(t, 17*60, TimeLabel("05:00 PM").Minutes())
	assert.Equal(t, -1, TimeLabel("bogus").Minutes())
}

func TestTimeLabelBeforeOrdersChronologically(t *testing.T) {
	labels := []TimeLabel{"05:00 PM", "09:00 AM", "12:00 PM", "11:00 AM", "01:00 PM"}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Before(labels[j]) })

	assert.Equal(t, []TimeLabel{"09:00 AM", "11:00 AM", "12:00 PM", "01:00 PM", "05:00 PM"}, labels)
}

func TestTimeLabelBeforeUnparseableSortsLast(t *testing.T) {
	assert.True(t, TimeLabel("09:00 AM").Before(TimeLabel("bogus")))
	assert.False(t, TimeLabel("bogus").Before(TimeLabel("09:00 AM")))
	assert.True(t, TimeLabel("a").Before(TimeLabel("b")))
}
