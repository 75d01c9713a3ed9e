package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		raw     string
		want    TimeOfDay
		wantErr bool
	}{
		{raw: "10:00", want: 600},
		{raw: "16:30", want: 990},
		{raw: "00:00", want: 0},
		{raw: "9:30", wantErr: true},
		{raw: "10:0", wantErr: true},
		{raw: "ab:cd", wantErr: true},
		{raw: "24:00", wantErr: true},
		{raw: "12:60", wantErr: true},
		{raw: "12-30", wantErr: true},
		{raw: "+9:00", wantErr: true},
		{raw: "-0:00", wantErr: true},
		{raw: "09:+5", wantErr: true},
		{raw: "1 :00", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestTimeOfDayAdd(t *testing.T) {
	assert.Equal(t, "10:30", MustTimeOfDay("10:00").Add(30).String())
	assert.Equal(t, "11:00", MustTimeOfDay("10:30").Add(30).String())
	assert.Equal(t, "00:00", MustTimeOfDay("23:30").Add(30).String())
	assert.Equal(t, "23:30", MustTimeOfDay("00:00").Add(-30).String())
}

func TestWindowSlots(t *testing.T) {
	slots := DefaultWindow.Slots()
	require.Len(t, slots, 14)
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])

	seen := map[string]bool{}
	for _, s := range slots {
		tod := MustTimeOfDay(s)
		assert.True(t, tod.OnGrid(), "%s should be on the grid", s)
		assert.False(t, seen[s], "duplicate entry %s", s)
		seen[s] = true
	}
}

func TestWindowSlotsAlignsOffGridOpen(t *testing.T) {
	w := Window{Open: MustTimeOfDay("09:15"), Close: MustTimeOfDay("10:30")}
	assert.Equal(t, []string{"09:30", "10:00"}, w.Slots())
}

func TestWindowSlotsEmptyWhenInverted(t *testing.T) {
	w := Window{Open: MustTimeOfDay("17:00"), Close: MustTimeOfDay("10:00")}
	assert.Empty(t, w.Slots())
}

func TestWindowContains(t *testing.T) {
	assert.True(t, DefaultWindow.Contains(MustTimeOfDay("10:00")))
	assert.True(t, DefaultWindow.Contains(MustTimeOfDay("16:30")))
	assert.False(t, DefaultWindow.Contains(MustTimeOfDay("17:00")))
	assert.False(t, DefaultWindow.Contains(MustTimeOfDay("09:30")))
}
