package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSlotsForDate_Weekday(t *testing.T) {
	// 2026-09-02 is a Wednesday.
	slots := SlotsForDate(date("2026-09-02"))

	assert.Len(t, slots, 14)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "11:30", slots[5])
	assert.Equal(t, "14:00", slots[6])
	assert.Equal(t, "17:30", slots[13])
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "13:30")
	assert.NotContains(t, slots, "18:00")
}

func TestSlotsForDate_Weekend(t *testing.T) {
	// 2026-09-05 is a Saturday, 2026-09-06 a Sunday.
	assert.Empty(t, SlotsForDate(date("2026-09-05")))
	assert.Empty(t, SlotsForDate(date("2026-09-06")))
}

func TestIsWorkingDay(t *testing.T) {
	assert.True(t, IsWorkingDay(date("2026-09-04")))
	assert.False(t, IsWorkingDay(date("2026-09-05")))
	assert.False(t, IsWorkingDay(date("2026-09-06")))
	assert.True(t, IsWorkingDay(date("2026-09-07")))
}

func TestIsValidSlot(t *testing.T) {
	wednesday := date("2026-09-02")

	assert.True(t, IsValidSlot(wednesday, "09:30"))
	assert.True(t, IsValidSlot(wednesday, "17:30"))
	assert.False(t, IsValidSlot(wednesday, "12:30"))
	assert.False(t, IsValidSlot(wednesday, "08:30"))
	assert.False(t, IsValidSlot(wednesday, "09:15"))
	assert.False(t, IsValidSlot(date("2026-09-05"), "09:00"))
}

func TestGenerateClocksBetween(t *testing.T) {
	t.Run("full slot must fit before the window end", func(t *testing.T) {
		out := generateClocksBetween(clock{9, 0}, clock{10, 45}, 30)
		assert.Equal(t, []string{"09:00", "09:30", "10:00"}, out)
	})

	t.Run("empty window yields nothing", func(t *testing.T) {
		assert.Empty(t, generateClocksBetween(clock{9, 0}, clock{9, 0}, 30))
	})

	t.Run("non-positive slot length yields nothing", func(t *testing.T) {
		assert.Empty(t, generateClocksBetween(clock{9, 0}, clock{12, 0}, 0))
	})
}
