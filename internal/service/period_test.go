package service_test

import (
	"testing"
	"time"

	"github.com/limbo/agriquest/internal/service"
	"github.com/limbo/agriquest/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		assert.Equal(t, monday, service.WeekStart(d), d.Weekday().String())
	}
	assert.Equal(t, monday.AddDate(0, 0, 7), service.WeekStart(monday.AddDate(0, 0, 7)))
}

func TestPeriodKey(t *testing.T) {
	// Sunday evening
	now := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), service.PeriodKey(entity.QuestDaily, now, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), service.PeriodKey(entity.QuestWeekly, now, time.UTC))
	assert.Equal(t, service.SpecialPeriod, service.PeriodKey(entity.QuestSpecial, now, time.UTC))
}

func TestPeriodKeyTimeZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// Already Monday in India
	now := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), service.PeriodKey(entity.QuestDaily, now, ist))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), service.PeriodKey(entity.QuestWeekly, now, ist))
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), service.PeriodKey(entity.QuestWeekly, now, time.UTC))
}
