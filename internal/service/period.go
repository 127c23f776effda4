package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/limbo/agriquest/pkg/entity"
)

// SpecialPeriod is the period key shared by all completions of a special quest, making them one-time.
var SpecialPeriod = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// DayOf returns the calendar date of t in loc as midnight UTC, the form DATE columns round-trip in.
func DayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday on or before day.
func WeekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func PeriodKey(questType entity.QuestType, now time.Time, loc *time.Location) time.Time {
	day := DayOf(now, loc)
	switch questType {
	case entity.QuestWeekly:
		return WeekStart(day)
	case entity.QuestSpecial:
		return SpecialPeriod
	default:
		return day
	}
}

func newProgress(uid uuid.UUID, quest *entity.Quest, now time.Time, loc *time.Location) *entity.QuestProgress {
	day := DayOf(now, loc)
	p := &entity.QuestProgress{
		UserID:       uid,
		QuestID:      quest.ID,
		DateAssigned: day,
		PeriodKey:    PeriodKey(quest.Type, now, loc),
		QuestType:    quest.Type,
		Category:     quest.Category,
	}
	if quest.Type == entity.QuestWeekly {
		week := p.PeriodKey
		p.WeekStart = &week
	}
	return p
}
