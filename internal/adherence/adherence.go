// Package adherence derives medication adherence statistics from a user's dose history.
//
// All functions are pure. Calendar days are taken in the location of the asOf
// argument: a dose logged at 23:30 in New York belongs to that New York day even
// if the store returned it in UTC.
package adherence

import (
	"errors"
	"math"
	"time"

	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/pkg/entity"
)

const (
	WeekDays  = 7
	MonthDays = 30
)

type day struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time, loc *time.Location) day {
	y, m, d := t.In(loc).Date()
	return day{year: y, month: m, day: d}
}

func (d day) midnight(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// back returns the day n calendar days before d.
func (d day) back(n int) day {
	t := time.Date(d.year, d.month, d.day, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -n)
	return dayOf(t, time.UTC)
}

func checkAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errors.Join(errorvalues.ErrInvalidInput, errors.New("reference date is zero"))
	}
	return nil
}

// takenDays builds the set of calendar days holding at least one dose.
func takenDays(events []entity.DoseEvent, loc *time.Location) (map[day]struct{}, error) {
	days := make(map[day]struct{}, len(events))
	for i := range events {
		if events[i].TakenAt.IsZero() {
			return nil, errors.Join(errorvalues.ErrInvalidInput, errors.New("dose event without taken_at"))
		}
		days[dayOf(events[i].TakenAt, loc)] = struct{}{}
	}
	return days, nil
}

// ComputeStreak counts consecutive days with a dose, walking back from asOf's
// day. If asOf's day itself has no dose the streak is 0.
func ComputeStreak(events []entity.DoseEvent, asOf time.Time) (int, error) {
	if err := checkAsOf(asOf); err != nil {
		return 0, err
	}
	loc := asOf.Location()
	days, err := takenDays(events, loc)
	if err != nil {
		return 0, err
	}
	today := dayOf(asOf, loc)
	streak := 0
	for {
		if _, ok := days[today.back(streak)]; !ok {
			return streak, nil
		}
		streak++
	}
}

// BuildWeeklyTimeline returns the seven days ending at asOf, oldest first.
func BuildWeeklyTimeline(events []entity.DoseEvent, asOf time.Time) ([]entity.DayStatus, error) {
	if err := checkAsOf(asOf); err != nil {
		return nil, err
	}
	loc := asOf.Location()
	days, err := takenDays(events, loc)
	if err != nil {
		return nil, err
	}
	today := dayOf(asOf, loc)
	timeline := make([]entity.DayStatus, 0, WeekDays)
	for i := WeekDays - 1; i >= 0; i-- {
		d := today.back(i)
		status := entity.DoseMissed
		if _, ok := days[d]; ok {
			status = entity.DoseTaken
		}
		timeline = append(timeline, entity.DayStatus{
			Date:   d.midnight(loc),
			Status: status,
		})
	}
	return timeline, nil
}

// ComputeMonthlyPercentage counts dose events, not distinct days, over the 30
// days ending at asOf and scales the count to a percentage of 30. Two doses on
// one day count twice, so the result can exceed 100.
func ComputeMonthlyPercentage(events []entity.DoseEvent, asOf time.Time) (int, error) {
	if err := checkAsOf(asOf); err != nil {
		return 0, err
	}
	loc := asOf.Location()
	today := dayOf(asOf, loc)
	from := today.back(MonthDays - 1).midnight(loc)
	to := today.midnight(loc)
	count := 0
	for i := range events {
		if events[i].TakenAt.IsZero() {
			return 0, errors.Join(errorvalues.ErrInvalidInput, errors.New("dose event without taken_at"))
		}
		d := dayOf(events[i].TakenAt, loc).midnight(loc)
		if d.Before(from) || d.After(to) {
			continue
		}
		count++
	}
	return int(math.Round(float64(count) / MonthDays * 100)), nil
}

// TakenOn reports whether any event falls on the calendar day of ref.
func TakenOn(events []entity.DoseEvent, ref time.Time) bool {
	loc := ref.Location()
	target := dayOf(ref, loc)
	for i := range events {
		if !events[i].TakenAt.IsZero() && dayOf(events[i].TakenAt, loc) == target {
			return true
		}
	}
	return false
}

// Snapshot computes every derived statistic for asOf in one call.
func Snapshot(events []entity.DoseEvent, asOf time.Time) (*entity.AdherenceSnapshot, error) {
	streak, err := ComputeStreak(events, asOf)
	if err != nil {
		return nil, err
	}
	timeline, err := BuildWeeklyTimeline(events, asOf)
	if err != nil {
		return nil, err
	}
	monthly, err := ComputeMonthlyPercentage(events, asOf)
	if err != nil {
		return nil, err
	}
	return &entity.AdherenceSnapshot{
		AsOf:              dayOf(asOf, asOf.Location()).midnight(asOf.Location()),
		CurrentStreak:     streak,
		TakenToday:        TakenOn(events, asOf),
		WeeklyTimeline:    timeline,
		MonthlyPercentage: monthly,
	}, nil
}
