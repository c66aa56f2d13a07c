package service

import (
	"context"
	"sort"
	"time"

	"github.com/atinyakov/TalkTracker/internal/models"
)

// ScheduleService derives the day-grouped view of a list's talks. It is a
// pure projection over the current talk collection, recomputed on every
// call; nothing is cached or invalidated.
type ScheduleService struct {
	lists TalkListRepository
	talks TalkLister
}

// NewScheduleService constructs a ScheduleService with the provided
// repositories.
func NewScheduleService(lists TalkListRepository, talks TalkLister) *ScheduleService {
	return &ScheduleService{lists: lists, talks: talks}
}

// ScheduleFor returns the account's list grouped by calendar day, days
// ascending, talks within each day in default order. An empty list yields
// an empty slice, not an error.
func (s *ScheduleService) ScheduleFor(ctx context.Context, accountID, listSlug string) ([]models.ScheduleDay, error) {
	list, err := s.lists.GetListBySlug(ctx, accountID, listSlug)
	if err != nil {
		return nil, err
	}
	talks, err := s.talks.TalksByList(ctx, list.ID)
	if err != nil {
		return nil, err
	}
	return GroupByDay(talks), nil
}

// GroupByDay buckets talks by the UTC calendar date of their scheduled
// time. Days are ordered ascending, and within each day talks follow the
// default order: scheduled time ascending, then room. The input is not
// modified.
func GroupByDay(talks []models.Talk) []models.ScheduleDay {
	ordered := make([]models.Talk, len(talks))
	copy(ordered, talks)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].When.Equal(ordered[j].When) {
			return ordered[i].When.Before(ordered[j].When)
		}
		return ordered[i].Room < ordered[j].Room
	})

	days := make([]models.ScheduleDay, 0)
	for _, talk := range ordered {
		day := startOfDay(talk.When)
		if n := len(days); n > 0 && days[n-1].Day.Equal(day) {
			days[n-1].Talks = append(days[n-1].Talks, talk)
			continue
		}
		days = append(days, models.ScheduleDay{Day: day, Talks: []models.Talk{talk}})
	}
	return days
}

// startOfDay truncates a timestamp to its UTC calendar date.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
