// Package models defines the core data structures for accounts, talk lists,
// and talks.
package models

import "time"

// Account represents a registered user with credentials.
type Account struct {
	// ID is the unique identifier for the account.
	ID string
	// Username is the login name chosen by the user.
	Username string
	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash []byte
}

// TalkList is a named collection of talks owned by exactly one account.
type TalkList struct {
	// ID is the unique identifier for the list.
	ID string `json:"id"`
	// AccountID references the owning account.
	AccountID string `json:"-"`
	// Name is the display name of the list, unique per owner.
	Name string `json:"name"`
	// Slug is derived from Name on every save and is used for lookup
	// scoped to the owner. It is not globally unique.
	Slug string `json:"slug"`
	// TalkCount is the number of talks in the list. It is populated by
	// list queries only and never stored.
	TalkCount int `json:"talk_count"`
}

// Talk is a single scheduled presentation belonging to one talk list.
type Talk struct {
	// ID is the unique identifier for the talk.
	ID string `json:"id"`
	// TalkListID references the owning list.
	TalkListID string `json:"talk_list_id"`
	// Name is the talk title, unique within its list.
	Name string `json:"name"`
	// Slug is derived from Name on every save.
	Slug string `json:"slug"`
	// When is the scheduled start time.
	When time.Time `json:"when"`
	// Room is one of the configured room codes.
	Room string `json:"room"`
	// Host is the free-text name of the presenter.
	Host string `json:"host"`
	// TalkRating is the raw rating of the talk content, 0 meaning unrated.
	TalkRating int `json:"talk_rating"`
	// SpeakerRating is the raw rating of the speaker, 0 meaning unrated.
	SpeakerRating int `json:"speaker_rating"`
	// Notes holds the raw Markdown notes.
	Notes string `json:"notes"`
	// NotesHTML is rendered from Notes on every save. It is never
	// accepted from a client.
	NotesHTML string `json:"notes_html"`
}

// OverallRating is the average of the two component ratings. It is zero
// unless both components are set.
func (t *Talk) OverallRating() int {
	if t.TalkRating != 0 && t.SpeakerRating != 0 {
		return (t.TalkRating + t.SpeakerRating) / 2
	}
	return 0
}

// ScheduleDay is one calendar day of a list's schedule, with the day's
// talks in default order (When ascending, then Room).
type ScheduleDay struct {
	// Day is the calendar date at midnight UTC.
	Day time.Time `json:"day"`
	// Talks are the talks scheduled on Day.
	Talks []Talk `json:"talks"`
}
