package overunder

import (
	"fmt"
	"strings"
)

// StatType names a per-game statistic the search endpoint can count.
type StatType string

const (
	StatDisposals StatType = "disposals"
	StatGoals     StatType = "goals"
)

// StatTypes lists every stat the backend accepts.
func StatTypes() []StatType {
	return []StatType{StatDisposals, StatGoals}
}

func (s StatType) Valid() bool {
	switch s {
	case StatDisposals, StatGoals:
		return true
	default:
		return false
	}
}

func (s StatType) String() string {
	return string(s)
}

func ParseStatType(raw string) (StatType, error) {
	stat := StatType(strings.ToLower(strings.TrimSpace(raw)))
	if !stat.Valid() {
		return "", NewValidationError(invalidStatMessage(raw))
	}
	return stat, nil
}

// Query identifies a player either by name or by id, never both.
// An empty PlayerName counts as absent; a nil StrictOver leaves the
// server default in place.
type Query struct {
	PlayerName string
	PlayerID   *int64
	Stat       StatType `validate:"stat_type"`
	Threshold  float64  `validate:"finite"`
	StrictOver *bool
}

func ByPlayerName(name string, stat StatType, threshold float64) Query {
	return Query{PlayerName: name, Stat: stat, Threshold: threshold}
}

func ByPlayerID(id int64, stat StatType, threshold float64) Query {
	return Query{PlayerID: &id, Stat: stat, Threshold: threshold}
}

// WithStrictOver returns a copy of q with strict_over set.
// true: over is >, under is <=. false: over is >=, under is <.
func (q Query) WithStrictOver(strict bool) Query {
	q.StrictOver = &strict
	return q
}

func (q Query) HasPlayerName() bool {
	return q.PlayerName != ""
}

func (q Query) HasPlayerID() bool {
	return q.PlayerID != nil
}

// Subject describes the player the query is about, for logs and output.
func (q Query) Subject() string {
	switch {
	case q.HasPlayerName():
		return q.PlayerName
	case q.HasPlayerID():
		return fmt.Sprintf("player #%d", *q.PlayerID)
	default:
		return ""
	}
}

// Result counts games over and under the threshold across a player's history.
type Result struct {
	Over  int `json:"over"`
	Under int `json:"under"`
}

func (r Result) Total() int {
	return r.Over + r.Under
}

func invalidStatMessage(raw string) string {
	return fmt.Sprintf("Invalid stat %q. Must be one of %s", raw, statTypeList())
}

func statTypeList() string {
	types := StatTypes()
	out := make([]string, 0, len(types))
	for _, item := range types {
		out = append(out, string(item))
	}
	return strings.Join(out, "|")
}
