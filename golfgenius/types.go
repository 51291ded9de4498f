package golfgenius

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID is a GolfGenius identifier. The API sends ids both as JSON numbers
// and as strings; both decode to the same value.
type ID string

// UnmarshalJSON accepts a string, a number or null
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the id as a string
func (id ID) String() string {
	return string(id)
}

// Season represents a GolfGenius season. The name carries the year label.
type Season struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Event represents an event within a season
type Event struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Round represents a single round of an event
type Round struct {
	ID   ID     `json:"id"`
	Name string `json:"name,omitempty"`
	Date string `json:"date,omitempty"`
}

// Tournament represents a competition played during a round
type Tournament struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// tournamentItem is one entry of the round tournaments listing. The
// tournament id lives in the nested "event" object; some payloads put it
// at the top level instead.
type tournamentItem struct {
	ID    ID          `json:"id"`
	Name  string      `json:"name"`
	Event *Tournament `json:"event"`
}

func (t tournamentItem) tournament() (Tournament, bool) {
	if t.Event != nil && t.Event.ID != "" {
		return *t.Event, true
	}
	if t.ID != "" {
		return Tournament{ID: t.ID, Name: t.Name}, true
	}
	return Tournament{}, false
}

// GrossScore is a round total. Valid is false when the API sent no usable
// number (missing, null, blank or non-numeric).
type GrossScore struct {
	Value int
	Valid bool
}

// UnmarshalJSON never fails: unusable totals decode as an invalid score so
// a single bad record cannot spoil the whole results payload.
func (s *GrossScore) UnmarshalJSON(data []byte) error {
	*s = GrossScore{}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		if v == math.Trunc(v) {
			s.Value, s.Valid = int(v), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			s.Value, s.Valid = n, true
		}
	}
	return nil
}

// PlayerResult is one player's line in a tournament result
type PlayerResult struct {
	MemberID   ID
	Name       string
	GrossScore GrossScore
}

// resultsEvent is the "event" object of a tournament results payload
type resultsEvent struct {
	Scopes []resultsScope `json:"scopes"`
}

type resultsScope struct {
	Aggregates aggregateList `json:"aggregates"`
}

// aggregateList decodes "aggregates" whether it is an object or a list
type aggregateList []aggregate

func (a *aggregateList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*a = nil
		return nil
	}

	if trimmed[0] == '[' {
		var list []aggregate
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*a = list
		return nil
	}

	var single aggregate
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*a = aggregateList{single}
	return nil
}

type aggregate struct {
	IndividualResults []individualResult `json:"individual_results"`
}

type individualResult struct {
	MemberID ID     `json:"member_id"`
	Name     string `json:"name"`
	Totals   struct {
		GrossScores struct {
			Total GrossScore `json:"total"`
		} `json:"gross_scores"`
	} `json:"totals"`
}

// playerResults flattens every scope and aggregate into a single list
func (e resultsEvent) playerResults() []PlayerResult {
	var results []PlayerResult
	for _, scope := range e.Scopes {
		for _, agg := range scope.Aggregates {
			for _, r := range agg.IndividualResults {
				results = append(results, PlayerResult{
					MemberID:   r.MemberID,
					Name:       strings.TrimSpace(r.Name),
					GrossScore: r.Totals.GrossScores.Total,
				})
			}
		}
	}
	return results
}
