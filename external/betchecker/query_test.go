package betchecker

import (
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/betchecker/internal/domain/overunder"
)

func TestBuildURL(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: " https://api.betchecker.test/ "})

	tests := []struct {
		name    string
		query   overunder.Query
		want    string
		absent  []string
		present []string
	}{
		{
			name:    "player name without strict_over",
			query:   overunder.ByPlayerName("Scott Pendlebury", overunder.StatDisposals, 23.5),
			want:    "https://api.betchecker.test/search/over-under?player_name=Scott+Pendlebury&stat=disposals&threshold=23.5",
			present: []string{"player_name=Scott+Pendlebury&stat=disposals&threshold=23.5"},
			absent:  []string{"player_id", "strict_over"},
		},
		{
			name:    "player id",
			query:   overunder.ByPlayerID(12345, overunder.StatGoals, 2),
			want:    "https://api.betchecker.test/search/over-under?player_id=12345&stat=goals&threshold=2",
			present: []string{"player_id=12345"},
			absent:  []string{"player_name", "strict_over"},
		},
		{
			name:    "strict_over false is sent explicitly",
			query:   overunder.ByPlayerID(9, overunder.StatDisposals, 25).WithStrictOver(false),
			want:    "https://api.betchecker.test/search/over-under?player_id=9&stat=disposals&threshold=25&strict_over=false",
			present: []string{"strict_over=false"},
		},
		{
			name:  "strict_over true and escaped name",
			query: overunder.ByPlayerName("Jack O'Meara & Co", overunder.StatGoals, 0.5).WithStrictOver(true),
			want:  "https://api.betchecker.test/search/over-under?player_name=Jack+O%27Meara+%26+Co&stat=goals&threshold=0.5&strict_over=true",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := client.BuildURL(tc.query)
			if err != nil {
				t.Fatalf("build url: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected url:\nwant: %s\ngot:  %s", tc.want, got)
			}
			for _, item := range tc.present {
				if !strings.Contains(got, item) {
					t.Fatalf("expected %q in %s", item, got)
				}
			}
			for _, item := range tc.absent {
				if strings.Contains(got, item) {
					t.Fatalf("did not expect %q in %s", item, got)
				}
			}
		})
	}
}

func TestBuildURL_RejectsInvalidQuery(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{})
	_, err := client.BuildURL(overunder.Query{Stat: overunder.StatGoals, Threshold: 1})
	if !errors.Is(err, overunder.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{})
	if client.BaseURL() != "http://localhost:8000" {
		t.Fatalf("unexpected default base url: %s", client.BaseURL())
	}
}

func TestFormatThreshold(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		23.5:  "23.5",
		25:    "25",
		0.1:   "0.1",
		-1.25: "-1.25",
		100:   "100",
	}
	for in, want := range cases {
		if got := formatThreshold(in); got != want {
			t.Fatalf("formatThreshold(%v)=%q want %q", in, got, want)
		}
	}
}
