package cmd

import (
	"testing"

	"vodkaflix/internal/media"
)

func TestValidatePosition(t *testing.T) {
	movie := media.Title{ID: "414906", Name: "The Batman", Kind: media.Movie}
	show := media.Title{ID: "1396", Name: "Breaking Bad", Kind: media.Series, TotalSeasons: 5}

	tests := []struct {
		name    string
		title   media.Title
		season  int
		episode int
		wantErr bool
	}{
		{"movie without flags", movie, 0, 0, false},
		{"movie with season", movie, 1, 0, true},
		{"movie with episode", movie, 0, 3, true},
		{"series without flags", show, 0, 0, false},
		{"series valid position", show, 3, 7, false},
		{"series last season", show, 5, 1, false},
		{"season beyond total", show, 9, 1, true},
		{"negative season", show, -1, 0, true},
		{"negative episode", show, 1, -2, true},
		{"episode beyond fetched list allowed", show, 1, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePosition(tt.title, tt.season, tt.episode)
			if (err != nil) != tt.wantErr {
				t.Errorf("validatePosition() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
