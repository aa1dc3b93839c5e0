package types

import (
	"errors"
	"testing"
)

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{"portrait", Portrait, false},
		{"landscape", Landscape, false},
		{"LANDSCAPE", Landscape, false},
		{" Portrait ", Portrait, false},
		{"", "", true},
		{"diagonal", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrientation(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ParseOrientation(%q) error = %v, want ErrInvalidArgument", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOrientation(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOrientation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPageSizeOrientation(t *testing.T) {
	tests := []struct {
		name string
		size PageSize
		want Orientation
	}{
		{"letter portrait", PageSize{Width: 612, Height: 792}, Portrait},
		{"letter landscape", PageSize{Width: 792, Height: 612}, Landscape},
		{"square is portrait", PageSize{Width: 500, Height: 500}, Portrait},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.Orientation(); got != tt.want {
				t.Errorf("Orientation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPageSizeWithOrientation(t *testing.T) {
	letter := Letter

	landscape := letter.WithOrientation(Landscape)
	if landscape.Width != 792 || landscape.Height != 612 {
		t.Errorf("WithOrientation(Landscape) = %+v, want 792x612", landscape)
	}
	if same := letter.WithOrientation(Portrait); same != letter {
		t.Errorf("WithOrientation(Portrait) = %+v, want unchanged", same)
	}
	if roundTrip := landscape.WithOrientation(Portrait); roundTrip != letter {
		t.Errorf("round trip = %+v, want %+v", roundTrip, letter)
	}
}
