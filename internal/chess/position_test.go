package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name    string
		want    Position
		wantErr bool
	}{
		{"a8", Position{File: 0, Row: 0}, false},
		{"h1", Position{File: 7, Row: 7}, false},
		{"E2", Position{File: 4, Row: 6}, false},
		{"e2", Position{File: 4, Row: 6}, false},
		{"d5", Position{File: 3, Row: 3}, false},
		{"e9", Position{}, true},
		{"j2", Position{}, true},
		{"e", Position{}, true},
		{"e22", Position{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePosition(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePosition(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("error = %v, want ErrInvalidSquare", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePosition(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPosition_Name(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for file := 0; file < BoardSize; file++ {
			p := Pos(file, row)
			back, err := ParsePosition(p.Name())
			if err != nil || back != p {
				t.Errorf("ParsePosition(%q) = %v, %v; want %v", p.Name(), back, err, p)
			}
		}
	}
	if got := Pos(8, 0).Name(); got == "i8" {
		t.Errorf("off-board Name() = %q, should not look like a square", got)
	}
}

func TestColour(t *testing.T) {
	if Light.Opposite() != Dark || Dark.Opposite() != Light {
		t.Error("Opposite() is not symmetric")
	}
	if Light.HomeRow() != 7 || Dark.HomeRow() != 0 {
		t.Errorf("HomeRow() = %d/%d, want 7/0", Light.HomeRow(), Dark.HomeRow())
	}
	if Light.PromotionRow() != 0 || Dark.PromotionRow() != 7 {
		t.Errorf("PromotionRow() = %d/%d, want 0/7", Light.PromotionRow(), Dark.PromotionRow())
	}
}
