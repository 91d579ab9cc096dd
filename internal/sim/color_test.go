package sim

import (
	"math"
	"testing"
)

// almostEq compares floats with a tolerance suited to single-step
// arithmetic.
func almostEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewColorClamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    Color
	}{
		{"in range", 10, 20, 30, Color{10, 20, 30}},
		{"negative channels", -5, -200, 0, Color{0, 0, 0}},
		{"overflow channels", 300, 256, 1000, Color{255, 255, 255}},
		{"mixed", -1, 128, 999, Color{0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewColor(tt.r, tt.g, tt.b)
			if got != tt.want {
				t.Errorf("NewColor(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestMixSymmetric(t *testing.T) {
	pairs := []struct {
		name string
		a, b Color
	}{
		{"red and blue", Color{255, 0, 0}, Color{0, 0, 255}},
		{"odd channels", Color{3, 5, 7}, Color{10, 20, 30}},
		{"white and black", Color{255, 255, 255}, Color{0, 0, 0}},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			if Mix(tt.a, tt.b) != Mix(tt.b, tt.a) {
				t.Errorf("Mix(%v, %v) != Mix(%v, %v)", tt.a, tt.b, tt.b, tt.a)
			}
		})
	}
}

func TestMixIdempotent(t *testing.T) {
	for _, c := range []Color{{0, 0, 0}, {255, 255, 255}, {13, 77, 200}} {
		if got := Mix(c, c); got != c {
			t.Errorf("Mix(%v, %v) = %v, want unchanged", c, c, got)
		}
	}
}

func TestMixTruncates(t *testing.T) {
	got := Mix(Color{255, 0, 0}, Color{0, 0, 255})
	want := Color{127, 0, 127}
	if got != want {
		t.Errorf("Mix(red, blue) = %v, want %v", got, want)
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{"black", Color{0, 0, 0}, 0},
		{"white", Color{255, 255, 255}, 1},
		{"pure red", Color{255, 0, 0}, 1.0 / 3},
		{"mid gray", Color{127, 127, 127}, 127.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Brightness(); !almostEq(got, tt.want) {
				t.Errorf("Brightness(%v) = %f, want %f", tt.c, got, tt.want)
			}
		})
	}
}

func TestSaturation(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{"black", Color{0, 0, 0}, 0},
		{"gray", Color{128, 128, 128}, 0},
		{"pure red", Color{255, 0, 0}, 1},
		{"muted", Color{200, 100, 50}, 150.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Saturation(); !almostEq(got, tt.want) {
				t.Errorf("Saturation(%v) = %f, want %f", tt.c, got, tt.want)
			}
		})
	}
}

func TestHue(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{"red", Color{255, 0, 0}, 0},
		{"yellow", Color{255, 255, 0}, 60},
		{"green", Color{0, 255, 0}, 120},
		{"cyan", Color{0, 255, 255}, 180},
		{"blue", Color{0, 0, 255}, 240},
		{"magenta", Color{255, 0, 255}, 300},
		{"achromatic", Color{90, 90, 90}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hue(); !almostEq(got, tt.want) {
				t.Errorf("Hue(%v) = %f, want %f", tt.c, got, tt.want)
			}
		})
	}
}

func TestNearWhite(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want bool
	}{
		{"pure white", Color{255, 255, 255}, true},
		{"just above threshold", Color{201, 201, 201}, true},
		{"one channel at threshold", Color{200, 255, 255}, false},
		{"vivid", Color{255, 30, 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.NearWhite(); got != tt.want {
				t.Errorf("NearWhite(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestQualityBuckets(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{"near-white is worthless", Color{220, 230, 240}, 0},
		{"gray gets the floor", Color{128, 128, 128}, 0.1},
		{"faintly tinted gets the floor", Color{120, 125, 122}, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Quality(); !almostEq(got, tt.want) {
				t.Errorf("Quality(%v) = %f, want %f", tt.c, got, tt.want)
			}
		})
	}
}

func TestQualityFormula(t *testing.T) {
	// Pure red: brightness 1/3, saturation 1, balance 0.
	c := Color{255, 0, 0}
	want := (1.0 / 3) * 1 * 0.7
	if got := c.Quality(); !almostEq(got, want) {
		t.Errorf("Quality(pure red) = %f, want %f", got, want)
	}
}

func TestQualityStaysInBounds(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				c := NewColor(r, g, b)
				q := c.Quality()
				if q < 0 || q > 1 {
					t.Fatalf("Quality(%v) = %f, out of [0, 1]", c, q)
				}
			}
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{255, 0, 0}, "#ff0000"},
		{Color{0, 10, 171}, "#000aab"},
		{Color{255, 255, 255}, "#ffffff"},
	}

	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}
