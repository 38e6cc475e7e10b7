package cube

import (
	"reflect"
	"testing"
)

func TestParseCubieSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		size    int
		want    []CubieAddress
		wantErr bool
	}{
		{"individual addresses", "1,2,3", 3, []CubieAddress{1, 2, 3}, false},
		{"a range", "1-4", 3, []CubieAddress{1, 2, 3, 4}, false},
		{"reversed range", "4-1", 3, []CubieAddress{1, 2, 3, 4}, false},
		{"mixed addresses and ranges", "1,3-5", 3, []CubieAddress{1, 3, 4, 5}, false},
		{"an alias", "TC", 3, []CubieAddress{1, 3, 7, 9}, false},
		{"unknown term", "nope", 3, nil, true},
		{"out of range address", "55", 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCubieSpec(tt.spec, tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCubieSpec(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCubieSpec(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestCubieAddressRoundTrip(t *testing.T) {
	for size := 2; size <= 4; size++ {
		max := 6 * size * size
		for addr := 1; addr <= max; addr++ {
			face, row, col := CubieToFacePos(CubieAddress(addr), size)
			back := FacePosToCubie(face, row, col, size)
			if int(back) != addr {
				t.Fatalf("size %d: CubieToFacePos/FacePosToCubie round trip failed for %d: got %d", size, addr, back)
			}
		}
	}
}

func TestGetSetCubieColor(t *testing.T) {
	c := NewCube(3)
	addr := FacePosToCubie(Front, 1, 1, 3)

	if got := c.GetCubieColor(addr); got != White {
		t.Fatalf("GetCubieColor(center of solved Front) = %v, want White", got)
	}

	c.SetCubieColor(addr, Red)
	if got := c.GetCubieColor(addr); got != Red {
		t.Fatalf("SetCubieColor did not take effect: got %v, want Red", got)
	}
}
