package retrospector

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func testAtlas(t *testing.T) *Atlas {
	t.Helper()
	atlas, err := NewAtlas(encodePNG(t, 64, 32), "png", 64, 32, 32, 32)
	if err != nil {
		t.Fatalf("NewAtlas = %v, want nil", err)
	}
	return atlas
}

func TestNewTileMapSize(t *testing.T) {
	atlas := testAtlas(t)

	m, err := NewTileMap(atlas, 4, 3)
	if err != nil {
		t.Fatalf("NewTileMap(4, 3) = %v, want nil", err)
	}
	if m.Columns() != 4 || m.Rows() != 3 {
		t.Errorf("map size = %dx%d, want 4x3", m.Columns(), m.Rows())
	}

	for _, size := range [][2]int{{0, 3}, {4, 0}, {-1, 3}} {
		if _, err := NewTileMap(atlas, size[0], size[1]); !errors.Is(err, ErrTileSize) {
			t.Errorf("NewTileMap(%d, %d) error = %v, want ErrTileSize", size[0], size[1], err)
		}
	}
}

func TestTileMapCellsStartEmpty(t *testing.T) {
	m, err := NewTileMap(testAtlas(t), 2, 2)
	if err != nil {
		t.Fatalf("NewTileMap = %v, want nil", err)
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			index, err := m.Tile(col, row)
			if err != nil {
				t.Fatalf("Tile(%d, %d) = %v, want nil", col, row, err)
			}
			if index != EmptyTile {
				t.Errorf("Tile(%d, %d) = %d, want EmptyTile", col, row, index)
			}
		}
	}
}

func TestTileMapSetTile(t *testing.T) {
	m, err := NewTileMap(testAtlas(t), 3, 2)
	if err != nil {
		t.Fatalf("NewTileMap = %v, want nil", err)
	}

	if err := m.SetTile(2, 1, 1); err != nil {
		t.Fatalf("SetTile(2, 1, 1) = %v, want nil", err)
	}
	if index, _ := m.Tile(2, 1); index != 1 {
		t.Errorf("Tile(2, 1) = %d, want 1", index)
	}
	if err := m.SetTile(2, 1, EmptyTile); err != nil {
		t.Fatalf("SetTile(2, 1, EmptyTile) = %v, want nil", err)
	}
	if index, _ := m.Tile(2, 1); index != EmptyTile {
		t.Errorf("Tile(2, 1) = %d, want EmptyTile", index)
	}

	tests := []struct {
		name            string
		col, row, index int
	}{
		{"cell past columns", 3, 0, 0},
		{"cell past rows", 0, 2, 0},
		{"negative cell", -1, 0, 0},
		{"index past atlas grid", 0, 0, 2}, // 64x32 atlas with 32x32 tiles has 2 tiles
		{"negative index", 0, 0, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.SetTile(tt.col, tt.row, tt.index); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("SetTile(%d, %d, %d) error = %v, want ErrOutOfBounds",
					tt.col, tt.row, tt.index, err)
			}
		})
	}

	if _, err := m.Tile(5, 5); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Tile(5, 5) error = %v, want ErrOutOfBounds", err)
	}
}

func TestTileMapFill(t *testing.T) {
	m, err := NewTileMap(testAtlas(t), 2, 2)
	if err != nil {
		t.Fatalf("NewTileMap = %v, want nil", err)
	}
	if err := m.Fill(1); err != nil {
		t.Fatalf("Fill(1) = %v, want nil", err)
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if index, _ := m.Tile(col, row); index != 1 {
				t.Errorf("Tile(%d, %d) after Fill = %d, want 1", col, row, index)
			}
		}
	}
	if err := m.Fill(7); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Fill(7) error = %v, want ErrOutOfBounds", err)
	}
}

func TestTileMapDraw(t *testing.T) {
	m, err := NewTileMap(testAtlas(t), 3, 2)
	if err != nil {
		t.Fatalf("NewTileMap = %v, want nil", err)
	}
	if err := m.SetTile(0, 0, 0); err != nil {
		t.Fatalf("SetTile = %v, want nil", err)
	}
	if err := m.SetTile(2, 1, 1); err != nil {
		t.Fatalf("SetTile = %v, want nil", err)
	}

	target := ebiten.NewImage(96, 64)
	r := NewRenderer(target, 96, 64)
	m.Draw(r, Location{DX: 0, DY: 0})

	// Empty cells draw nothing: with no target bound, only non-empty cells
	// could reach the surface, and an all-empty map must not touch it.
	empty, err := NewTileMap(testAtlas(t), 3, 2)
	if err != nil {
		t.Fatalf("NewTileMap = %v, want nil", err)
	}
	empty.Draw(NewRenderer(nil, 96, 64), Location{DX: 0, DY: 0})
}
