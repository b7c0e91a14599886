package world

import (
	"context"
	"math"
	"testing"

	"github.com/samdwyer/dungeonmesh/internal/geom"
	"github.com/samdwyer/dungeonmesh/internal/graph"
)

func threeRoomDungeon() *Dungeon {
	d := newTestDungeon(1)
	d.AddRoom(geom.Vec2(0, 0), 10, 10)
	d.AddRoom(geom.Vec2(20, 0), 10, 10)
	d.AddRoom(geom.Vec2(0, 20), 10, 10)
	return d
}

func TestThreeRoomScenario(t *testing.T) {
	d := threeRoomDungeon()
	if d.Rooms[0].Intersects(&d.Rooms[1]) {
		t.Fatal("rooms 0 and 1 are 10 apart along X and must not overlap")
	}

	d.SelectMainRooms(3)
	d.BuildGraph(context.Background(), 0)

	if len(d.Triangles) != 1 {
		t.Fatalf("triangles = %d, want 1", len(d.Triangles))
	}
	if len(d.Delaunay) != 3 {
		t.Fatalf("delaunay edges = %d, want 3", len(d.Delaunay))
	}
	if len(d.MST) != 2 {
		t.Fatalf("MST edges = %d, want 2", len(d.MST))
	}

	diagonal := graph.Key{A: 1, B: 2}
	for _, e := range d.MST {
		if e.Key() == diagonal {
			t.Errorf("MST contains the diagonal %v", e)
		}
		if math.Abs(e.Weight-20) > 1e-9 {
			t.Errorf("MST edge %v, want weight 20", e)
		}
	}

	var longest graph.Edge
	for _, e := range d.Delaunay {
		if e.Weight > longest.Weight {
			longest = e
		}
	}
	if longest.Key() != diagonal || math.Abs(longest.Weight-28.2842712) > 1e-6 {
		t.Errorf("longest delaunay edge = %v, want the 1-2 diagonal of ~28.28", longest)
	}
	if len(d.Layout) != 2 {
		t.Errorf("layout = %d edges, want 2 with no extra paths", len(d.Layout))
	}
}

func TestBuildGraphExtraPaths(t *testing.T) {
	d := threeRoomDungeon()
	d.SelectMainRooms(3)
	d.BuildGraph(context.Background(), 5)

	if len(d.Layout) != 3 {
		t.Fatalf("layout = %d edges, want all 3 delaunay edges", len(d.Layout))
	}
	seen := map[graph.Key]bool{}
	for _, e := range d.Layout {
		if seen[e.Key()] {
			t.Errorf("duplicate layout edge %v", e)
		}
		seen[e.Key()] = true
	}
}

func TestSelectMainRoomsByArea(t *testing.T) {
	d := newTestDungeon(1)
	d.AddRoom(geom.Vec2(0, 0), 2, 2)   // 4
	d.AddRoom(geom.Vec2(10, 0), 5, 5)  // 25
	d.AddRoom(geom.Vec2(20, 0), 3, 3)  // 9
	d.AddRoom(geom.Vec2(30, 0), 10, 1) // 10
	d.AddRoom(geom.Vec2(40, 0), 6, 6)  // 36

	d.SelectMainRooms(2)
	if len(d.MainRooms) != 2 || d.MainRooms[0] != 1 || d.MainRooms[1] != 4 {
		t.Fatalf("MainRooms = %v, want [1 4]", d.MainRooms)
	}
	for i := range d.Rooms {
		want := i == 1 || i == 4
		if d.IsMain(i) != want {
			t.Errorf("IsMain(%d) = %v, want %v", i, d.IsMain(i), want)
		}
	}
	if got := d.SecondaryRooms(); len(got) != 3 {
		t.Errorf("SecondaryRooms = %v", got)
	}

	d.SelectMainRooms(99)
	if len(d.MainRooms) != 5 {
		t.Errorf("count should clamp to 5, got %d", len(d.MainRooms))
	}
	d.SelectMainRooms(-1)
	if len(d.MainRooms) != 0 {
		t.Errorf("negative count should select nothing, got %d", len(d.MainRooms))
	}
}

func TestBuildGraphTooFewMainRooms(t *testing.T) {
	d := threeRoomDungeon()
	d.SelectMainRooms(2)
	d.BuildGraph(context.Background(), 3)
	if len(d.Delaunay) != 0 || len(d.MST) != 0 || len(d.Layout) != 0 {
		t.Errorf("two main rooms should give an empty graph, got %d/%d/%d",
			len(d.Delaunay), len(d.MST), len(d.Layout))
	}
}

func TestBuildGraphGeneratedDungeon(t *testing.T) {
	d := newTestDungeon(77)
	generate(t, d)

	if len(d.MST) != len(d.MainRooms)-1 {
		t.Fatalf("MST has %d edges for %d main rooms", len(d.MST), len(d.MainRooms))
	}
	ds := graph.NewDisjointSet(len(d.Rooms))
	for _, e := range d.MST {
		if !d.IsMain(e.A) || !d.IsMain(e.B) || e.A == e.B {
			t.Errorf("MST edge %v does not join two distinct main rooms", e)
		}
		if !ds.Union(e.A, e.B) {
			t.Errorf("MST edge %v closes a cycle", e)
		}
	}
	if extra := len(d.Layout) - len(d.MST); extra < 0 || extra > 2 {
		t.Errorf("layout adds %d extra edges, want at most 2", extra)
	}
}
