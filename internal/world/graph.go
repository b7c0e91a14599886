package world

import (
	"cmp"
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmesh/internal/geom"
	"github.com/samdwyer/dungeonmesh/internal/graph"
	"github.com/samdwyer/dungeonmesh/internal/telemetry"
)

// SelectMainRooms marks the count largest rooms by area as main rooms.
// count is clamped to the number of rooms. Any previous graph and paths
// are discarded.
func (d *Dungeon) SelectMainRooms(count int) {
	count = max(0, min(count, len(d.Rooms)))

	order := make([]int, len(d.Rooms))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(d.Rooms[a].Area(), d.Rooms[b].Area())
	})

	d.MainRooms = slices.Clone(order[len(order)-count:])
	d.main = make([]bool, len(d.Rooms))
	for _, i := range d.MainRooms {
		d.main[i] = true
	}
	d.resetGraph()
}

// BuildGraph triangulates the main room centers, extracts the minimum
// spanning tree and adds up to extraPaths random Delaunay edges that are
// not in the tree. The result is stored in Layout.
func (d *Dungeon) BuildGraph(ctx context.Context, extraPaths int) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.build_graph")
	defer span.End()

	d.resetGraph()

	points := make([]geom.Vector2, len(d.MainRooms))
	for i, room := range d.MainRooms {
		points[i] = d.Rooms[room].Center()
	}

	tri := graph.Delaunay(points)
	mst := graph.MinimumSpanningTree(len(points), tri.Edges)
	extra := graph.PickExtra(d.rng, graph.Difference(tri.Edges, mst), extraPaths)

	d.Triangles = make([]graph.Triangle, len(tri.Triangles))
	for i, t := range tri.Triangles {
		d.Triangles[i] = graph.Triangle{I: d.MainRooms[t.I], J: d.MainRooms[t.J], K: d.MainRooms[t.K]}
	}
	d.Delaunay = d.toRoomEdges(tri.Edges)
	d.MST = d.toRoomEdges(mst)
	d.Layout = append(slices.Clone(d.MST), d.toRoomEdges(extra)...)

	span.SetAttributes(
		attribute.Int("graph.main_rooms", len(d.MainRooms)),
		attribute.Int("graph.triangles", len(d.Triangles)),
		attribute.Int("graph.delaunay_edges", len(d.Delaunay)),
		attribute.Int("graph.mst_edges", len(d.MST)),
		attribute.Int("graph.extra_edges", len(extra)),
	)
}

// toRoomEdges maps edges over main room positions to edges over room
// indices.
func (d *Dungeon) toRoomEdges(edges []graph.Edge) []graph.Edge {
	out := make([]graph.Edge, len(edges))
	for i, e := range edges {
		out[i] = graph.NewEdge(d.MainRooms[e.A], d.MainRooms[e.B], e.Weight)
	}
	return out
}
