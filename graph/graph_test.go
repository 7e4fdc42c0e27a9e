package graph

import (
	"errors"
	"testing"

	"github.com/sobinrajan1999/dsa/xerrors"
)

func TestKruskal(t *testing.T) {
	edges := []Edge{
		{0, 1, 4},
		{0, 2, 3},
		{1, 2, 1},
		{1, 3, 2},
		{2, 3, 4},
		{3, 4, 2},
	}
	mst, total, err := Kruskal(5, edges)
	if err != nil {
		t.Fatalf("Kruskal: %v", err)
	}
	if len(mst) != 4 {
		t.Fatalf("len(mst) = %d, want 4", len(mst))
	}
	if total != 8 {
		t.Errorf("total = %d, want 8", total)
	}
}

func TestKruskalForest(t *testing.T) {
	// 两个互不连通的子图，应得到生成森林。
	edges := []Edge{
		{0, 1, 1},
		{1, 2, 2},
		{0, 2, 3},
		{3, 4, 5},
	}
	mst, total, err := Kruskal(5, edges)
	if err != nil {
		t.Fatalf("Kruskal: %v", err)
	}
	if len(mst) != 3 {
		t.Errorf("len(mst) = %d, want 3", len(mst))
	}
	if total != 8 {
		t.Errorf("total = %d, want 8", total)
	}
}

func TestKruskalEmpty(t *testing.T) {
	mst, total, err := Kruskal(0, nil)
	if err != nil {
		t.Fatalf("Kruskal(0, nil): %v", err)
	}
	if len(mst) != 0 || total != 0 {
		t.Errorf("got %v, %d, want empty forest", mst, total)
	}
}

func TestKruskalBadEndpoint(t *testing.T) {
	_, _, err := Kruskal(2, []Edge{{0, 5, 1}})
	if !errors.Is(err, xerrors.ErrIndexOutOfRange) {
		t.Errorf("error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestHasCycle(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  bool
	}{
		{"triangle", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}, true},
		{"tree", 4, [][2]int{{0, 1}, {1, 2}, {1, 3}}, false},
		{"no edges", 3, nil, false},
		{"self loop", 2, [][2]int{{0, 0}}, true},
	}
	for _, tc := range cases {
		got, err := HasCycle(tc.n, tc.edges)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: HasCycle = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRedundantConnection(t *testing.T) {
	edge, err := RedundantConnection([][2]int{{1, 2}, {1, 3}, {2, 3}})
	if err != nil {
		t.Fatalf("RedundantConnection: %v", err)
	}
	if edge != [2]int{2, 3} {
		t.Errorf("edge = %v, want [2 3]", edge)
	}
}

func TestRedundantConnectionNone(t *testing.T) {
	_, err := RedundantConnection([][2]int{{1, 2}, {2, 3}})
	if !errors.Is(err, xerrors.ErrNoRedundantEdge) {
		t.Errorf("error = %v, want ErrNoRedundantEdge", err)
	}
}

func TestCountComponents(t *testing.T) {
	got, err := CountComponents(5, [][2]int{{0, 1}, {1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("CountComponents: %v", err)
	}
	if got != 2 {
		t.Errorf("CountComponents = %d, want 2", got)
	}

	got, err = CountComponents(4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Errorf("CountComponents with no edges = %d, want 4", got)
	}
}

func TestComponents(t *testing.T) {
	groups, err := Components(6, [][2]int{{0, 3}, {1, 4}, {4, 5}})
	if err != nil {
		t.Fatalf("Components: %v", err)
	}
	want := [][]int{{0, 3}, {1, 4, 5}, {2}}
	if len(groups) != len(want) {
		t.Fatalf("len(groups) = %d, want %d", len(groups), len(want))
	}
	for i := range want {
		if len(groups[i]) != len(want[i]) {
			t.Fatalf("group %d = %v, want %v", i, groups[i], want[i])
		}
		for j := range want[i] {
			if groups[i][j] != want[i][j] {
				t.Errorf("group %d = %v, want %v", i, groups[i], want[i])
				break
			}
		}
	}
}
