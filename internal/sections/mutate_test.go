package sections

import (
	"reflect"
	"testing"

	"launchkit-backend/internal/models"
)

func buildList(types ...string) []models.Section {
	list := make([]models.Section, 0, len(types))
	for _, t := range types {
		list = append(list, New(t, ""))
	}
	return list
}

func ids(list []models.Section) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

func TestAddAppendsSection(t *testing.T) {
	list := buildList("hero")
	out := Add(list, "cta", "banner")

	if len(out) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out))
	}
	if out[1].Type != "cta" {
		t.Fatalf("expected cta section appended, got %q", out[1].Type)
	}
	if len(list) != 1 {
		t.Fatalf("input list was mutated, len=%d", len(list))
	}
}

func TestMoveSwapsNeighbours(t *testing.T) {
	list := buildList("hero", "features", "cta")

	out := Move(list, 1, DirectionUp)
	if out[0].Type != "features" || out[1].Type != "hero" {
		t.Fatalf("expected features/hero after move up, got %s/%s", out[0].Type, out[1].Type)
	}

	out = Move(list, 1, DirectionDown)
	if out[1].Type != "cta" || out[2].Type != "features" {
		t.Fatalf("expected cta/features after move down, got %s/%s", out[1].Type, out[2].Type)
	}
}

func TestMoveBoundariesAreNoOps(t *testing.T) {
	list := buildList("hero", "features", "cta")

	cases := []struct {
		name      string
		index     int
		direction string
	}{
		{"first up", 0, DirectionUp},
		{"last down", 2, DirectionDown},
		{"negative index", -1, DirectionUp},
		{"index past end", 3, DirectionDown},
		{"unknown direction", 1, "sideways"},
	}

	for _, tc := range cases {
		out := Move(list, tc.index, tc.direction)
		if !reflect.DeepEqual(ids(out), ids(list)) {
			t.Fatalf("%s: expected no-op, order changed to %v", tc.name, ids(out))
		}
	}
}

func TestDuplicateInsertsCloneAfterSource(t *testing.T) {
	list := buildList("hero", "features", "cta")

	out := Duplicate(list, list[1].ID)
	if len(out) != 4 {
		t.Fatalf("expected 4 sections after duplicate, got %d", len(out))
	}
	if out[2].Type != "features" {
		t.Fatalf("expected clone directly after source, got %q", out[2].Type)
	}
	if out[2].ID == out[1].ID {
		t.Fatal("clone must carry a fresh id")
	}
	if !reflect.DeepEqual(out[2].Content, out[1].Content) {
		t.Fatal("clone content must match source")
	}
}

func TestDuplicateUnknownIDIsNoOp(t *testing.T) {
	list := buildList("hero")
	out := Duplicate(list, "missing")
	if len(out) != 1 {
		t.Fatalf("expected unchanged list, got %d sections", len(out))
	}
}

func TestDuplicateCloneIsIndependent(t *testing.T) {
	list := buildList("hero")
	out := Duplicate(list, list[0].ID)

	out[1].Content["heading"] = "changed"
	if out[0].Content["heading"] == "changed" {
		t.Fatal("mutating the clone must not affect the source")
	}
}

func TestDeleteRemovesByID(t *testing.T) {
	list := buildList("hero", "features", "cta")

	out := Delete(list, list[1].ID)
	if len(out) != 2 {
		t.Fatalf("expected 2 sections after delete, got %d", len(out))
	}
	if out[0].Type != "hero" || out[1].Type != "cta" {
		t.Fatalf("unexpected order after delete: %s/%s", out[0].Type, out[1].Type)
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	list := buildList("hero", "cta")
	out := Delete(list, "missing")
	if !reflect.DeepEqual(ids(out), ids(list)) {
		t.Fatal("expected unchanged list for unknown id")
	}
}

func TestReorderMovesAcrossList(t *testing.T) {
	list := buildList("hero", "features", "pricing", "cta")

	out := Reorder(list, 0, 2)
	got := []string{out[0].Type, out[1].Type, out[2].Type, out[3].Type}
	want := []string{"features", "pricing", "hero", "cta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	out = Reorder(list, 3, 0)
	if out[0].Type != "cta" || out[1].Type != "hero" {
		t.Fatalf("expected cta first after reorder, got %s/%s", out[0].Type, out[1].Type)
	}
}

func TestReorderInvalidOrIdenticalIndexIsNoOp(t *testing.T) {
	list := buildList("hero", "features", "cta")

	for _, tc := range [][2]int{{1, 1}, {-1, 2}, {0, 3}, {5, 0}} {
		out := Reorder(list, tc[0], tc[1])
		if !reflect.DeepEqual(ids(out), ids(list)) {
			t.Fatalf("Reorder(%d, %d): expected no-op", tc[0], tc[1])
		}
	}
}
