package sections

import (
	"reflect"
	"testing"
)

func TestNewNormalisesTypeAndVariant(t *testing.T) {
	section := New("  HERO  ", "CENTERED")
	if section.Type != "hero" {
		t.Fatalf("expected hero, got %q", section.Type)
	}
	if section.Variant != "centered" {
		t.Fatalf("expected centered variant, got %q", section.Variant)
	}
	if section.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestNewUnknownTypeFallsBack(t *testing.T) {
	section := New("carousel-of-doom", "")
	if section.Type != "html" {
		t.Fatalf("expected html fallback, got %q", section.Type)
	}
}

func TestNewUnknownVariantUsesFirst(t *testing.T) {
	section := New("hero", "sideways")
	if section.Variant != "centered" {
		t.Fatalf("expected first variant fallback, got %q", section.Variant)
	}
}

func TestNewPopulatesContentAndStyles(t *testing.T) {
	section := New("hero", "")
	if section.Content["heading"] == "" {
		t.Fatal("expected default heading")
	}
	if section.Styles["padding"] == "" {
		t.Fatal("expected default padding")
	}
}

func TestCloneIsDeepAndFresh(t *testing.T) {
	source := New("features", "grid")
	clone := Clone(source)

	if clone.ID == source.ID {
		t.Fatal("clone must have a new id")
	}
	if !reflect.DeepEqual(clone.Content, source.Content) {
		t.Fatal("clone content must equal source")
	}

	items := clone.Content["items"].([]interface{})
	items[0].(map[string]interface{})["title"] = "changed"

	sourceItems := source.Content["items"].([]interface{})
	if sourceItems[0].(map[string]interface{})["title"] == "changed" {
		t.Fatal("nested content must not be shared with the source")
	}
}
