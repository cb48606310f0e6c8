package sections

import "testing"

func TestTemplatesCatalogIsWellFormed(t *testing.T) {
	templates := Templates()
	if len(templates) == 0 {
		t.Fatal("expected a non-empty catalog")
	}

	seen := make(map[string]bool)
	for _, tpl := range templates {
		if tpl.Key == "" || tpl.Name == "" {
			t.Fatalf("template missing key or name: %+v", tpl)
		}
		if seen[tpl.Key] {
			t.Fatalf("duplicate template key %q", tpl.Key)
		}
		seen[tpl.Key] = true
	}

	if !seen[DefaultTemplateKey] {
		t.Fatalf("catalog must contain the %q template", DefaultTemplateKey)
	}
}

func TestInstantiateBlankHasNoSections(t *testing.T) {
	instance := Instantiate(DefaultTemplateKey)
	if len(instance.Sections) != 0 {
		t.Fatalf("blank template must start empty, got %d sections", len(instance.Sections))
	}
}

func TestInstantiateLeadMagnet(t *testing.T) {
	instance := Instantiate("lead-magnet")

	if len(instance.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(instance.Sections))
	}
	if instance.Sections[0].Type != "hero" || instance.Sections[0].Variant != "centered" {
		t.Fatalf("expected centered hero first, got %s/%s", instance.Sections[0].Type, instance.Sections[0].Variant)
	}
	if instance.Sections[1].Type != "form" {
		t.Fatalf("expected form second, got %q", instance.Sections[1].Type)
	}
	if instance.Sections[0].Content["heading"] != "Get the free guide" {
		t.Fatalf("expected template heading override, got %v", instance.Sections[0].Content["heading"])
	}
}

func TestInstantiateUnknownKeyFallsBackToBlank(t *testing.T) {
	instance := Instantiate("no-such-template")
	if len(instance.Sections) != 0 {
		t.Fatalf("expected blank fallback, got %d sections", len(instance.Sections))
	}
}

func TestInstantiateYieldsIndependentSections(t *testing.T) {
	first := Instantiate("lead-magnet")
	second := Instantiate("lead-magnet")

	if first.Sections[0].ID == second.Sections[0].ID {
		t.Fatal("each instantiation must mint fresh section ids")
	}

	first.Sections[0].Content["heading"] = "changed"
	if second.Sections[0].Content["heading"] == "changed" {
		t.Fatal("instances must not share content maps")
	}
}

func TestHas(t *testing.T) {
	if !Has("saas") {
		t.Fatal("expected saas template to exist")
	}
	if Has("nope") {
		t.Fatal("unexpected template")
	}
}
