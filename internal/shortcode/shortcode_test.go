package shortcode

import (
	"strings"
	"testing"
)

func TestParseExtractsFormShortcodes(t *testing.T) {
	content := `<p>Before</p>[form id="3"]<p>After</p>`

	result := Parse(content)
	if len(result.Components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(result.Components))
	}

	component := result.Components[0]
	if component.Type != "form" || component.ID != 3 {
		t.Fatalf("unexpected component: %+v", component)
	}
	if !strings.Contains(result.ParsedContent, component.Placeholder) {
		t.Fatal("placeholder must appear in parsed content")
	}
	if strings.Contains(result.ParsedContent, `[form`) {
		t.Fatal("shortcode must be removed from parsed content")
	}
}

func TestParseHandlesMultipleAndRepeatedReferences(t *testing.T) {
	content := `[form id="1"] middle [form id="2"] end [form id="1"]`

	result := Parse(content)
	if len(result.Components) != 3 {
		t.Fatalf("expected 3 components, got %d", len(result.Components))
	}

	placeholders := make(map[string]bool)
	for _, c := range result.Components {
		if placeholders[c.Placeholder] {
			t.Fatalf("placeholder %q reused", c.Placeholder)
		}
		placeholders[c.Placeholder] = true
	}
}

func TestParseWithoutShortcodesIsIdentity(t *testing.T) {
	content := "<h1>Plain content</h1>"

	result := Parse(content)
	if result.ParsedContent != content {
		t.Fatalf("expected identity, got %q", result.ParsedContent)
	}
	if len(result.Components) != 0 {
		t.Fatalf("expected no components, got %d", len(result.Components))
	}
}

func TestParseIsIdempotent(t *testing.T) {
	content := `intro [form id="7"] outro`

	first := Parse(content)
	second := Parse(first.ParsedContent)

	if len(second.Components) != 0 {
		t.Fatalf("reparsing produced %d new components", len(second.Components))
	}
	if second.ParsedContent != first.ParsedContent {
		t.Fatal("reparsing must leave content unchanged")
	}
}

func TestParseIgnoresMalformedShortcodes(t *testing.T) {
	for _, content := range []string{
		`[form id=3]`,
		`[form id="abc"]`,
		`[form]`,
		`[widget id="1"]`,
	} {
		result := Parse(content)
		if len(result.Components) != 0 {
			t.Fatalf("%q: expected no components, got %d", content, len(result.Components))
		}
		if result.ParsedContent != content {
			t.Fatalf("%q: content must pass through unchanged", content)
		}
	}
}

func TestParseSkipsOverflowingIDAndKeepsScanning(t *testing.T) {
	content := `a [form id="99999999999999999999"] b [form id="2"] c`

	result := Parse(content)
	if len(result.Components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(result.Components))
	}
	if result.Components[0].ID != 2 {
		t.Fatalf("expected id 2, got %d", result.Components[0].ID)
	}
	if !strings.Contains(result.ParsedContent, `[form id="99999999999999999999"]`) {
		t.Fatal("overflowing shortcode must remain as literal text")
	}
	if strings.Contains(result.ParsedContent, `[form id="2"]`) {
		t.Fatal("valid shortcode after the bad one must still be extracted")
	}
}

func TestSplitInterleavesLiteralsAndPlaceholders(t *testing.T) {
	result := Parse(`a [form id="1"] b [form id="2"]`)

	fragments := Split(result.ParsedContent)
	if len(fragments) != 4 {
		t.Fatalf("expected 4 fragments, got %d", len(fragments))
	}
	if fragments[0].Literal != "a " || fragments[0].Placeholder != "" {
		t.Fatalf("unexpected first fragment: %+v", fragments[0])
	}
	if fragments[1].Placeholder != result.Components[0].Placeholder {
		t.Fatalf("expected first placeholder slot, got %+v", fragments[1])
	}
	if fragments[3].Placeholder != result.Components[1].Placeholder {
		t.Fatalf("expected trailing placeholder slot, got %+v", fragments[3])
	}
}

func TestSplitPlainContent(t *testing.T) {
	fragments := Split("no placeholders here")
	if len(fragments) != 1 || fragments[0].Literal != "no placeholders here" {
		t.Fatalf("unexpected fragments: %+v", fragments)
	}
}
