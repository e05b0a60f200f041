package toml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTaggedEmissionOfScalars(t *testing.T) {
	doc, err := ParseString("name = \"tom\"\nage = 30\npi = 3.5\nok = true\n")
	require.NoError(t, err)

	got := doc.Tagged()
	want := map[string]any{
		"name": map[string]any{"type": "string", "value": "tom"},
		"age":  map[string]any{"type": "integer", "value": "30"},
		"pi":   map[string]any{"type": "float", "value": "3.5"},
		"ok":   map[string]any{"type": "bool", "value": "true"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tagged output mismatch (-want +got):\n%s", diff)
	}
}

func TestTaggedEmissionOfArrayOfTables(t *testing.T) {
	doc, err := ParseString("[[products]]\nname = \"hammer\"\n[[products]]\nname = \"nail\"\n")
	require.NoError(t, err)

	got := doc.Tagged()
	want := map[string]any{
		"products": []any{
			map[string]any{"name": map[string]any{"type": "string", "value": "hammer"}},
			map[string]any{"name": map[string]any{"type": "string", "value": "nail"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tagged output mismatch (-want +got):\n%s", diff)
	}
}

func TestTaggedEmissionOfOffsetDateTime(t *testing.T) {
	doc, err := ParseString("ts = 1979-05-27T07:32:00Z\n")
	require.NoError(t, err)

	got := doc.Tagged()
	want := map[string]any{
		"ts": map[string]any{"type": "datetime", "value": "1979-05-27T07:32:00Z"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tagged output mismatch (-want +got):\n%s", diff)
	}
}
