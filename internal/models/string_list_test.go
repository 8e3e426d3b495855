package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want StringList
	}{
		{"nil", nil, StringList{}},
		{"json text", `["a","b"]`, StringList{"a", "b"}},
		{"json bytes", []byte(`["a", " b ", ""]`), StringList{"a", " b "}},
		{"json with non strings", `["a", 1, null, {"x":1}, "b"]`, StringList{"a", "b"}},
		{"double encoded", `"[\"a\",\"b\"]"`, StringList{"a", "b"}},
		{"postgres literal", `{"Trilha",Praia}`, StringList{"Trilha", "Praia"}},
		{"comma separated", "Português, Inglês ,", StringList{"Português", "Inglês"}},
		{"single plain value", "https://cdn.example/a.webp", StringList{"https://cdn.example/a.webp"}},
		{"native array", []any{"x", 2, "y"}, StringList{"x", "y"}},
		{"string slice", []string{" x ", "", "  "}, StringList{" x "}},
		{"empty", "", StringList{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var l StringList
			require.NoError(t, l.Scan(tc.in))
			assert.Equal(t, tc.want, l)
		})
	}
}

func TestStringListScanRejectsUnknownType(t *testing.T) {
	var l StringList
	assert.Error(t, l.Scan(42))
}

func TestStringListRoundTrip(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	var back StringList
	require.NoError(t, back.Scan(v))
	assert.Equal(t, StringList{"a", "b"}, back)
}

func TestStringListRoundTripKeepsElementsVerbatim(t *testing.T) {
	v, err := StringList{" a", "", "b ", "   "}.Value()
	require.NoError(t, err)

	var back StringList
	require.NoError(t, back.Scan(v))
	assert.Equal(t, StringList{" a", "b "}, back)

	var decoded StringList
	require.NoError(t, json.Unmarshal([]byte(`[" a", "", "b "]`), &decoded))
	assert.Equal(t, StringList{" a", "b "}, decoded)
}

func TestStringListNilEncodesAsEmptyArray(t *testing.T) {
	var l StringList

	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	b, err := json.Marshal(struct {
		Imagens StringList `json:"imagens"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"imagens":[]}`, string(b))
}

func TestStringListUnmarshalJSONAcceptsLooseInput(t *testing.T) {
	var in struct {
		Images StringList `json:"images"`
		Tags   StringList `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"images":["a",3,"b"],"tags":"x, y"}`), &in))

	assert.Equal(t, StringList{"a", "b"}, in.Images)
	assert.Equal(t, StringList{"x", "y"}, in.Tags)
}
