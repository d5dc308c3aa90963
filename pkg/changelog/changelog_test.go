//go:build unit

package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc := "v0.2.0 (in development)\n" +
		"-----------------------\n" +
		"- Feature B\n" +
		"\n" +
		"v0.1.0 (2023-05-01)\n" +
		"-------------------\n" +
		"Initial release\n"

	chlog, err := Parse(doc)
	require.NoError(t, err)

	assert.Empty(t, chlog.Intro)
	require.Len(t, chlog.Sections, 2)
	assert.Equal(t, Section{Version: "v0.2.0", Date: "in development", Content: "- Feature B"}, chlog.Sections[0])
	assert.Equal(t, Section{Version: "v0.1.0", Date: "2023-05-01", Content: "Initial release"}, chlog.Sections[1])
}

func TestParse_Intro(t *testing.T) {
	doc := "Changelog\n" +
		"=========\n" +
		"\n" +
		"v1.0.0 (2024-01-15)\n" +
		"-------------------\n" +
		"- Stable API\n"

	chlog, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, "Changelog\n=========\n\n", chlog.Intro)
	require.Len(t, chlog.Sections, 1)
	assert.Equal(t, "v1.0.0", chlog.Sections[0].Version)
	assert.Equal(t, "- Stable API", chlog.Sections[0].Content)
}

func TestParse_Empty(t *testing.T) {
	chlog, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, chlog.Intro)
	assert.Empty(t, chlog.Sections)
}

func TestParse_HeaderCaseInsensitive(t *testing.T) {
	doc := "v0.1.0 (In Development)\n---\n"

	chlog, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, chlog.Sections, 1)
	assert.Equal(t, "In Development", chlog.Sections[0].Date)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected error
	}{
		{name: "begins with hrule", doc: "----\ntext\n", expected: ErrBeginsWithRule},
		{name: "bad header", doc: "not a header\n----\n", expected: ErrBadSectionHeader},
		{name: "bad date", doc: "v1.0.0 (someday)\n----\n", expected: ErrBadSectionHeader},
		{name: "no headers", doc: "just some text\nwithout any rule\n", expected: ErrMissingHeaders},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	chlog := &Changelog{
		Sections: []Section{
			{Version: "v0.2.0", Date: "in development", Content: "- Feature B"},
			{Version: "v0.1.0", Date: "2023-05-01", Content: "Initial release"},
		},
	}

	reparsed, err := Parse(chlog.String())
	require.NoError(t, err)
	assert.Equal(t, chlog, reparsed)
}

func TestString_RoundTripWithIntro(t *testing.T) {
	chlog := &Changelog{
		Intro: "Changelog\n=========\n\n",
		Sections: []Section{
			{Version: "v1.1.0", Date: "in development"},
			{Version: "v1.0.0", Date: "2024-01-15", Content: "- First\n- Second"},
		},
	}

	reparsed, err := Parse(chlog.String())
	require.NoError(t, err)
	assert.Equal(t, chlog, reparsed)
}

func TestString_WideSeparatorForMultiParagraphSections(t *testing.T) {
	chlog := &Changelog{
		Sections: []Section{
			{Version: "v0.2.0", Date: "2024-02-01", Content: "First paragraph\n\nSecond paragraph"},
			{Version: "v0.1.0", Date: "2024-01-01", Content: "Initial release"},
		},
	}

	out := chlog.String()
	assert.Contains(t, out, "Second paragraph\n\n\nv0.1.0")

	reparsed, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, chlog, reparsed)
}

func TestString_EmptyContentSection(t *testing.T) {
	chlog := &Changelog{
		Sections: []Section{{Version: "v0.1.0", Date: "in development"}},
	}

	expected := "v0.1.0 (in development)\n" + strings.Repeat("-", 23) + "\n"
	assert.Equal(t, expected, chlog.String())
}

func TestSection_String(t *testing.T) {
	sect := Section{Version: "v1.0.0", Date: "2024-01-15", Content: "- Done"}
	assert.Equal(t, "v1.0.0 (2024-01-15)\n-------------------\n- Done", sect.String())
}
