package glquad_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glquad"
	"github.com/go-theft-auto/glquad/res"
)

func TestParseSourceRoundTrip(t *testing.T) {
	src := glquad.ParseString("#shader vertex\nA\n#shader fragment\nB\n")
	assert.Equal(t, "A\n", src.Vertex)
	assert.Equal(t, "B\n", src.Fragment)
}

func TestParseSourceEmpty(t *testing.T) {
	src := glquad.ParseString("")
	assert.Equal(t, glquad.ProgramSource{}, src)
}

func TestParseSourceNeverEmitsMarkers(t *testing.T) {
	inputs := []string{
		"#shader vertex\n#shader fragment\n",
		"#shader vertex\nA\n  #shader fragment  \nB\n#shader vertex",
		"#shader\nA\n#shader geometry\nB\n",
		"x #shader vertex y\nA\n#shaderfragment\nB\n",
		"#shader fragment\r\nB\r\n#shader vertex\r\nA\r\n",
	}
	for _, in := range inputs {
		src := glquad.ParseString(in)
		assert.NotContains(t, src.Vertex, "#shader", "input %q", in)
		assert.NotContains(t, src.Fragment, "#shader", "input %q", in)
	}
}

func TestParseSourceAccumulatesRepeatedSections(t *testing.T) {
	in := "#shader vertex\nV1\nV2\n#shader fragment\nF1\n#shader vertex\nV3\n#shader fragment\nF2\n"
	src := glquad.ParseString(in)
	assert.Equal(t, "V1\nV2\nV3\n", src.Vertex)
	assert.Equal(t, "F1\nF2\n", src.Fragment)
}

func TestParseSourceDropsPreamble(t *testing.T) {
	src := glquad.ParseString("// comment\n\n#shader fragment\nB\n")
	assert.Empty(t, src.Vertex)
	assert.Equal(t, "B\n", src.Fragment)
}

func TestParseSourceUnrecognizedMarkerKeepsSelection(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		vertex   string
		fragment string
	}{
		{"after vertex", "#shader vertex\nA\n#shader geometry\nB\n", "A\nB\n", ""},
		{"after fragment", "#shader fragment\nA\n#shader compute\nB\n", "", "A\nB\n"},
		{"before any", "#shader geometry\nA\n#shader vertex\nB\n", "B\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := glquad.ParseString(tt.in)
			assert.Equal(t, tt.vertex, src.Vertex)
			assert.Equal(t, tt.fragment, src.Fragment)
		})
	}
}

func TestParseSourceSubstringMatching(t *testing.T) {
	src := glquad.ParseString("#shader main-vertex-stage\nA\n#shader (fragment)\nB\n")
	assert.Equal(t, "A\n", src.Vertex)
	assert.Equal(t, "B\n", src.Fragment)

	// vertex is checked before fragment
	src = glquad.ParseString("#shader fragment vertex\nA\n")
	assert.Equal(t, "A\n", src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestParseSourceLinesVerbatim(t *testing.T) {
	src := glquad.ParseString("#shader vertex\r\n  indented\t\r\n\nlast")
	assert.Equal(t, "  indented\t\r\n\nlast\n", src.Vertex)
}

func TestParseSourceLongLine(t *testing.T) {
	long := strings.Repeat("x", 200_000)
	src := glquad.ParseString("#shader vertex\n" + long + "\n")
	assert.Equal(t, long+"\n", src.Vertex)
}

func TestParseSourceBasicResource(t *testing.T) {
	src := glquad.ParseString(res.BasicShader)
	assert.True(t, strings.HasPrefix(src.Vertex, "#version 330 core\n"))
	assert.Contains(t, src.Vertex, "gl_Position = position;")
	assert.NotContains(t, src.Vertex, "u_Color")
	assert.Contains(t, src.Fragment, "uniform vec4 u_Color;")
	assert.NotContains(t, src.Fragment, "gl_Position")
}

func TestLoadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Basic.shader")
	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\nA\n#shader fragment\nB\n"), 0o644))

	src, err := glquad.LoadSource(path)
	require.NoError(t, err)
	assert.Equal(t, glquad.ProgramSource{Vertex: "A\n", Fragment: "B\n"}, src)
}

func TestLoadSourceMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.shader")

	src, err := glquad.LoadSource(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, glquad.ErrResourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.shader")
	assert.Equal(t, glquad.ProgramSource{}, src)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex", glquad.StageVertex.String())
	assert.Equal(t, "fragment", glquad.StageFragment.String())
	assert.Equal(t, "none", glquad.StageNone.String())
}
