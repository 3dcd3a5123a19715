package glquad

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stage identifies a shader section in a resource and the unit compiled from it.
type Stage int

const (
	StageNone Stage = iota - 1
	StageVertex
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "none"
	}
}

// markerToken starts a section marker line, e.g. "#shader vertex".
const markerToken = "#shader"

// ProgramSource holds the two sections split out of a shader resource.
type ProgramSource struct {
	Vertex   string
	Fragment string
}

// ParseSource splits a shader resource into its vertex and fragment sections.
//
// Any line containing "#shader" is a marker. The marker selects the vertex
// section if the line contains "vertex", otherwise the fragment section if it
// contains "fragment"; an unrecognized marker leaves the selection unchanged.
// Marker lines are never copied. Other lines are appended verbatim, with a
// trailing newline, to the selected section; lines seen before any section is
// selected are dropped. A stage may be selected more than once, in which case
// its lines accumulate in order.
func ParseSource(r io.Reader) (ProgramSource, error) {
	var sections [2]strings.Builder
	current := StageNone

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			if strings.Contains(line, markerToken) {
				current = markerStage(line, current)
			} else if current != StageNone {
				sections[current].WriteString(line)
				sections[current].WriteByte('\n')
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return ProgramSource{}, err
		}
	}

	return ProgramSource{
		Vertex:   sections[StageVertex].String(),
		Fragment: sections[StageFragment].String(),
	}, nil
}

// ParseString is ParseSource over an in-memory resource.
func ParseString(s string) ProgramSource {
	// strings.Reader never fails
	src, _ := ParseSource(strings.NewReader(s))
	return src
}

// markerStage returns the stage a marker line selects, or current if the line
// names neither kind. Vertex wins when both appear.
func markerStage(line string, current Stage) Stage {
	switch {
	case strings.Contains(line, "vertex"):
		return StageVertex
	case strings.Contains(line, "fragment"):
		return StageFragment
	default:
		return current
	}
}

// LoadSource reads and splits the shader resource at path.
// An unreadable resource is reported as ErrResourceUnavailable rather than
// yielding empty sections.
func LoadSource(path string) (ProgramSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ProgramSource{}, fmt.Errorf("%w: open %q: %w", ErrResourceUnavailable, path, err)
	}
	defer f.Close()

	src, err := ParseSource(f)
	if err != nil {
		return ProgramSource{}, fmt.Errorf("%w: read %q: %w", ErrResourceUnavailable, path, err)
	}
	logger.Debug("shader resource loaded",
		"path", path,
		"vertexBytes", len(src.Vertex),
		"fragmentBytes", len(src.Fragment))
	return src, nil
}
