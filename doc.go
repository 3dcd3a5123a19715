/*
Package glquad draws a single colored quad with OpenGL, built from a
two-section shader resource.

# Overview

A shader resource is one text file holding both stages:

	#shader vertex
	#version 330 core
	layout(location = 0) in vec4 position;
	void main() { gl_Position = position; }

	#shader fragment
	#version 330 core
	layout(location = 0) out vec4 color;
	uniform vec4 u_Color;
	void main() { color = u_Color; }

ParseSource splits it into a ProgramSource, and BuildProgram compiles and
links that into a Program on a ShaderBackend. The Renderer uploads the quad,
draws it once per Frame through a Binding, and animates the red channel of
u_Color with an Oscillator.

# Quick Start

	window, _ := opengl.OpenWindow(cfg)
	defer window.Close()

	src, _ := glquad.LoadSource(cfg.ShaderPath)
	renderer, _ := glquad.NewRenderer(opengl.NewDevice(), src, cfg)
	defer renderer.Close()

	glquad.Run(window, renderer, nil)

# Resource Format

A line containing "#shader" is a section marker and is never copied into a
section. The marker selects the vertex section if the line contains "vertex",
otherwise the fragment section if it contains "fragment". Matching is by
substring, not by token. Markers naming neither leave the current section
unchanged. Lines before the first recognized marker are dropped. A section
may be opened more than once; its lines accumulate in file order.

# Errors

	ErrResourceUnavailable  the resource could not be opened or read
	*CompileError           a stage was empty or rejected; carries Stage and Log
	*LinkError              the program failed to link, or a stage had no unit
	ErrUniformNotFound      the program has no such active uniform
	ErrProgramReleased      a nil or released program was used

BuildProgram compiles both stages before giving up, so a failed build reports
every stage's diagnostic, joined with errors.Join. Each diagnostic is also
logged through log/slog; SetVerbose enables debug output.

# Bindings

The device has a single current program, vertex array and index buffer. A
Binding owns those slots: Submit rebinds all three on every draw, and Reset
clears them.
*/
package glquad
