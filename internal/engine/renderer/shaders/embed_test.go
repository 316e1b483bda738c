package shaders

import (
	"strings"
	"testing"
)

func TestSourcesEmbedded(t *testing.T) {
	sources := map[string]string{
		"base.vert":  BaseVertexShader,
		"base.frag":  BaseFragmentShader,
		"shell.vert": ShellVertexShader,
		"shell.frag": ShellFragmentShader,
		"fin.vert":   FinVertexShader,
		"fin.frag":   FinFragmentShader,
	}
	for name, src := range sources {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s: missing version directive", name)
		}
		if !strings.Contains(src, "void main()") {
			t.Errorf("%s: missing main", name)
		}
	}
}

func TestWindUniformsDeclared(t *testing.T) {
	for name, src := range map[string]string{"shell.vert": ShellVertexShader, "fin.vert": FinVertexShader} {
		for _, u := range []string{"uWindEnabled", "uWindForce", "uTime"} {
			if !strings.Contains(src, u) {
				t.Errorf("%s: missing uniform %s", name, u)
			}
		}
	}
}
