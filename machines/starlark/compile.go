package starlark

import (
	"fmt"
	"maps"

	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// fileOptions enables the dialect the lesson scripts are written in: top level
// loops and ifs, while loops, and reassignment of globals injected at eval time.
func fileOptions() *syntax.FileOptions {
	return &syntax.FileOptions{
		GlobalReassign:  true,
		TopLevelControl: true,
		While:           true,
	}
}

// compile parses and compiles the script content into a Starlark program
func compile(
	name string,
	scriptBodyBytes []byte,
	opts *syntax.FileOptions,
	globals starlarkLib.StringDict,
) (*starlarkLib.Program, error) {
	if scriptBodyBytes == nil {
		return nil, ErrContentNil
	}

	if opts == nil {
		opts = &syntax.FileOptions{}
	}

	predeclared := standardModules()
	maps.Copy(predeclared, globals)

	f, err := opts.Parse(name, scriptBodyBytes, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	prog, err := starlarkLib.FileProgram(f, predeclared.Has)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	return prog, nil
}

// compileWithEmptyGlobals compiles a script that refers to globals which are only
// bound at eval time, such as ctx. They are predeclared as None for name resolution.
func compileWithEmptyGlobals(
	name string,
	scriptBodyBytes []byte,
	globals []string,
) (*starlarkLib.Program, error) {
	stdModules := standardModules()

	predeclared := make(starlarkLib.StringDict, len(globals))
	for _, g := range globals {
		if stdModules.Has(g) {
			continue
		}
		predeclared[g] = starlarkLib.None
	}

	return compile(name, scriptBodyBytes, fileOptions(), predeclared)
}
