package starlark

import (
	starlarkLib "go.starlark.net/starlark"
)

// executable represents a compiled Starlark script
type executable struct {
	scriptBodyBytes []byte
	program         *starlarkLib.Program
}

func newExecutable(scriptBodyBytes []byte, program *starlarkLib.Program) *executable {
	if len(scriptBodyBytes) == 0 || program == nil {
		return nil
	}

	return &executable{
		scriptBodyBytes: scriptBodyBytes,
		program:         program,
	}
}

func (e *executable) GetSource() string {
	return string(e.scriptBodyBytes)
}

func (e *executable) GetByteCode() any {
	return e.program
}

func (e *executable) GetStarlarkByteCode() *starlarkLib.Program {
	return e.program
}
