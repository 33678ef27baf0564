package script

import "io"

// Compiler validates lesson script source and turns it into ExecutableContent.
// The reader is consumed and closed by Compile.
type Compiler interface {
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}
