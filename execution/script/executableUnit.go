package script

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-pyprimer/execution/data"
	"github.com/robbyt/go-pyprimer/execution/script/loader"
	"github.com/robbyt/go-pyprimer/internal/helpers"
)

const checksumLength = 12

// ExecutableUnit is one compiled version of a lesson script together with the data
// provider that feeds it. It is compiled once and can be evaluated many times.
type ExecutableUnit struct {
	// ID identifies this unit, derived from a hash of the source when not supplied.
	ID string

	CreatedAt time.Time

	ScriptLoader loader.Loader
	Compiler     Compiler
	Content      ExecutableContent

	// DataProvider supplies the ctx global at evaluation time.
	DataProvider data.Provider

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewExecutableUnit loads the script through scriptLoader and compiles it.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	scriptLoader loader.Loader,
	compiler Compiler,
	dataProvider data.Provider,
) (*ExecutableUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, fmt.Errorf("%w: compiler is nil", ErrCompiler)
	}
	if scriptLoader == nil {
		return nil, ErrLoaderNil
	}

	reader, err := scriptLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoaderFailed, err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompiler, err)
	}

	if versionID == "" {
		versionID = helpers.ShortSHA256([]byte(exe.GetSource()), checksumLength)
	}

	if dataProvider == nil {
		dataProvider = data.NewStaticProvider(nil)
	}

	logger = logger.With("ID", versionID)
	logger.Debug("executable unit created")

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		ScriptLoader: scriptLoader,
		Compiler:     compiler,
		Content:      exe,
		DataProvider: dataProvider,
		logHandler:   handler,
		logger:       logger,
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.ScriptLoader)
}

func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.ScriptLoader
}

func (exe *ExecutableUnit) GetDataProvider() data.Provider {
	return exe.DataProvider
}
