package core

// Logger is a narrow Printf-shaped logging interface that fortio.org/log,
// testing.T, or a no-op can satisfy without this package importing any
// concrete logging library. The renderer and loaders do not write through
// it: they call fortio.org/log directly.
type Logger interface {
	Printf(format string, args ...interface{})
}
