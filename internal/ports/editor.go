package ports

import (
	"context"
	"os/exec"
)

// EditorOpener opens files in the user's external editor
type EditorOpener interface {
	// OpenFile opens path in the user's preferred editor and waits for it to close.
	// It uses $EDITOR, then $VISUAL, falling back to common editors.
	OpenFile(ctx context.Context, path string) error

	// Command returns an exec.Cmd for opening path without running it
	Command(ctx context.Context, path string) (*exec.Cmd, error)
}
