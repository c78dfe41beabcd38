package prompt

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ConfirmOverwrite asks before replacing an existing file. It returns nil
// when path does not exist or the user agrees, ErrDeclined when they refuse.
func ConfirmOverwrite(ctx context.Context, driver Driver, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("prompt: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("prompt: %s is a directory", path)
	}

	ok, err := driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("%s already exists. Overwrite?", path),
		Help:    "Pass --force to skip this question.",
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}
