package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/goliatone/go-eventsite/pkg/content"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("content loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, &content.LoadError{Path: path, StatusCode: statusFor(err), Err: err}
	}
	return data, nil
}
