package loader

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-eventsite/pkg/content"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("content loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("content loader: fs is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, &content.LoadError{Path: name, StatusCode: statusFor(err), Err: err}
	}
	return data, nil
}
