package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TronJG/telegram-bot/internal/domain"
)

// File keeps the document in a JSON file. A missing file means an
// empty store; an unreadable or unparseable one is an error, so a
// truncated data file fails startup instead of silently losing data.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(ctx context.Context) ([]domain.PhoneRecord, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	phones, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", f.path, err)
	}
	return phones, nil
}

func (f *File) Save(ctx context.Context, phones []domain.PhoneRecord) error {
	data, err := encode(phones)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *File) Close() {}
