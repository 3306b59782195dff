package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter defines how translations are loaded.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every file under dir in fsys that parser supports.
// Works with embed.FS as well as os.DirFS. Later files override keys of
// earlier ones for the same language at the top level.
type FSAdapter struct {
	fsys   fs.FS
	dir    string
	parser Parser
}

// NewFSAdapter creates an adapter reading dir from fsys. Use "." for the root.
func NewFSAdapter(fsys fs.FS, dir string, parser Parser) *FSAdapter {
	return &FSAdapter{fsys: fsys, dir: dir, parser: parser}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}
	if a.fsys == nil || a.parser == nil {
		return nil, errors.Join(ErrFailedToReadDirectory, errors.New("filesystem or parser is nil"))
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	result := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		parsed, err := a.parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		for lang, trans := range parsed {
			if existing, ok := result[lang]; ok {
				maps.Copy(existing, trans)
				continue
			}
			result[lang] = trans
		}
	}

	return result, nil
}
