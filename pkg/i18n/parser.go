package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser turns translation file content into per-language key trees.
type Parser interface {
	// Parse returns a map keyed by language code. Each value is a nested
	// map of translation keys.
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser reads files with the
	// given extension. A leading dot is optional.
	SupportsFileExtension(ext string) bool
}

// YAMLParser implements Parser for YAML files.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse expects the top level of the document to be language codes.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		transMap, ok := val.(map[string]any)
		if !ok {
			return nil, errors.Join(ErrFailedToParseYAML,
				fmt.Errorf("invalid structure for language %q: expected map, got %T", lang, val))
		}
		result[lang] = transMap
	}

	if len(result) == 0 {
		return nil, errors.Join(ErrFailedToParseYAML, errors.New("no translations found"))
	}

	return result, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
