package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/seqmatch/pkg/errors"
	"github.com/arthur-debert/seqmatch/pkg/logging"
)

// Value document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatXML  = "xml"
)

// DetectFormat maps a file extension to a document format.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".xml":
		return FormatXML, nil
	}
	return "", errors.Newf(errors.ErrValueLoad, "cannot infer format from %q; pass one explicitly", filepath.Base(path))
}

// LoadValue reads a value document. An empty format is inferred from the
// file extension.
func LoadValue(path, format string) (any, error) {
	logger := logging.GetLogger("loader")

	if format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrValueLoad, "failed to read value document %s", path)
	}

	logger.Debug().Str("path", path).Str("format", format).Int("bytes", len(data)).Msg("loading value document")
	return ParseValue(data, format)
}

// ParseValue decodes a value document from raw bytes.
func ParseValue(data []byte, format string) (any, error) {
	switch format {
	case FormatJSON:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(err, errors.ErrValueParse, "invalid JSON document")
		}
		return v, nil

	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(err, errors.ErrValueParse, "invalid YAML document")
		}
		return v, nil

	case FormatTOML:
		var v map[string]any
		if err := gotoml.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(err, errors.ErrValueParse, "invalid TOML document")
		}
		return v, nil

	case FormatXML:
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(data); err != nil {
			return nil, errors.Wrap(err, errors.ErrValueParse, "invalid XML document")
		}
		root := doc.Root()
		if root == nil {
			return nil, errors.New(errors.ErrValueParse, "XML document has no root element")
		}
		return elementValue(root), nil
	}
	return nil, errors.Newf(errors.ErrValueLoad, "unsupported value format %q", format)
}

// elementValue converts an XML element into a generic map: tag name,
// attributes, and an ordered children sequence mixing text runs and
// nested elements.
func elementValue(el *etree.Element) map[string]any {
	attrs := make(map[string]any, len(el.Attr))
	for _, a := range el.Attr {
		attrs[a.Key] = a.Value
	}

	var children []any
	for _, child := range el.Child {
		switch c := child.(type) {
		case *etree.Element:
			children = append(children, elementValue(c))
		case *etree.CharData:
			if text := strings.TrimSpace(c.Data); text != "" {
				children = append(children, text)
			}
		}
	}

	return map[string]any{
		"tag":      el.Tag,
		"attrs":    attrs,
		"children": children,
	}
}
