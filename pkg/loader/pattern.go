package loader

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/seqmatch/pkg/errors"
	"github.com/arthur-debert/seqmatch/pkg/logging"
	"github.com/arthur-debert/seqmatch/pkg/pattern"
	"github.com/arthur-debert/seqmatch/pkg/values"
)

// The pattern DSL is YAML. Scalars are literals; a single-key map selects
// a combinator:
//
//	seq:             # ordered sub-patterns
//	  - 1
//	  - capture: head
//	  - repeat:
//	      of: {any: true}
//	      min: 1
//	  - either: ["red", "blue"]
//	  - exclude: [{type: int}]
//	  - group: {of: [1, 2], name: pair}
//	  - like: {expr: "abc.*", name: prefix}
//	  - literal: {nested: map}    # escape hatch for map values
//
// repeat's max defaults to unbounded and greedy to true.

// LoadPattern reads and parses a pattern file.
func LoadPattern(path string) (any, error) {
	logger := logging.GetLogger("loader")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternParse, "failed to read pattern file %s", path)
	}
	logger.Debug().Str("path", path).Msg("loading pattern file")
	return ParsePattern(data)
}

// ParsePattern parses a pattern from YAML bytes.
func ParsePattern(data []byte) (any, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(err, errors.ErrPatternParse, "pattern file is not valid YAML")
	}
	return parseNode(node)
}

func parseNode(node any) (any, error) {
	m, ok := node.(map[string]any)
	if !ok {
		// Scalars and lists are literals; the match rules interpret them.
		return node, nil
	}
	if len(m) != 1 {
		return nil, errors.Newf(errors.ErrPatternParse,
			"a pattern node must have exactly one combinator key, got %d", len(m))
	}

	for key, arg := range m {
		return parseCombinator(key, arg)
	}
	panic("unreachable")
}

func parseCombinator(key string, arg any) (any, error) {
	switch key {
	case "any":
		return pattern.Anyone, nil

	case "literal":
		return pattern.Literal{Value: arg}, nil

	case "capture":
		name, ok := arg.(string)
		if !ok || name == "" {
			return nil, errors.Newf(errors.ErrPatternParse, "capture needs a non-empty name, got %v", arg)
		}
		return pattern.Capture{Name: name}, nil

	case "type":
		name, ok := arg.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrPatternParse, "type needs a name, got %v", arg)
		}
		t, ok := values.TypeNamed(name)
		if !ok {
			return nil, errors.Newf(errors.ErrPatternParse, "unknown type %q", name)
		}
		return t, nil

	case "like":
		return parseLike(arg)

	case "seq":
		items, err := parseItems(arg)
		if err != nil {
			return nil, err
		}
		return pattern.Seq(items...), nil

	case "repeat":
		return parseRepeat(arg)

	case "group":
		return parseGroup(arg)

	case "either":
		options, err := parseItems(arg)
		if err != nil {
			return nil, err
		}
		return pattern.Either(options...), nil

	case "exclude":
		options, err := parseItems(arg)
		if err != nil {
			return nil, err
		}
		return pattern.Exclude(options...), nil
	}
	return nil, errors.Newf(errors.ErrPatternParse, "unknown combinator %q", key)
}

func parseLike(arg any) (any, error) {
	switch a := arg.(type) {
	case string:
		return pattern.Like(a), nil
	case map[string]any:
		expr, ok := a["expr"].(string)
		if !ok || expr == "" {
			return nil, errors.New(errors.ErrPatternParse, "like needs an expr")
		}
		if name, present := a["name"]; present {
			text, ok := name.(string)
			if !ok {
				return nil, errors.Newf(errors.ErrPatternParse, "like name must be text, got %v", name)
			}
			return pattern.Like(expr, text), nil
		}
		return pattern.Like(expr), nil
	}
	return nil, errors.Newf(errors.ErrPatternParse, "like needs an expression, got %v", arg)
}

func parseRepeat(arg any) (any, error) {
	m, ok := arg.(map[string]any)
	if !ok {
		return nil, errors.Newf(errors.ErrPatternParse, "repeat needs a mapping with an of key, got %v", arg)
	}
	sub, present := m["of"]
	if !present {
		return nil, errors.New(errors.ErrPatternParse, "repeat needs an of key")
	}
	items, err := parseItems(sub)
	if err != nil {
		return nil, err
	}

	rep := pattern.RepeatOf(items...)
	if raw, present := m["min"]; present {
		min, ok := raw.(int)
		if !ok || min < 0 {
			return nil, errors.Newf(errors.ErrPatternParse, "repeat min must be a non-negative integer, got %v", raw)
		}
		rep = rep.AtLeast(min)
	}
	if raw, present := m["max"]; present && raw != nil {
		max, ok := raw.(int)
		if !ok || max < 0 {
			return nil, errors.Newf(errors.ErrPatternParse, "repeat max must be a non-negative integer, got %v", raw)
		}
		rep = rep.AtMost(max)
	}
	if rep.Min > rep.Max {
		return nil, errors.Newf(errors.ErrPatternParse, "repeat min %d exceeds max %d", rep.Min, rep.Max)
	}
	if raw, present := m["greedy"]; present {
		greedy, ok := raw.(bool)
		if !ok {
			return nil, errors.Newf(errors.ErrPatternParse, "repeat greedy must be a boolean, got %v", raw)
		}
		if !greedy {
			rep = rep.NonGreedy()
		}
	}
	return rep, nil
}

func parseGroup(arg any) (any, error) {
	m, ok := arg.(map[string]any)
	if !ok {
		return nil, errors.Newf(errors.ErrPatternParse, "group needs a mapping with an of key, got %v", arg)
	}
	sub, present := m["of"]
	if !present {
		return nil, errors.New(errors.ErrPatternParse, "group needs an of key")
	}
	items, err := parseItems(sub)
	if err != nil {
		return nil, err
	}

	grp := pattern.GroupOf(items...)
	if raw, present := m["name"]; present {
		name, ok := raw.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrPatternParse, "group name must be text, got %v", raw)
		}
		grp = grp.Named(name)
	}
	return grp, nil
}

// parseItems parses a list node item by item; a non-list parses as one
// item.
func parseItems(arg any) ([]any, error) {
	raw, ok := arg.([]any)
	if !ok {
		raw = []any{arg}
	}
	items := make([]any, len(raw))
	for i, item := range raw {
		parsed, err := parseNode(item)
		if err != nil {
			return nil, err
		}
		items[i] = parsed
	}
	return items, nil
}
