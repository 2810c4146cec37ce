package store

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/autorelease/domain"
)

const frontmatterDelimiter = "---\n"

// frontmatter is the structured metadata block of a fragment file.
//
// Breaking and Priority are pointers on purpose: an absent key and an
// explicit value are different things to the bump policy.
type frontmatter struct {
	Kind     string `yaml:"kind"`
	Breaking *bool  `yaml:"breaking"`
	Priority *uint8 `yaml:"priority"`
}

// ParseFragment splits a raw fragment document into metadata and body.
//
// The document is split on the literal delimiter line into at most three
// parts: an empty preamble (discarded), the YAML metadata block, and the
// body, which is trimmed of surrounding whitespace. A document missing
// either the metadata block or the body is a parse error.
func ParseFragment(path, content string) (domain.Fragment, error) {
	parts := strings.SplitN(content, frontmatterDelimiter, 3)
	if len(parts) < 2 {
		return domain.Fragment{}, errors.New("missing frontmatter")
	}
	if len(parts) < 3 {
		return domain.Fragment{}, errors.New("missing body")
	}

	var meta frontmatter
	if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil {
		return domain.Fragment{}, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	kind, err := domain.ParseKind(meta.Kind)
	if err != nil {
		return domain.Fragment{}, err
	}

	return domain.Fragment{
		Path:     path,
		Kind:     kind,
		Breaking: meta.Breaking,
		Priority: meta.Priority,
		Content:  strings.TrimSpace(parts[2]),
	}, nil
}
