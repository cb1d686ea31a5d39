package files

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/notedex/core"
	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// frontMatter is the optional YAML header of a note file.
type frontMatter struct {
	Title    string         `yaml:"title"`
	Labels   []string       `yaml:"labels"`
	Created  time.Time      `yaml:"created"`
	Modified time.Time      `yaml:"modified"`
	Records  []recordHeader `yaml:"records"`
}

type recordHeader struct {
	ID          string            `yaml:"id"`
	Kind        string            `yaml:"kind"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Fields      map[string]string `yaml:"fields"`
}

var recordKinds = map[string]core.RecordKind{
	"link":      core.RecordKindLink,
	"wiki":      core.RecordKindWiki,
	"file":      core.RecordKindFile,
	"reference": core.RecordKindReference,
}

// parseNote builds a document from the raw contents of a note file.
// Without a title in the front matter the first non-blank body line is used.
func parseNote(id string, data []byte) (*core.Document, error) {
	header, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if len(header) > 0 {
		if err := yaml.Unmarshal(header, &fm); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontMatter, err)
		}
	}

	doc := &core.Document{
		ID:         id,
		Title:      strings.TrimSpace(fm.Title),
		Labels:     fm.Labels,
		CreatedAt:  fm.Created.UTC(),
		ModifiedAt: fm.Modified.UTC(),
	}

	text := strings.TrimSpace(string(body))
	if doc.Title == "" {
		first, rest, _ := strings.Cut(text, "\n")
		doc.Title = strings.TrimSpace(strings.TrimLeft(first, "# "))
		text = strings.TrimSpace(rest)
	}
	doc.Body = text

	for i, rh := range fm.Records {
		kind, ok := recordKinds[strings.ToLower(rh.Kind)]
		if !ok {
			return nil, fmt.Errorf("%w: record %d has unknown kind %q", ErrInvalidFrontMatter, i, rh.Kind)
		}
		rid := rh.ID
		if rid == "" {
			rid = fmt.Sprintf("%s#%d", id, i)
		}
		doc.Records = append(doc.Records, core.Record{
			ID:          rid,
			Kind:        kind,
			Title:       rh.Title,
			Description: rh.Description,
			Fields:      rh.Fields,
		})
	}
	return doc, nil
}

// splitFrontMatter separates a leading "---" delimited header from the body.
func splitFrontMatter(data []byte) (header, body []byte, err error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	first, rest, found := bytes.Cut(data, []byte("\n"))
	if !found || strings.TrimSpace(string(first)) != frontMatterDelimiter {
		return nil, data, nil
	}

	for len(rest) > 0 {
		var line []byte
		start := len(data) - len(rest)
		line, rest, _ = bytes.Cut(rest, []byte("\n"))
		if strings.TrimSpace(string(line)) == frontMatterDelimiter {
			return data[len(first)+1 : start], rest, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: missing closing delimiter", ErrInvalidFrontMatter)
}
