package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/listbox/internal/listbox"
)

const (
	// maxConcurrentLoads bounds parallel document reads.
	maxConcurrentLoads = 8

	// maxLineSize is the longest option line ParseLines accepts.
	maxLineSize = 16 * 1024 * 1024
)

// ErrInvalidNode is returned for a child that is neither an option nor a group.
var ErrInvalidNode = errors.New("invalid listbox child")

// Document is a YAML file describing listbox children.
//
//	schema_version: "1.0.0"
//	label: Fruit
//	children:
//	  - text: Apple
//	    value: apple
//	  - group: Citrus
//	    options:
//	      - text: Lemon
//	        value: lemon
type Document struct {
	SchemaVersion string     `yaml:"schema_version"`
	Label         string     `yaml:"label,omitempty"`
	Description   string     `yaml:"description,omitempty"`
	Children      []NodeSpec `yaml:"children"`

	// Source is the file the document was read from.
	Source string `yaml:"-"`
}

// NodeSpec is an option or, when Group is set, a group of options.
type NodeSpec struct {
	Text        string       `yaml:"text,omitempty"`
	Value       string       `yaml:"value,omitempty"`
	Group       string       `yaml:"group,omitempty"`
	DescribedBy string       `yaml:"described_by,omitempty"`
	Options     []OptionSpec `yaml:"options,omitempty"`
}

// OptionSpec is a single option. An empty value defaults to the text.
type OptionSpec struct {
	Text  string `yaml:"text"`
	Value string `yaml:"value,omitempty"`
}

func (o OptionSpec) option() listbox.Option {
	value := o.Value
	if value == "" {
		value = o.Text
	}
	return listbox.Option{Text: o.Text, Value: value}
}

// Nodes converts the children into listbox nodes.
func (d *Document) Nodes() ([]listbox.Node, error) {
	nodes := make([]listbox.Node, 0, len(d.Children))
	for i, spec := range d.Children {
		switch {
		case spec.Group != "" && (spec.Text != "" || spec.Value != ""):
			return nil, fmt.Errorf("%w at %d: group %q also has text or value", ErrInvalidNode, i, spec.Group)
		case spec.Group != "":
			g := listbox.Group{Label: spec.Group, DescribedBy: spec.DescribedBy}
			for _, o := range spec.Options {
				g.Options = append(g.Options, o.option())
			}
			nodes = append(nodes, g)
		case len(spec.Options) > 0:
			return nil, fmt.Errorf("%w at %d: options without a group label", ErrInvalidNode, i)
		case spec.Text == "" && spec.Value == "":
			return nil, fmt.Errorf("%w at %d: empty option", ErrInvalidNode, i)
		default:
			nodes = append(nodes, OptionSpec{Text: spec.Text, Value: spec.Value}.option())
		}
	}
	return nodes, nil
}

// ParseDocument parses a YAML option document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing option document: %w", err)
	}
	if err := CheckSchemaVersion(doc.SchemaVersion); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadDocument reads and parses the option document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading option document %s: %w", path, err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// LoadDocuments reads the documents concurrently. The result keeps the
// order of paths; the first error cancels the remaining reads.
func LoadDocuments(ctx context.Context, paths []string) ([]*Document, error) {
	docs := make([]*Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := LoadDocument(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// ParseLines reads one option per line as "value<TAB>text". A line without
// a tab is both value and text. Blank lines are skipped.
func ParseLines(r io.Reader) (*Document, error) {
	doc := &Document{SchemaVersion: CurrentSchemaVersion}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		value, text, found := strings.Cut(line, "\t")
		if !found {
			text = value
		}
		doc.Children = append(doc.Children, NodeSpec{Text: text, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading options: %w", err)
	}
	return doc, nil
}

// MergeDocuments concatenates the children of docs. The label and
// description come from the first document that sets them.
func MergeDocuments(docs ...*Document) *Document {
	merged := &Document{SchemaVersion: CurrentSchemaVersion}
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if merged.Label == "" {
			merged.Label = doc.Label
		}
		if merged.Description == "" {
			merged.Description = doc.Description
		}
		merged.Children = append(merged.Children, doc.Children...)
	}
	return merged
}
