package store

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/weekboard/weekboard/pkg/board"
)

const frontmatterDelimiter = "---"

// taskHeader is the YAML frontmatter of a task file. The id is the file name
// and the notes are the markdown body, so neither is stored here.
type taskHeader struct {
	Title     string        `yaml:"title"`
	Day       board.Weekday `yaml:"day"`
	Hour      int           `yaml:"hour"`
	Completed bool          `yaml:"completed"`
	Project   string        `yaml:"project,omitempty"`
	Color     string        `yaml:"color,omitempty"`
	Created   time.Time     `yaml:"created"`
	Updated   time.Time     `yaml:"updated"`
}

// ParseFrontmatter splits a task file into YAML frontmatter and notes body.
// The returned task has no ID; callers set it from the file name.
func ParseFrontmatter(content string) (board.Task, error) {
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return board.Task{}, fmt.Errorf("missing frontmatter")
	}

	rest := content[len(frontmatterDelimiter):]
	idx := strings.Index(rest, "\n"+frontmatterDelimiter)
	if idx == -1 {
		return board.Task{}, fmt.Errorf("unclosed frontmatter delimiter")
	}

	yamlContent := rest[:idx]
	body := rest[idx+len("\n"+frontmatterDelimiter):]
	body = strings.TrimLeft(body, "\n")

	var h taskHeader
	if err := yaml.Unmarshal([]byte(yamlContent), &h); err != nil {
		return board.Task{}, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}
	if !h.Day.Valid() {
		return board.Task{}, fmt.Errorf("frontmatter day %q: %w", h.Day, board.ErrInvalidSlot)
	}

	return board.Task{
		Title:       h.Title,
		Day:         h.Day,
		Hour:        h.Hour,
		Completed:   h.Completed,
		ProjectName: h.Project,
		Color:       h.Color,
		Notes:       body,
		Created:     h.Created,
		Updated:     h.Updated,
	}, nil
}

// SerializeFrontmatter renders a task as markdown with YAML frontmatter.
func SerializeFrontmatter(t board.Task) (string, error) {
	yamlBytes, err := yaml.Marshal(taskHeader{
		Title:     t.Title,
		Day:       t.Day,
		Hour:      t.Hour,
		Completed: t.Completed,
		Project:   t.ProjectName,
		Color:     t.Color,
		Created:   t.Created,
		Updated:   t.Updated,
	})
	if err != nil {
		return "", fmt.Errorf("serializing frontmatter YAML: %w", err)
	}

	var b strings.Builder
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(string(yamlBytes), "\n"))
	b.WriteString("\n")
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	if t.Notes != "" {
		b.WriteString("\n")
		b.WriteString(t.Notes)
		if !strings.HasSuffix(t.Notes, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
