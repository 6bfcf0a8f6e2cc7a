package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

// TestTopics keeps readme.md and the topic files in sync: every listed
// topic must load, and every topic file must be listed.
func TestTopics(t *testing.T) {
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Topic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicExpansion(t *testing.T) {
	everything, err := Topic("*")
	if err != nil {
		t.Fatalf(`Topic("*") error = %v`, err)
	}
	single, err := Topic("overview")
	if err != nil {
		t.Fatalf(`Topic("overview") error = %v`, err)
	}
	if !strings.Contains(everything, single) {
		t.Error(`Topic("*") does not include the overview topic`)
	}

	if _, err := Topic("no-such-topic"); err == nil {
		t.Error("loading a missing topic expected an error")
	}
}

// TestTopicStructure parses each topic and checks its shape: exactly one
// top-level heading, and every sh code block demonstrating the tool itself.
func TestTopicStructure(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := Topic(topic)
			if err != nil {
				t.Fatalf("Topic(%q) error = %v", topic, err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var h1 int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				switch node := n.(type) {
				case *ast.Heading:
					if node.Level == 1 {
						h1++
					}
				case *ast.FencedCodeBlock:
					if string(node.Language(source)) != "sh" {
						return ast.WalkContinue, nil
					}
					for i := 0; i < node.Lines().Len(); i++ {
						seg := node.Lines().At(i)
						line := string(seg.Value(source))
						if !strings.HasPrefix(line, "bist ") {
							t.Errorf("sh block line %q does not demonstrate the tool", strings.TrimSpace(line))
						}
					}
				}
				return ast.WalkContinue, nil
			})
			if h1 != 1 {
				t.Errorf("topic has %d top-level headings, want exactly 1", h1)
			}
		})
	}
}
