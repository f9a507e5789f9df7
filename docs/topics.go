// Package docs holds the embedded user documentation, organized as topics.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// GetTopic returns the content of one documentation topic. The special name
// "*" expands to every topic.
func GetTopic(topic string) (string, error) { return GetTopics(topic) }

// GetTopics returns the content of the given topics concatenated together,
// with "*" entries expanded to the full sorted topic list.
func GetTopics(topics ...string) (string, error) {
	expanded, err := expand(topics)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, topic := range expanded {
		content, err := pages.ReadFile(topic + ".md")
		if err != nil {
			return "", fmt.Errorf("topic %q not found: %w", topic, err)
		}
		b.Write(content)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// GetAllTopics returns all available documentation topics, sorted. The
// readme is the topic index, not a topic itself.
func GetAllTopics() ([]string, error) {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}

// expand replaces every "*" in the list with the full topic list.
func expand(topics []string) ([]string, error) {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t != "*" {
			out = append(out, t)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return nil, err
		}
		out = append(out, all...)
	}
	return out, nil
}
