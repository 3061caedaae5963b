package ansible

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sectionKeys are the play sections extracted, in evaluation order.
var sectionKeys = []string{"pre_tasks", "tasks", "post_tasks"}

// LoadTasks reads and parses one YAML file into its task sequence.
func LoadTasks(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return ParseTasks(data)
}

// ParseTasks extracts the ordered task sequence from a YAML document.
// Playbook documents yield the pre_tasks, tasks, and post_tasks entries
// of each play in order; plain task files yield their entries directly.
// Empty documents yield an empty sequence. Entries that are not mappings
// are skipped silently.
func ParseTasks(data []byte) ([]Task, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	entries, ok := doc.([]any)
	if !ok {
		return nil, nil
	}

	if !isPlaybook(entries) {
		tasks := make([]Task, 0, len(entries))
		for idx, entry := range entries {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			tasks = append(tasks, Task{Fields: fields, Index: idx})
		}
		return tasks, nil
	}

	var tasks []Task
	for _, entry := range entries {
		play, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		for _, section := range sectionKeys {
			items, _ := play[section].([]any)
			for idx, item := range items {
				fields, ok := item.(map[string]any)
				if !ok {
					continue
				}
				tasks = append(tasks, Task{Fields: fields, Index: idx})
			}
		}
	}
	return tasks, nil
}

// isPlaybook reports whether the sequence looks like a list of plays
// rather than a bare task list. Any entry carrying hosts or a task
// section marks the whole document as a playbook.
func isPlaybook(entries []any) bool {
	for _, entry := range entries {
		play, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := play["hosts"]; ok {
			return true
		}
		for _, section := range sectionKeys {
			if _, ok := play[section]; ok {
				return true
			}
		}
	}
	return false
}
