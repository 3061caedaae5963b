package ansible

import "fmt"

// Task is one automation step decoded from YAML. Fields keeps the raw
// mapping so rules can inspect arbitrary keys; absent or mistyped fields
// read as zero values rather than errors.
type Task struct {
	Fields map[string]any
	Index  int
}

// moduleAliases maps a canonical module name to every key spelling that
// declares it. A task uses a module when any alias key is present.
var moduleAliases = map[string][]string{
	"shell":   {"shell", "ansible.builtin.shell"},
	"command": {"command", "ansible.builtin.command"},
	"raw":     {"raw", "ansible.builtin.raw"},
}

// Name returns the task's name field, falling back to its position.
func (t Task) Name() string {
	if name, ok := t.Fields["name"].(string); ok && name != "" {
		return name
	}
	return fmt.Sprintf("task #%d", t.Index)
}

// Has reports whether the key is present on the task, regardless of value.
func (t Task) Has(key string) bool {
	_, ok := t.Fields[key]
	return ok
}

// UsesModule reports whether the task declares the module under any alias.
func (t Task) UsesModule(module string) bool {
	for _, key := range moduleAliases[module] {
		if _, ok := t.Fields[key]; ok {
			return true
		}
	}
	return false
}

// ModuleArgs returns the module's argument mapping when the module is
// declared in mapping form. Bare-string form returns nil.
func (t Task) ModuleArgs(module string) map[string]any {
	for _, key := range moduleAliases[module] {
		if value, ok := t.Fields[key]; ok {
			args, _ := value.(map[string]any)
			return args
		}
	}
	return nil
}

// Args returns the task-level args mapping, or nil when absent.
func (t Task) Args() map[string]any {
	args, _ := t.Fields["args"].(map[string]any)
	return args
}
