package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aixadm/nimres/internal/model"
)

// Config represents a full nimres task file.
type Config struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Tasks       []Task   `yaml:"tasks" validate:"required,min=1,dive"`
}

// Settings holds file-wide execution parameters.
type Settings struct {
	DryRun  bool `yaml:"dry_run,omitempty"`
	Verbose bool `yaml:"verbose,omitempty"`
}

// Task describes one NIM resource operation in a task file.
type Task struct {
	ID         string     `yaml:"id" validate:"required,task_id"`
	Action     string     `yaml:"action" validate:"required,nim_action"`
	Name       string     `yaml:"name,omitempty"`
	ObjectType string     `yaml:"object_type,omitempty" validate:"omitempty,object_type"`
	Attributes Attributes `yaml:"attributes,omitempty"`
	Preview    bool       `yaml:"preview,omitempty"`
}

// Attributes is an ordered attribute list. NIM resource definitions can be
// order-sensitive, so a plain map is not enough; decoding walks the YAML
// mapping nodes to keep document order.
type Attributes []model.Attribute

// UnmarshalYAML decodes a YAML mapping into attributes in document order.
func (a *Attributes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("attributes must be a mapping, got %s", value.Tag)
	}

	out := make(Attributes, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		val := value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("attribute %q must have a scalar value", key.Value)
		}
		out = append(out, model.Attribute{Key: key.Value, Value: val.Value})
	}

	*a = out
	return nil
}

// ResolvedAction returns the task's action with present/absent aliases mapped
// to create/remove. Validation guarantees the action is recognized.
func (t Task) ResolvedAction() model.Action {
	action, _ := model.ParseAction(t.Action)
	return action
}

// Request converts the task into the core's resource request.
func (t Task) Request() model.ResourceRequest {
	return model.ResourceRequest{
		Name:       t.Name,
		ObjectType: t.ObjectType,
		Attributes: append([]model.Attribute(nil), t.Attributes...),
		Preview:    t.Preview,
	}
}

// TaskMap builds a lookup table for tasks by ID.
func TaskMap(tasks []Task) map[string]Task {
	out := make(map[string]Task, len(tasks))
	for _, task := range tasks {
		out[task.ID] = task
	}
	return out
}
