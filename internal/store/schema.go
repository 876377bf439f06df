package store

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// tasksSchema describes the persisted record shape. Blobs that parse as
// JSON but do not match it are treated like corruption and recovered as an
// empty collection.
var tasksSchema = jsonschema.MustCompileString("tasks_v1.schema.json", `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "quadrant", "completed", "createdAt"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "text": {"type": "string"},
      "quadrant": {"enum": ["I", "II", "III", "IV"]},
      "due": {"type": ["string", "null"]},
      "completed": {"type": "boolean"},
      "completedAt": {"type": ["string", "null"]},
      "createdAt": {"type": "string"}
    }
  }
}`)

// ValidateTasks checks a raw blob against the task-array schema.
func ValidateTasks(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return ErrCorruptData
	}
	if err := tasksSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return nil
}
