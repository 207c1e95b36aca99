package catalog

// Tag is a user-defined label that events can reference by id.
// Names are not required to be unique; identity lives in the id.
type Tag struct {
	ID   int    `json:"id" yaml:"id"`     // Unique tag identifier, immutable after creation
	Name string `json:"name" yaml:"name"` // Display name
}
