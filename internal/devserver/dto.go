package devserver

// SyncRequest is the body of POST /sync.
type SyncRequest struct {
	SyncToken     string        `json:"sync_token,omitempty" example:"*"`
	ResourceTypes []string      `json:"resource_types,omitempty" example:"[\"all\"]"`
	Commands      []CommandBody `json:"commands,omitempty"`
}

// CommandBody is one command as it arrives on the wire.
type CommandBody struct {
	Type   string         `json:"type" example:"item_add"`
	UUID   string         `json:"uuid" example:"0d5f4a0e-8f4e-4a44-bb2e-8c2b7c5a9f3e"`
	TempID string         `json:"temp_id,omitempty"`
	Args   map[string]any `json:"args" jsonschema:"type=object,additionalProperties=true"`
}
