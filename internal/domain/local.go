package domain

type Snapshot struct {
	Resource  string `json:"resource"`
	ID        string `json:"id"`
	Payload   string `json:"payload"`
	IsDeleted bool   `json:"is_deleted"`
	SyncToken string `json:"sync_token,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

type Mapping struct {
	TempID      string `json:"temp_id"`
	RealID      string `json:"real_id"`
	CommandUUID string `json:"command_uuid,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type Event struct {
	ID        int64  `json:"id"`
	TS        string `json:"ts"`
	Type      string `json:"type"`
	SyncToken string `json:"sync_token,omitempty"`
	FullSync  bool   `json:"full_sync"`
	Commands  int    `json:"commands"`
	Failed    int    `json:"failed"`
	Resources string `json:"resources"`
	Payload   string `json:"payload,omitempty"`
}
