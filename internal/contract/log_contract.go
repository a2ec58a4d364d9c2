package contract

type ActivityLogResponse struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"ts"`
	Level     string `json:"level"`
	EventType string `json:"event_type"`
	Entity    string `json:"entity"`
	EntityID  int64  `json:"entity_id"`
	Message   string `json:"message"`
}
