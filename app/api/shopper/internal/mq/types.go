package mq

// ChatTurnEvent is published for every answered recommendation.
type ChatTurnEvent struct {
	SessionID  string   `json:"session_id"`
	TurnID     int64    `json:"turn_id,string"`
	Query      string   `json:"query"`
	Message    string   `json:"message"`
	Source     string   `json:"source"`
	ProductIDs []string `json:"product_ids"`
	Timestamp  int64    `json:"ts"`
}
