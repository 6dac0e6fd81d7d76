package push

import "encoding/json"

// Payload Service Worker 收到的通知内容
type Payload struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Icon  string         `json:"icon"`
	Badge string         `json:"badge"`
	Tag   string         `json:"tag"`
	Data  map[string]any `json:"data"`
}

func (p *Payload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}
