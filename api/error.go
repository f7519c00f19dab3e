package api

type Error struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
