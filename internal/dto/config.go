// internal/dto/config.go
package dto

import "github.com/todoflow-labs/firebase-config/internal/config"

// ConfigReply is the payload answered on the config request subject.
type ConfigReply struct {
	Config *config.FirebaseConfig `json:"config,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
