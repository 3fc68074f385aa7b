package config

import (
	"errors"
	"os"
)

// Environment variables holding the Firebase web client settings.
const (
	EnvAPIKey            = "NEXT_PUBLIC_API_KEY"
	EnvAuthDomain        = "NEXT_PUBLIC_AUTH_DOMAIN"
	EnvProjectID         = "NEXT_PUBLIC_PROJECT_ID"
	EnvStorageBucket     = "NEXT_PUBLIC_STORAGE_BUCKET"
	EnvMessagingSenderID = "NEXT_PUBLIC_MESSAGING_SENDER_ID"
	EnvAppID             = "NEXT_PUBLIC_APP_ID"
	EnvMeasurementID     = "NEXT_PUBLIC_MEASUREMENT_ID"
)

// ErrFirebaseConfigIncomplete is returned when a required Firebase setting is empty or unset.
var ErrFirebaseConfigIncomplete = errors.New("Firebase config is not set or incomplete")

// IncompleteError lists the required variables that were missing.
// Its message is always the text of ErrFirebaseConfigIncomplete.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return ErrFirebaseConfigIncomplete.Error()
}

func (e *IncompleteError) Is(target error) bool {
	return target == ErrFirebaseConfigIncomplete
}

// FirebaseConfig is the web client configuration, shaped like Firebase Hosting's init.json.
type FirebaseConfig struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`
	MeasurementID     string `json:"measurementId,omitempty"`
}

// LoadFirebase reads the Firebase settings from the environment.
// MeasurementID is optional; every other field must be non-empty.
func LoadFirebase() (FirebaseConfig, error) {
	cfg := FirebaseConfig{
		APIKey:            os.Getenv(EnvAPIKey),
		AuthDomain:        os.Getenv(EnvAuthDomain),
		ProjectID:         os.Getenv(EnvProjectID),
		StorageBucket:     os.Getenv(EnvStorageBucket),
		MessagingSenderID: os.Getenv(EnvMessagingSenderID),
		AppID:             os.Getenv(EnvAppID),
		MeasurementID:     os.Getenv(EnvMeasurementID),
	}

	var missing []string
	for _, f := range []struct {
		env, value string
	}{
		{EnvAPIKey, cfg.APIKey},
		{EnvAuthDomain, cfg.AuthDomain},
		{EnvProjectID, cfg.ProjectID},
		{EnvStorageBucket, cfg.StorageBucket},
		{EnvMessagingSenderID, cfg.MessagingSenderID},
		{EnvAppID, cfg.AppID},
	} {
		if f.value == "" {
			missing = append(missing, f.env)
		}
	}
	if len(missing) > 0 {
		return FirebaseConfig{}, &IncompleteError{Missing: missing}
	}

	return cfg, nil
}
