package firebaseapp

import (
	"context"
	"encoding/base64"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/todoflow-labs/firebase-config/internal/config"
)

// Credentials selects the service account used by the Admin SDK.
// Base64 takes precedence over Path; with neither set, application
// default credentials (GOOGLE_APPLICATION_CREDENTIALS) are used.
type Credentials struct {
	Path   string
	Base64 string
}

// Source reports which credential source New will use.
func (c Credentials) Source() string {
	switch {
	case c.Base64 != "":
		return "base64"
	case c.Path != "":
		return "file"
	default:
		return "default"
	}
}

func (c Credentials) options() ([]option.ClientOption, error) {
	switch {
	case c.Base64 != "":
		credentialsJSON, err := base64.StdEncoding.DecodeString(c.Base64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode Firebase credentials: %w", err)
		}
		return []option.ClientOption{option.WithCredentialsJSON(credentialsJSON)}, nil
	case c.Path != "":
		return []option.ClientOption{option.WithCredentialsFile(c.Path)}, nil
	}
	return nil, nil
}

// New builds a Firebase App for the project described by web.
func New(ctx context.Context, web config.FirebaseConfig, creds Credentials, opts ...option.ClientOption) (*firebase.App, error) {
	credOpts, err := creds.options()
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     web.ProjectID,
		StorageBucket: web.StorageBucket,
	}, append(credOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	return app, nil
}

// Init loads the web config from the environment and initializes the App.
// A load failure is returned as is and no App is created.
func Init(ctx context.Context, creds Credentials, opts ...option.ClientOption) (*firebase.App, config.FirebaseConfig, error) {
	web, err := config.LoadFirebase()
	if err != nil {
		return nil, web, err
	}
	app, err := New(ctx, web, creds, opts...)
	if err != nil {
		return nil, web, err
	}
	return app, web, nil
}
