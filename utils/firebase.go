package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/zohaibkhan/booking-calendar-backend/config"
)

var (
	firebaseApp   *firebase.App
	authClient    *auth.Client
	once          sync.Once
	initErr       error
	isInitialized bool
)

// InitFirebase initializes the Firebase Admin SDK and the Auth client
// (singleton pattern). Credentials are assembled from FIREBASE_PROJECT_ID,
// FIREBASE_CLIENT_EMAIL and FIREBASE_PRIVATE_KEY rather than a key file, so
// the service account never has to exist on disk.
func InitFirebase(cfg *config.Config) error {
	if isInitialized {
		return initErr
	}

	once.Do(func() {
		ctx := context.Background()

		if cfg.FirebaseProjectID == "" || cfg.FirebaseClientEmail == "" || cfg.FirebasePrivateKey == "" {
			isInitialized = true
			initErr = fmt.Errorf("missing Firebase Admin credentials: set FIREBASE_PROJECT_ID, FIREBASE_CLIENT_EMAIL, FIREBASE_PRIVATE_KEY")
			return
		}

		// Env vars carry the key with literal \n sequences
		privateKey := strings.ReplaceAll(cfg.FirebasePrivateKey, `\n`, "\n")

		serviceAccount, err := json.Marshal(map[string]string{
			"type":         "service_account",
			"project_id":   cfg.FirebaseProjectID,
			"client_email": cfg.FirebaseClientEmail,
			"private_key":  privateKey,
			"token_uri":    "https://oauth2.googleapis.com/token",
		})
		if err != nil {
			isInitialized = true
			initErr = fmt.Errorf("building service account credentials: %v", err)
			return
		}

		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID},
			option.WithCredentialsJSON(serviceAccount))
		if err != nil {
			isInitialized = true
			initErr = fmt.Errorf("firebase app initialization failed: %v", err)
			return
		}

		client, err := app.Auth(ctx)
		if err != nil {
			firebaseApp = app
			isInitialized = true
			initErr = fmt.Errorf("firebase auth client initialization failed: %v", err)
			return
		}

		log.Printf("✅ Firebase initialized for project: %s", cfg.FirebaseProjectID)

		firebaseApp = app
		authClient = client
		isInitialized = true
		initErr = nil
	})

	return initErr
}

// GetAuthClient returns the Firebase Auth client, or nil if initialization failed.
func GetAuthClient() *auth.Client {
	return authClient
}

// IsFirebaseEnabled reports whether token verification can go through Firebase.
func IsFirebaseEnabled() bool {
	return authClient != nil
}

// GetFirebaseApp returns the Firebase app instance
func GetFirebaseApp() *firebase.App {
	return firebaseApp
}

// GetInitError returns the initialization error if any
func GetInitError() error {
	return initErr
}

// ResetFirebase resets Firebase (for testing only - DO NOT use in production)
func ResetFirebase() {
	firebaseApp = nil
	authClient = nil
	once = sync.Once{}
	initErr = nil
	isInitialized = false
}
