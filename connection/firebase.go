package connection

import (
	"context"
	"os"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

// FBConnection initializes the Firebase app and returns a handle on the
// storage bucket used for file uploads.
func FBConnection() (*storage.BucketHandle, error) {
	godotenv.Load()

	ctx := context.Background()
	config := &firebase.Config{
		StorageBucket: os.Getenv("FIREBASE_STORAGE_BUCKET"),
	}
	opt := option.WithCredentialsFile(os.Getenv("FIREBASE_CREDENTIALS_FILE"))

	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return nil, err
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, err
	}

	return client.DefaultBucket()
}
