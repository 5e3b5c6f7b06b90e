package objectstore

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/faretex/faretex/pkg/util"
)

var client *storage.Client

const defaultSubmissionsBucket = "faretex-submissions"
const defaultGeneratedBucket = "faretex-generated"
const defaultValidatedBucket = "faretex-validated"

func Connect() error {
	var err error
	client, err = storage.NewClient(context.Background())

	return err
}

func SubmissionsBucket() string {
	return bucketName("FARETEX_SUBMISSIONS_BUCKET", defaultSubmissionsBucket)
}

func GeneratedBucket() string {
	return bucketName("FARETEX_GENERATED_BUCKET", defaultGeneratedBucket)
}

func ValidatedBucket() string {
	return bucketName("FARETEX_VALIDATED_BUCKET", defaultValidatedBucket)
}

func bucketName(envVar string, fallback string) string {
	env := util.GetEnvironmentVariables()

	if env[envVar] != "" {
		return env[envVar]
	}

	return fallback
}

func Get(ctx context.Context, bucket string, key string) ([]byte, error) {
	reader, err := client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

func Put(ctx context.Context, bucket string, key string, data []byte) error {
	writer := client.Bucket(bucket).Object(key).NewWriter(ctx)

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return err
	}

	return writer.Close()
}

// Move copies an object to the destination bucket and removes the source
// object once the copy has committed.
func Move(ctx context.Context, srcBucket string, dstBucket string, key string) error {
	src := client.Bucket(srcBucket).Object(key)
	dst := client.Bucket(dstBucket).Object(key)

	if _, err := dst.CopierFrom(src).Run(ctx); err != nil {
		return err
	}

	return src.Delete(ctx)
}
