package storage

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

const basePath = "handoff/"

// ObjectAPI is the subset of the S3 client the handoff store needs.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// HandoffStore keeps session handoff blobs as S3 objects, so several
// replicas can serve the same browser session. Expiry is left to a
// bucket lifecycle rule on the handoff/ prefix.
type HandoffStore struct {
	bucket string
	client ObjectAPI
}

func NewHandoffStore(ctx context.Context, region, bucket string) (*HandoffStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return NewHandoffStoreWithClient(bucket, s3.NewFromConfig(cfg)), nil
}

func NewHandoffStoreWithClient(bucket string, client ObjectAPI) *HandoffStore {
	return &HandoffStore{
		bucket: bucket,
		client: client,
	}
}

func (s *HandoffStore) Put(ctx context.Context, sessionID, key, value string) error {
	if sessionID == "" || key == "" {
		return errors.New("session id and key are required")
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey(sessionID, key)),
		Body:        bytes.NewReader([]byte(value)),
		ContentType: aws.String("application/json"),
	}

	_, err := s.client.PutObject(ctx, input)
	return err
}

func (s *HandoffStore) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey(sessionID, key)),
	})
	if err != nil {
		if isMissing(err) {
			return "", false, nil
		}
		return "", false, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func objectKey(sessionID, key string) string {
	return basePath + sessionID + "/" + key + ".json"
}

func isMissing(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
