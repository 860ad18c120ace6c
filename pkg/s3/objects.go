package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadObject puts an object and returns its public location
func UploadObject(ctx context.Context, bucket, key, contentType string, body []byte) (string, error) {
	_, err := Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key), nil
}

// DeleteObject removes an object by bucket and key
func DeleteObject(ctx context.Context, bucket, key string) error {
	_, err := Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	return err
}
