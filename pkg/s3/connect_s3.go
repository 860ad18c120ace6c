package store

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
)

var Client *s3.Client

func ConnectS3() {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(os.Getenv("S3_ACCESS_KEY_ID"), os.Getenv("S3_SECRET_KEY"), "")),
		config.WithRegion(os.Getenv("AWS_REGION")),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Parse S3_PATH_STYLE environment variable
	pathStyle := os.Getenv("S3_PATH_STYLE")
	usePathStyle := false // Default to false
	if pathStyle == "true" {
		usePathStyle = true
	} else if pathStyle == "false" {
		usePathStyle = false
	} else {
		log.Printf("S3_PATH_STYLE is not set to a recognized value. Defaulting to false.")
	}

	Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.HTTPClient = &http.Client{}
		o.UsePathStyle = usePathStyle // Enable path-style URLs for MinIO
	})

	// Check if the buckets exist
	bucketsName := []string{utils.CourseImageBucket, utils.CourseVideoBucket}
	for _, bucketName := range bucketsName {
		_, err = Client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
			Bucket: &bucketName,
		})
		if err != nil {
			// Check if the error is due to a non-existent bucket
			var notFoundErr *types.NotFound
			if errors.As(err, &notFoundErr) {
				_, createErr := Client.CreateBucket(context.TODO(), &s3.CreateBucketInput{
					Bucket: &bucketName,
				})
				if createErr != nil {
					log.Fatalf("Failed to create bucket %s: %v", bucketName, createErr)
					return
				}
				log.Printf("Bucket %s created successfully.", bucketName)
			} else {
				log.Fatalf("Failed to check bucket %s: %v", bucketName, err)
				return
			}
		}
	}
}
