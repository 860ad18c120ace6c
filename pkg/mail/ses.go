package mail

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
)

var Client *sesv2.Client

func ConnectSES() {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(os.Getenv("AWS_ACCESS_KEY"), os.Getenv("AWS_SECRET_ACCESS_KEY"), "")),
		config.WithRegion(os.Getenv("AWS_REGION")),
	)
	if err != nil {
		log.Fatal(err)
	}

	Client = sesv2.NewFromConfig(cfg)
}

// SendEmail sends a single html email from the platform address
func SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	charset := "UTF-8"

	_, err := Client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(utils.EmailFrom),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String(charset),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String(charset),
					},
				},
			},
		},
	})
	return err
}
