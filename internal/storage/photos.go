package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"

	"github.com/EstudioRosa/nail-scheduler/internal/config"
	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
)

const webpQuality = 85

// PhotoStore guarda fotos dos serviços em bucket S3 (ou compatível,
// via S3_ENDPOINT), sempre reconvertidas para webp.
type PhotoStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	return &PhotoStore{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: cfg.PhotoBaseURL,
	}
}

func (s *PhotoStore) UploadServicePhoto(
	ctx context.Context,
	serviceID uuid.UUID,
	r io.Reader,
) (string, error) {

	img, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("services/%s.webp", serviceID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return s.baseURL + "/" + key, nil
}
