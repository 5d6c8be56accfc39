package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"poadmin/config"
)

// ObjectStore mirrors files into a Cloudflare R2 bucket.
type ObjectStore struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewObjectStore(ctx context.Context, cfg config.R2Config) (*ObjectStore, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing required R2 environment variables")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
	return &ObjectStore{client: client, bucket: cfg.Bucket, publicBase: cfg.PublicURL}, nil
}

// AttachmentKey is the object key a purchase order file is mirrored under.
func AttachmentKey(poRefNo string, sno int64, fileName string) string {
	return path.Join("po-files", segment(poRefNo), strconv.FormatInt(sno, 10), segment(path.Base(fileName)))
}

// DocumentKey is the object key of a stored purchase order PDF.
func DocumentKey(poRefNo string) string {
	return path.Join("po-documents", segment(poRefNo)+".pdf")
}

// segment makes s usable as a single key component.
func segment(s string) string {
	s = strings.NewReplacer("/", "_", "\\", "_").Replace(s)
	if s == "" || s == "." || s == ".." {
		return "_"
	}
	return s
}

// Put uploads body under key and returns its public URL, or the key when no
// public base is configured.
func (s *ObjectStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}
	return s.URL(key), nil
}

func (s *ObjectStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete R2 object: %w", err)
	}
	return nil
}

func (s *ObjectStore) URL(key string) string {
	if s.publicBase == "" {
		return key
	}
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.TrimRight(s.publicBase, "/") + "/" + strings.Join(parts, "/")
}
