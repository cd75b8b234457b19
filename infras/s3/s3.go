package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"venuely/config"
	"venuely/infras/otel"
	"venuely/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	otelAttrSize      = "size"
)

var ErrForeignURL = errors.New("url does not belong to the media bucket")

// Object is a single upload. Directory and Name form the object key.
type Object struct {
	Directory   string
	Name        string
	ContentType string
	Body        io.Reader
	Size        int64
}

func (o Object) Key() string {
	return path.Join(o.Directory, o.Name)
}

type S3 interface {
	Put(ctx context.Context, object Object) (url string, err error)
	Remove(ctx context.Context, url string) error
	KeyFromURL(url string) (key string)
}

type s3Impl struct {
	client *s3.Client
	config *config.Config
	otel   otel.Otel
}

// Put stores the object in the configured bucket and returns its public URL.
func (svc *s3Impl) Put(ctx context.Context, object Object) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.config.External.S3.BucketName
	key := object.Key()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
		otelAttrSize:      object.Size,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          object.Body,
		ContentType:   aws.String(object.ContentType),
		ContentLength: aws.Int64(object.Size),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(svc.config.External.S3.PublicDomain, "/"), key), nil
}

// Remove deletes the object a public URL points at.
func (svc *s3Impl) Remove(ctx context.Context, url string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := svc.KeyFromURL(url)
	if key == constant.Empty {
		return ErrForeignURL
	}

	bucket := svc.config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// KeyFromURL accepts URLs on the public domain or the API endpoint. Anything else yields "".
func (svc *s3Impl) KeyFromURL(url string) (key string) {
	return KeyFromURL(svc.config, url)
}

func KeyFromURL(cfg *config.Config, url string) string {
	prefixes := []string{
		strings.TrimSuffix(cfg.External.S3.PublicDomain, "/") + "/",
		fmt.Sprintf("%s/%s/", strings.TrimSuffix(cfg.External.S3.APIEndpoint, "/"), cfg.External.S3.BucketName),
	}

	for _, prefix := range prefixes {
		if prefix == "/" {
			continue
		}

		if key, ok := strings.CutPrefix(url, prefix); ok && key != constant.Empty {
			return key
		}
	}

	return constant.Empty
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		client: client,
		config: config,
		otel:   otel,
	}
}
