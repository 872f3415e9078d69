package seed

import (
	"context"
	"fmt"
	"io"

	"boutik/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Loader implements Loader for reading seed catalogue files from AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based seed catalogue loader.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-seed-loader").Logger()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 seed loader initialised")

	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Load reads a JSON seed catalogue object from S3 and returns its product
// list.
func (l *s3Loader) Load(ctx context.Context, key string) ([]model.Product, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("loading seed catalogue from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("error reading seed catalogue object")
		return nil, fmt.Errorf("error reading seed catalogue object %s: %w", key, err)
	}

	products, err := decodeCatalogue(data)
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("invalid seed catalogue object")
		return nil, fmt.Errorf("invalid seed catalogue object %s: %w", key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Int("products_loaded", len(products)).
		Msg("seed catalogue loaded successfully from S3")

	return products, nil
}

// fallbackLoader tries S3 first and falls back to the local file system.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	localPath  string
	logger     zerolog.Logger
}

// NewFallbackLoader creates a loader that tries S3 first, then the local
// file at localPath. If s3Loader is nil only the file loader is used.
func NewFallbackLoader(s3Loader, fileLoader Loader, localPath string, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		localPath:  localPath,
		logger:     logger.With().Str("component", "fallback-seed-loader").Logger(),
	}
}

// Load attempts S3 first, then the local file system.
func (l *fallbackLoader) Load(ctx context.Context, source string) ([]model.Product, error) {
	if l.s3Loader != nil {
		products, err := l.s3Loader.Load(ctx, source)
		if err == nil {
			return products, nil
		}

		l.logger.Warn().
			Err(err).
			Str("s3_key", source).
			Str("local_fallback", l.localPath).
			Msg("failed to load seed catalogue from S3, falling back to local file")

		if l.localPath == "" {
			return nil, err
		}
		return l.fileLoader.Load(ctx, l.localPath)
	}

	return l.fileLoader.Load(ctx, source)
}
