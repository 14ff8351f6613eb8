// Package storage talks to the external image host. Posts and
// profiles keep only the returned URL; raw image bytes never land in
// the database.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"flock/flock/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		},
	)
	if err != nil {
		return nil, err
	}

	publicURL := cfg.MinIOPublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinIOUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinIOEndpoint)
	}

	m := &MinIOClient{client: client, bucket: cfg.MinIOBucket, publicURL: strings.TrimRight(publicURL, "/")}

	exists, err := client.BucketExists(context.Background(), m.bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), m.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Upload stores one image payload (a base64 data URI, e.g.
// "data:image/png;base64,....") and returns its stable public URL.
func (m *MinIOClient) Upload(ctx context.Context, dataURI string) (string, error) {
	contentType, data, err := ParseDataURI(dataURI)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("images/%s%s", uuid.New().String(), extensionFor(contentType))
	_, err = m.client.PutObject(ctx, m.bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", m.publicURL, m.bucket, key), nil
}

// Delete removes the object a previously returned URL points at.
func (m *MinIOClient) Delete(ctx context.Context, url string) error {
	key, err := ObjectKeyFromURL(url)
	if err != nil {
		return err
	}
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

// ParseDataURI splits a base64 data URI into content type and bytes.
func ParseDataURI(dataURI string) (string, []byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}
	rest := dataURI[len("data:"):]
	sep := strings.Index(rest, ",")
	if sep < 0 {
		return "", nil, fmt.Errorf("malformed data URI")
	}
	meta, payload := rest[:sep], rest[sep+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}
	contentType := strings.TrimSuffix(meta, ";base64")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return contentType, data, nil
}

// ObjectKeyFromURL derives the object key ("images/<name>") from a
// stored image URL.
func ObjectKeyFromURL(url string) (string, error) {
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	if len(parts) < 2 {
		return "", fmt.Errorf("unrecognized image url: %s", url)
	}
	name := parts[len(parts)-1]
	dir := parts[len(parts)-2]
	if name == "" || dir == "" {
		return "", fmt.Errorf("unrecognized image url: %s", url)
	}
	return dir + "/" + name, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
