// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

/*
Package assets integrates the external image-hosting service.

Entity images (lawyer portraits, blog covers, practice-area icons) are stored
in an S3-compatible bucket; only the resulting stable public URL is persisted
on the entity document. Deletion derives the object key by parsing the stored
URL's path segments, so no separate asset identifier needs to be stored.

Failure policy (fixed by the API contract):

  - Upload failure during create/update is fatal and aborts the write.
  - Delete failure during entity deletion is logged and swallowed; entity
    deletion must never be blocked by the asset store.
*/
package assets

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/nilupul/lexora/pkg/uuidv7"
)

// File is one image part extracted from a multipart request.
type File struct {
	// Name is the client-supplied filename; only its extension is kept.
	Name string
	// ContentType is the part's declared MIME type.
	ContentType string
	// Body is the file content. Read exactly once by Upload.
	Body io.Reader
}

// Store is the external image-hosting contract.
//
// Implementations must return a stable, publicly reachable URL from Upload
// and accept that same URL in Delete.
type Store interface {
	// Upload stores the file under the given folder and returns its public URL.
	Upload(ctx context.Context, folder string, file *File) (string, error)

	// Delete removes the object identified by a previously returned public URL.
	Delete(ctx context.Context, publicURL string) error
}

// # S3 Implementation

// S3Store implements [Store] against an S3-compatible bucket.
type S3Store struct {
	uploader  *s3manager.Uploader
	client    *s3.S3
	bucket    string
	publicURL string
}

// S3Config holds the settings needed to construct an [S3Store].
type S3Config struct {
	Bucket string
	Region string
	// Endpoint overrides the AWS endpoint for S3-compatible providers
	// (MinIO, Cloudflare R2). Empty means AWS proper.
	Endpoint string
	// PublicURL is an optional CDN/base URL prefix for returned links.
	// Empty means the canonical virtual-hosted bucket URL is used.
	PublicURL string
}

// NewS3Store builds the session and returns a ready [S3Store].
//
// Credentials come from the default AWS chain (env vars, shared config,
// instance profile).
func NewS3Store(cfg S3Config) (*S3Store, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}

	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		// Compatible providers generally require path-style addressing.
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	awsSession, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to create AWS session: %w", err)
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Store{
		uploader:  s3manager.NewUploader(awsSession),
		client:    s3.New(awsSession),
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

// Upload stores the file and returns its stable public URL.
func (store *S3Store) Upload(ctx context.Context, folder string, file *File) (string, error) {
	key := objectKey(folder, file.Name)

	_, err := store.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(store.bucket),
		Key:         aws.String(key),
		Body:        file.Body,
		ContentType: aws.String(file.ContentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("assets: upload failed: %w", err)
	}

	return store.publicURL + "/" + key, nil
}

// Delete removes the object behind a previously returned public URL.
func (store *S3Store) Delete(ctx context.Context, publicURL string) error {
	key, err := KeyFromURL(publicURL, store.bucket)
	if err != nil {
		return err
	}

	_, err = store.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("assets: delete failed: %w", err)
	}

	return nil
}

// # URL Parsing

// KeyFromURL derives the object key from a stored public URL.
//
// It walks the URL's path segments: for path-style URLs the leading bucket
// segment is stripped; for virtual-hosted URLs the whole path is the key.
func KeyFromURL(publicURL, bucket string) (string, error) {
	parsed, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("assets: unparseable asset URL %q: %w", publicURL, err)
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return "", fmt.Errorf("assets: asset URL %q has no object path", publicURL)
	}

	// Path-style URL: first segment is the bucket name.
	if segments := strings.SplitN(key, "/", 2); len(segments) == 2 && segments[0] == bucket {
		key = segments[1]
	}

	return key, nil
}

// objectKey builds a collision-free key preserving the original extension.
func objectKey(folder, filename string) string {
	extension := strings.ToLower(path.Ext(filename))
	return folder + "/" + uuidv7.New() + extension
}
