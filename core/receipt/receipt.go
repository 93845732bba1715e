// Package receipt validates expense receipt images and stores them in the receipts bucket.
package receipt

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"bizdesk.app/bizdesk/core"
	"github.com/google/uuid"
)

const MaxSize = 5 * 1024 * 1024

var (
	ErrNotImage      = errors.New("receipt must be an image")
	ErrTooLarge      = errors.New("receipt must not exceed 5 MB")
	ErrLoginRequired = errors.New("an identity is required to attach a receipt")
)

// Store is the object storage the receipts are uploaded to.
type Store interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

// File is a receipt chosen by the user, not yet uploaded.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

func Validate(contentType string, size int64) error {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return &core.ValidationError{Fields: map[string]string{"receipt": ErrNotImage.Error()}, Err: ErrNotImage}
	}
	if size > MaxSize {
		return &core.ValidationError{Fields: map[string]string{"receipt": ErrTooLarge.Error()}, Err: ErrTooLarge}
	}
	return nil
}

// Preview renders the image as a data URL without touching storage.
func Preview(data []byte, contentType string) (string, error) {
	if err := Validate(contentType, int64(len(data))); err != nil {
		return "", err
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}

// ObjectKey returns {userID}/{token}-{unixMillis}.{ext}.
func ObjectKey(userID, filename, contentType string, now time.Time) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s/%s-%d.%s", userID, token, now.UnixMilli(), extension(filename, contentType))
}

func extension(filename, contentType string) string {
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		return strings.ToLower(ext)
	}

	subtype := contentType
	if i := strings.Index(subtype, "/"); i >= 0 {
		subtype = subtype[i+1:]
	}
	if i := strings.IndexAny(subtype, ";+"); i >= 0 {
		subtype = subtype[:i]
	}
	subtype = strings.ToLower(strings.TrimSpace(subtype))
	if subtype == "" {
		return "bin"
	}
	return subtype
}
