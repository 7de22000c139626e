package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aplamondon/go-restomenu/app/metrics"
	"github.com/aplamondon/go-restomenu/app/storage"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// MaxUploadBytes caps uploads at 10 MiB.
	MaxUploadBytes = 10 << 20

	thumbSize    = 400
	thumbQuality = 80

	imageDir = "images"
	thumbDir = "images/thumbs"
)

// ErrInvalidUpload marks client-side upload problems (bad extension,
// oversized file). Handlers answer 422 with the wrapped message.
var ErrInvalidUpload = errors.New("invalid upload")

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type UploadResult struct {
	URL       string `json:"url"`
	Thumb     string `json:"thumb"`
	Path      string `json:"path"`
	ThumbPath string `json:"thumb_path"`
}

// UploadService runs the image pipeline: validate, name, persist the
// original, derive a 400x400 cover thumbnail, persist it next to the
// original under thumbs/. Stages run once, in order; the first failure
// aborts and already-written files are left in place.
type UploadService struct {
	disk storage.Disk
}

func NewUploadService(disk storage.Disk) *UploadService {
	return &UploadService{disk: disk}
}

func (s *UploadService) Image(ctx context.Context, fileHeader *multipart.FileHeader) (*UploadResult, error) {
	ext := strings.ToLower(path.Ext(fileHeader.Filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: only jpg, jpeg and png files are accepted", ErrInvalidUpload)
	}
	if fileHeader.Size > MaxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds the %d MiB limit", ErrInvalidUpload, MaxUploadBytes>>20)
	}

	file, err := fileHeader.Open()
	if err != nil {
		metrics.ImageUploadFailures.Inc()
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Buffered once so the same bytes feed both the disk write and the
	// thumbnail decode. The size cap keeps this bounded.
	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil {
		metrics.ImageUploadFailures.Inc()
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds the %d MiB limit", ErrInvalidUpload, MaxUploadBytes>>20)
	}

	name := GenerateUploadName(ext)
	originalPath := imageDir + "/" + name

	if err := s.disk.Put(ctx, originalPath, bytes.NewReader(data), contentType); err != nil {
		metrics.ImageUploadFailures.Inc()
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		metrics.ImageUploadFailures.Inc()
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fill(img, thumbSize, thumbSize, imaging.Center, imaging.Lanczos)

	var thumbBuf bytes.Buffer
	if err := imaging.Encode(&thumbBuf, thumb, imaging.JPEG, imaging.JPEGQuality(thumbQuality)); err != nil {
		metrics.ImageUploadFailures.Inc()
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	thumbName := ThumbName(name)
	thumbPath := thumbDir + "/" + thumbName
	if err := s.disk.Put(ctx, thumbPath, &thumbBuf, "image/jpeg"); err != nil {
		metrics.ImageUploadFailures.Inc()
		return nil, err
	}

	metrics.ImageUploads.Inc()
	return &UploadResult{
		URL:       s.disk.URL(originalPath),
		Thumb:     s.disk.URL(thumbPath),
		Path:      originalPath,
		ThumbPath: thumbPath,
	}, nil
}

// RemoveThumbnail deletes the original and its thumbs/ sibling for a
// stored thumbnail reference. Every delete is best-effort: the database
// field is the authoritative state, so filesystem failures are logged and
// swallowed.
func (s *UploadService) RemoveThumbnail(ctx context.Context, stored string) {
	relPath := storedToRelPath(stored)
	if relPath == "" {
		return
	}

	if err := s.disk.Delete(ctx, relPath); err != nil {
		log.Printf("RemoveThumbnail: could not delete %s: %v", relPath, err)
	}

	thumbPath := thumbDir + "/" + ThumbName(path.Base(relPath))
	if err := s.disk.Delete(ctx, thumbPath); err != nil {
		log.Printf("RemoveThumbnail: could not delete %s: %v", thumbPath, err)
	}
}

// GenerateUploadName builds a collision-resistant file name:
// <unix_timestamp>_<8-char-token><ext>.
func GenerateUploadName(ext string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), token, ext)
}

// ThumbName maps an original file name to its thumbnail sibling:
// 170000_ab12cd34.png -> 170000_ab12cd34_thumb.jpg.
func ThumbName(original string) string {
	stem := strings.TrimSuffix(original, path.Ext(original))
	return stem + "_thumb.jpg"
}

// storedToRelPath turns a stored thumbnail reference (a full URL or an
// absolute /images/... path) back into a disk-relative path.
func storedToRelPath(stored string) string {
	if stored == "" {
		return ""
	}
	if u, err := url.Parse(stored); err == nil && u.Path != "" {
		stored = u.Path
	}
	return strings.TrimPrefix(stored, "/")
}
