// Package drive uploads run snapshots to a Google Drive folder using a
// service-account credential. Uploads are best-effort: the pipeline treats a
// failed upload as a warning, never as a failed run.
package drive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/awardscan/award-scraper/internal/domain"
	"github.com/awardscan/award-scraper/internal/infrastructure/logger"
	"github.com/awardscan/award-scraper/internal/infrastructure/retry"
)

// Uploader pushes local files into one Drive folder.
type Uploader struct {
	service  *drive.Service
	folderID string
	log      *logger.Logger
}

// NewUploader builds a Drive client from a service-account JSON key file.
func NewUploader(ctx context.Context, credentialsPath, folderID string, log *logger.Logger) (*Uploader, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read drive credentials: %v", domain.ErrSetup, err)
	}

	conf, err := google.JWTConfigFromJSON(data, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse drive credentials: %v", domain.ErrSetup, err)
	}

	service, err := drive.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("%w: drive service: %v", domain.ErrSetup, err)
	}

	return &Uploader{
		service:  service,
		folderID: folderID,
		log:      log.WithContext("component", "drive"),
	}, nil
}

// Upload creates one file in the configured folder and returns its Drive ID.
// The file is reopened on every attempt so a retried upload always streams
// from the start.
func (u *Uploader) Upload(ctx context.Context, path string) (string, error) {
	name := filepath.Base(path)
	cfg := retry.UploadConfig.WithOnRetry(func(attempt int, err error) {
		u.log.Warn().Err(err).Int("attempt", attempt).Str("file", name).Msg("retrying upload")
	})

	id, err := retry.DoWithResult(ctx, func() (string, error) {
		f, err := os.Open(path)
		if err != nil {
			return "", retry.NewPermanent(fmt.Errorf("open %s: %w", path, err))
		}
		defer f.Close()

		created, err := u.service.Files.Create(&drive.File{
			Name:    name,
			Parents: []string{u.folderID},
		}).Media(f).SupportsAllDrives(true).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("create %s: %w", name, err)
		}
		return created.Id, nil
	}, cfg)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}

	u.log.Info().Str("file", name).Str("drive_id", id).Msg("upload completed")
	return id, nil
}
