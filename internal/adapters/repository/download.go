package repository

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Downloader fetches remote distributions into a cache directory.
type Downloader struct {
	client *http.Client
}

// NewDownloader creates a Downloader using client.
func NewDownloader(client *http.Client) *Downloader {
	return &Downloader{client: client}
}

// Download stores dist below <cacheDir>/downloads and returns the local path.
// An artifact already present in the cache is reused without a request.
func (d *Downloader) Download(ctx context.Context, dist domain.Distribution, cacheDir string) (string, error) {
	dir := filepath.Join(cacheDir, domain.DownloadsDirName)
	target := filepath.Join(dir, filepath.Base(dist.Filename))

	if _, err := os.Stat(target); err == nil {
		return target, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "path", target)
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", dir)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dist.Location, http.NoBody)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", dist.Location)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", dist.Location)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		downloadErr := zerr.With(domain.ErrDownloadFailed, "status_code", resp.StatusCode)
		return "", zerr.With(downloadErr, "url", dist.Location)
	}

	if err := atomicCopy(target, resp.Body); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", dist.Location)
	}
	return target, nil
}

// atomicCopy streams r into a temp file next to path and renames it into place.
func atomicCopy(path string, r io.Reader) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "download-*"+domain.TempSuffix)
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmpFile, r); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
