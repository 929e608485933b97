package pex

import (
	"archive/zip"
	"bufio"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed bootstrap/__main__.py
var mainModule []byte

// zipEpoch is the earliest timestamp a zip entry can carry.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// pexInfo is the archive metadata read by the bootstrap.
type pexInfo struct {
	BuildProperties map[string]string `json:"build_properties"`
	CodeHash        string            `json:"code_hash"`
	Distributions   map[string]string `json:"distributions"`
	EntryPoint      string            `json:"entry_point"`
	InheritPath     bool              `json:"inherit_path"`
	Requirements    []string          `json:"requirements"`
	ZipSafe         bool              `json:"zip_safe"`
}

func newPexInfo() pexInfo {
	return pexInfo{
		BuildProperties: map[string]string{},
		Distributions:   map[string]string{},
		EntryPoint:      domain.DefaultEntryPoint,
		Requirements:    []string{},
		ZipSafe:         true,
	}
}

func hashString(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}

// Build writes PEX-INFO and the archive to output. The target is sealed afterwards.
func (t *Target) Build(output string) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	codeHash, err := t.codeHash()
	if err != nil {
		return err
	}
	t.info.CodeHash = codeHash

	data, err := json.Marshal(t.info)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error())
	}
	if err := os.WriteFile(filepath.Join(t.root, domain.PexInfoFileName), data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error())
	}

	if err := t.writeArchive(output); err != nil {
		_ = os.Remove(output)
		return zerr.With(err, "output", output)
	}

	t.sealed = true
	return nil
}

func (t *Target) writeArchive(output string) (err error) {
	f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.ExecPerm) //nolint:gosec // Output path is provided by the user
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error())
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = zerr.Wrap(closeErr, domain.ErrArchiveWriteFailed.Error())
		}
	}()

	buf := bufio.NewWriter(f)
	header := t.shebang + "\n"
	if _, err := buf.WriteString(header); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error())
	}

	zw := zip.NewWriter(buf)
	zw.SetOffset(int64(len(header)))

	for path := range t.walker.WalkFiles(t.root, nil) {
		rel, err := filepath.Rel(t.root, path)
		if err != nil {
			return zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error())
		}
		if err := addZipEntry(zw, path, filepath.ToSlash(rel)); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error())
	}
	if err := buf.Flush(); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error())
	}
	if err := f.Chmod(domain.ExecPerm); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error())
	}
	return nil
}

func addZipEntry(zw *zip.Writer, path, name string) error {
	in, err := os.Open(path) //nolint:gosec // Path is inside the chroot
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "path", path)
	}
	defer func() {
		_ = in.Close()
	}()

	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: zipEpoch,
	}
	header.SetMode(domain.FilePerm)

	w, err := zw.CreateHeader(header)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "entry", name)
	}
	if _, err := io.Copy(w, in); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error()), "entry", name)
	}
	return nil
}

// extractArchive expands the zip at src into dst. Entries escaping dst are rejected.
func extractArchive(src, dst string) (err error) {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDistributionExtractFailed.Error()), "path", src)
	}
	defer func() {
		_ = zr.Close()
	}()

	for _, file := range zr.File {
		target := filepath.Join(dst, filepath.FromSlash(file.Name))
		rel, relErr := filepath.Rel(dst, target)
		if relErr != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return zerr.With(domain.ErrDistributionExtractFailed, "entry", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.Wrap(err, domain.ErrDistributionExtractFailed.Error())
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
			return zerr.Wrap(err, domain.ErrDistributionExtractFailed.Error())
		}
		if err := extractFile(file, target); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDistributionExtractFailed.Error()), "entry", file.Name)
		}
	}
	return nil
}

func extractFile(file *zip.File, target string) (err error) {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer func() {
		_ = rc.Close()
	}()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Path is checked against the destination
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	//nolint:gosec // G110: distributions come from configured repositories
	_, err = io.Copy(out, rc)
	return err
}
