package pex

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/pexwrap/internal/adapters/fs"
	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildTarget = (*Target)(nil)

// Target stages archive contents in a temporary chroot. It is not safe for concurrent use.
type Target struct {
	root    string
	walker  *fs.Walker
	hasher  ports.Hasher
	shebang string
	info    pexInfo
	// entries maps slash separated destinations to their source paths.
	entries map[string]string
	sealed  bool
}

// NewTarget creates a target with an empty chroot.
func NewTarget(walker *fs.Walker, hasher ports.Hasher, shebang string) (*Target, error) {
	root, err := os.MkdirTemp("", "pexwrap-chroot-*")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrChrootCreateFailed.Error())
	}

	return &Target{
		root:    root,
		walker:  walker,
		hasher:  hasher,
		shebang: shebang,
		info:    newPexInfo(),
		entries: make(map[string]string),
	}, nil
}

// Root returns the chroot directory.
func (t *Target) Root() string {
	return t.root
}

// SetZipSafe records whether the archive may be imported from without extraction.
func (t *Target) SetZipSafe(zipSafe bool) {
	t.info.ZipSafe = zipSafe
}

// SetEntryPoint records the module or module:function run by the bootstrap.
func (t *Target) SetEntryPoint(entryPoint string) {
	t.info.EntryPoint = entryPoint
}

func (t *Target) setRequirements(requirements []string) {
	t.info.Requirements = slices.Clone(requirements)
}

func (t *Target) setBuildProperties(identity domain.Identity) {
	t.info.BuildProperties = map[string]string{
		"class":    identity.Implementation,
		"version":  identity.Version(),
		"platform": runtime.GOOS + "-" + runtime.GOARCH,
	}
}

// AddBootstrap writes the entry module and copies files below the bootstrap directory.
func (t *Target) AddBootstrap(files []string) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if err := t.writeEntry(domain.MainFileName, mainModule); err != nil {
		return err
	}

	for _, file := range files {
		dest := domain.BootstrapDirName + "/" + filepath.Base(file)
		if err := t.addFile(file, dest); err != nil {
			return err
		}
	}
	return nil
}

// AddSource links a python module into the chroot at dest.
func (t *Target) AddSource(path, dest string) error {
	clean, err := t.destination(dest)
	if err != nil {
		return err
	}
	return t.addFile(path, clean)
}

// AddResource links a data file into the chroot at dest.
func (t *Target) AddResource(path, dest string) error {
	clean, err := t.destination(dest)
	if err != nil {
		return err
	}
	return t.addFile(path, clean)
}

// AddDistLocation expands a wheel or egg archive, or copies an installed distribution
// directory, below the dependency directory.
func (t *Target) AddDistLocation(path string) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	path = strings.TrimPrefix(path, "file://")
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}

	name := filepath.Base(filepath.Clean(path))
	if _, ok := t.info.Distributions[name]; ok {
		return zerr.With(domain.ErrDuplicateEntry, "distribution", name)
	}

	target := filepath.Join(t.root, domain.DepsDirName, name)
	switch {
	case info.IsDir():
		err = t.copyTree(path, target)
	case strings.HasSuffix(name, ".whl"), strings.HasSuffix(name, ".egg"):
		err = extractArchive(path, target)
	default:
		return zerr.With(domain.ErrUnsupportedDistribution, "path", path)
	}
	if err != nil {
		_ = os.RemoveAll(target)
		return err
	}

	sum, err := t.hasher.HashTree(target)
	if err != nil {
		return err
	}
	t.info.Distributions[name] = sum
	return nil
}

// Close removes the chroot.
func (t *Target) Close() error {
	return os.RemoveAll(t.root)
}

func (t *Target) checkOpen() error {
	if t.sealed {
		return domain.ErrTargetSealed
	}
	return nil
}

// destination validates a user supplied archive path and returns it slash separated.
func (t *Target) destination(dest string) (string, error) {
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(dest)))
	if dest == "" || clean == "." || filepath.IsAbs(dest) || strings.HasPrefix(clean, "/") ||
		clean == ".." || strings.HasPrefix(clean, "../") {
		return "", zerr.With(domain.ErrInvalidDestination, "destination", dest)
	}

	first, _, _ := strings.Cut(clean, "/")
	if first == domain.DepsDirName || first == domain.BootstrapDirName || clean == domain.PexInfoFileName {
		return "", zerr.With(domain.ErrInvalidDestination, "destination", dest)
	}
	return clean, nil
}

// addFile links path into the chroot at the slash separated dest.
func (t *Target) addFile(path, dest string) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	if existing, ok := t.entries[dest]; ok {
		return zerr.With(zerr.With(domain.ErrDuplicateEntry, "destination", dest), "existing", existing)
	}

	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "path", path)
	}
	if info.IsDir() {
		return zerr.With(domain.ErrSourceIsDirectory, "path", path)
	}

	if err := linkOrCopy(path, filepath.Join(t.root, filepath.FromSlash(dest))); err != nil {
		return zerr.With(err, "path", path)
	}
	t.entries[dest] = path
	return nil
}

func (t *Target) writeEntry(dest string, content []byte) error {
	if existing, ok := t.entries[dest]; ok {
		return zerr.With(zerr.With(domain.ErrDuplicateEntry, "destination", dest), "existing", existing)
	}

	path := filepath.Join(t.root, filepath.FromSlash(dest))
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrLinkFailed.Error())
	}
	if err := os.WriteFile(path, content, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "path", path)
	}
	t.entries[dest] = "<bootstrap>"
	return nil
}

func (t *Target) copyTree(src, dst string) error {
	for path := range t.walker.WalkFiles(src, nil) {
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "path", path)
		}
		if err := linkOrCopy(path, filepath.Join(dst, rel)); err != nil {
			return zerr.With(err, "path", path)
		}
	}
	return nil
}

// linkOrCopy hard links src to dst, copying when the link cannot be made.
func linkOrCopy(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrLinkFailed.Error())
	}

	err := os.Link(src, dst)
	if err == nil {
		return nil
	}
	if errors.Is(err, iofs.ErrExist) {
		return zerr.With(domain.ErrDuplicateEntry, "destination", dst)
	}

	return copyFile(src, dst)
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.Wrap(err, domain.ErrLinkFailed.Error())
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm) //nolint:gosec // Path is inside the chroot
	if err != nil {
		return zerr.Wrap(err, domain.ErrLinkFailed.Error())
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = zerr.Wrap(closeErr, domain.ErrLinkFailed.Error())
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return zerr.Wrap(err, domain.ErrLinkFailed.Error())
	}
	return nil
}

// codeHash hashes the relative path and content of every staged file except PEX-INFO.
// The bootstrap extracts archives that are not zip safe below code/<code_hash>.
func (t *Target) codeHash() (string, error) {
	var b strings.Builder
	for path := range t.walker.WalkFiles(t.root, nil) {
		rel, err := filepath.Rel(t.root, path)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrArchiveWriteFailed.Error())
		}
		dest := filepath.ToSlash(rel)
		if dest == domain.PexInfoFileName {
			continue
		}

		sum, err := t.hasher.HashFile(path)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s\x00%s\n", dest, sum)
	}
	return hashString(b.String()), nil
}
