package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pexwrap/cmd/pexwrap/commands"
	"go.trai.ch/pexwrap/internal/adapters/telemetry"
	"go.trai.ch/pexwrap/internal/app"
	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/pexwrap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	cli     *commands.CLI
	loader  *mocks.MockConfigLoader
	repos   *mocks.MockRepositoryFactory
	locator *mocks.MockBinaryLocator
	log     *mocks.MockLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	h := &harness{
		loader:  mocks.NewMockConfigLoader(ctrl),
		repos:   mocks.NewMockRepositoryFactory(ctrl),
		locator: mocks.NewMockBinaryLocator(ctrl),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().SetJSON(false).AnyTimes()
	h.log = log

	a := app.New(h.locator, mocks.NewMockInterpreterProber(ctrl), mocks.NewMockInterpreterResolver(ctrl),
		h.repos, mocks.NewMockArchiveBuilder(ctrl), mocks.NewMockPathResolver(ctrl), mocks.NewMockPublisher(ctrl),
		log, telemetry.NewNoOp())
	h.cli = commands.New(a, h.loader, log)
	h.cli.SetIn(strings.NewReader("modules:\n"))
	return h
}

// capture stops the build at interpreter lookup and returns the options it ran with.
func (h *harness) capture(t *testing.T, args ...string) domain.BuildOptions {
	t.Helper()

	var got domain.BuildOptions
	h.repos.EXPECT().New(gomock.Any()).DoAndReturn(func(opts domain.BuildOptions) ports.Repository {
		got = opts
		return nil
	})
	h.locator.EXPECT().Locate(gomock.Any(), gomock.Any()).Return("", domain.ErrInterpreterNotFound)

	h.cli.SetArgs(args)
	err := h.cli.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.ExitCannotSetupInterpreter, domain.ExitCode(err))
	return got
}

func TestCLI_Defaults(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(domain.ConfigFileName, false).Return(domain.DefaultOptions(), nil)

	got := h.capture(t, "out.pex")
	assert.Equal(t, domain.DefaultOptions(), got)
}

func TestCLI_FlagsOverrideConfig(t *testing.T) {
	h := newHarness(t)

	fromFile := domain.DefaultOptions()
	fromFile.Python = "/opt/python"
	fromFile.EntryPoint = "cfg:main"
	fromFile.FindLinks = []string{"/cfg/links"}
	h.loader.EXPECT().Load("custom.yaml", true).Return(fromFile, nil)

	manifest := filepath.Join(t.TempDir(), "manifest.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("modules:\n"), 0o600))

	got := h.capture(t,
		"-c", "custom.yaml",
		"--entry-point", "app:main",
		"--no-pypi",
		"--not-zip-safe",
		"--find-links", "/a,/b",
		"--no-use-wheel",
		"--pex-root", "/tmp/pex",
		"--index-url", "https://mirror.example.com/simple/",
		"--setuptools-path", "/opt/setuptools",
		"--wheel-path", "/opt/wheel",
		"--bootstrap", "/opt/pkg_resources.py",
		"out.pex", manifest,
	)

	assert.Equal(t, "app:main", got.EntryPoint)
	assert.False(t, got.PyPI)
	assert.False(t, got.ZipSafe)
	assert.Equal(t, "/opt/python", got.Python)
	assert.Equal(t, []string{"/a", "/b"}, got.FindLinks)
	assert.False(t, got.UseWheel)
	assert.Equal(t, "/tmp/pex", got.PexRoot)
	assert.Equal(t, "https://mirror.example.com/simple/", got.IndexURL)
	assert.Equal(t, "/opt/setuptools", got.SetuptoolsPath)
	assert.Equal(t, "/opt/wheel", got.WheelPath)
	assert.Equal(t, []string{"/opt/pkg_resources.py"}, got.BootstrapFiles)
}

func TestCLI_JournalAndLogJSON(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(domain.ConfigFileName, false).Return(domain.DefaultOptions(), nil)
	h.log.EXPECT().SetJSON(true)

	journal := filepath.Join(t.TempDir(), "build.jsonl")
	got := h.capture(t, "--log-json", "--journal", journal, "out.pex")
	assert.True(t, got.LogJSON)
	assert.Equal(t, journal, got.Journal)
}

func TestCLI_LogJSONFromConfig(t *testing.T) {
	h := newHarness(t)

	fromFile := domain.DefaultOptions()
	fromFile.LogJSON = true
	h.loader.EXPECT().Load(domain.ConfigFileName, false).Return(fromFile, nil)
	h.log.EXPECT().SetJSON(true)

	got := h.capture(t, "out.pex")
	assert.True(t, got.LogJSON)
}

func TestCLI_ManifestFileMissing(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(domain.ConfigFileName, false).Return(domain.DefaultOptions(), nil)

	h.cli.SetArgs([]string{"out.pex", "/does/not/exist.txt"})
	err := h.cli.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.ExitUsage, domain.ExitCode(err))
}

func TestCLI_UsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"a", "b", "c"},
		{"--python"},
		{"--unknown", "out.pex"},
	} {
		h := newHarness(t)
		h.cli.SetArgs(args)
		err := h.cli.Execute(context.Background())
		require.Error(t, err, args)
		assert.Equal(t, domain.ExitUsage, domain.ExitCode(err), args)
	}
}

func TestCLI_ConfigError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("bad.yaml", true).Return(domain.DefaultOptions(), errors.New("yaml: line 1"))

	h.cli.SetArgs([]string{"-c", "bad.yaml", "out.pex"})
	err := h.cli.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.ExitUsage, domain.ExitCode(err))
}

func TestCLI_Version(t *testing.T) {
	h := newHarness(t)

	var out bytes.Buffer
	h.cli.SetOutput(&out)
	h.cli.SetArgs([]string{"--version"})
	require.NoError(t, h.cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "pexwrap version dev")
}
