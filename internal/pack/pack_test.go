package pack

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/h2non/filetype"
	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/duelicons/internal/state"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1024, 1024))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 6, G: 42, B: 72, A: 0xFF}}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(256, 256, 768, 768), &image.Uniform{C: color.RGBA{R: 255, G: 179, B: 0, A: 0xFF}}, image.Point{}, draw.Src)
	return img
}

// fakeRunner stands in for iconutil. It snapshots the staged directory
// when invoked and optionally writes the output or fails.
type fakeRunner struct {
	found  bool
	runErr error
	stderr string
	calls  [][]string
	staged []string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if !f.found {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(ctx context.Context, cmd string, args ...string) (string, string, error) {
	f.calls = append(f.calls, append([]string{cmd}, args...))
	if len(args) >= 3 {
		entries, err := os.ReadDir(args[2])
		if err == nil {
			f.staged = f.staged[:0]
			for _, e := range entries {
				f.staged = append(f.staged, e.Name())
			}
		}
	}
	if f.runErr != nil {
		return "", f.stderr, f.runErr
	}
	if len(args) >= 5 {
		_ = os.WriteFile(args[4], []byte("icns"), 0o644)
	}
	return "", "", nil
}

func entryNames() []string {
	var names []string
	for _, e := range IconsetEntries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

func TestWriteICOEmbedsDeclaredSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), ICOName)
	require.NoError(t, WriteICO(path, testImage(), ICOSizes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	kind, err := filetype.Match(data)
	require.NoError(t, err)
	assert.Equal(t, "ico", kind.Extension)

	images, err := ico.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, images, len(ICOSizes))

	var got []int
	for _, m := range images {
		b := m.Bounds()
		assert.Equal(t, b.Dx(), b.Dy())
		got = append(got, b.Dx())
	}
	sort.Ints(got)
	assert.Equal(t, []int{16, 24, 32, 48, 64, 128, 256}, got)
}

func TestWriteICOMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ICOName)
	assert.Error(t, WriteICO(path, testImage(), ICOSizes))
}

func TestIconsetEntriesMapping(t *testing.T) {
	require.Len(t, IconsetEntries, 10)
	want := map[string]int{
		"icon_16x16.png": 16, "icon_16x16@2x.png": 32,
		"icon_32x32.png": 32, "icon_32x32@2x.png": 64,
		"icon_128x128.png": 128, "icon_128x128@2x.png": 256,
		"icon_256x256.png": 256, "icon_256x256@2x.png": 512,
		"icon_512x512.png": 512, "icon_512x512@2x.png": 1024,
	}
	for _, e := range IconsetEntries {
		assert.Equal(t, want[e.Name], e.Size, e.Name)
	}
}

func TestPackageSkipsWithoutTool(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{}
	store := state.NewStore()
	p := NewIconsetPackager(dir, runner, store)

	require.NoError(t, p.Package(context.Background(), testImage()))

	assert.Equal(t, state.SKIPPED, store.Snapshot().Phase)
	assert.Empty(t, runner.calls)
	assert.NoFileExists(t, p.OutputPath())
	assert.NoDirExists(t, p.IconsetDir())
}

func TestPackageStagesAndInvokes(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{found: true}
	store := state.NewStore()
	p := NewIconsetPackager(dir, runner, store)

	require.NoError(t, p.Package(context.Background(), testImage()))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"/usr/bin/iconutil", "-c", "icns", p.IconsetDir(), "-o", p.OutputPath()}, runner.calls[0])
	assert.Equal(t, entryNames(), runner.staged)

	for _, e := range IconsetEntries {
		f, err := os.Open(filepath.Join(p.IconsetDir(), e.Name))
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, e.Size, cfg.Width, e.Name)
		assert.Equal(t, e.Size, cfg.Height, e.Name)
	}

	snap := store.Snapshot()
	assert.Equal(t, state.DONE, snap.Phase)
	require.Len(t, snap.Artifacts, 1)
	assert.Equal(t, p.OutputPath(), snap.Artifacts[0].Path)
	assert.FileExists(t, p.OutputPath())
}

func TestPackageRecreatesStagingDir(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{found: true}
	p := NewIconsetPackager(dir, runner, nil)

	require.NoError(t, p.Package(context.Background(), testImage()))
	stale := filepath.Join(p.IconsetDir(), "icon_stale.png")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	require.NoError(t, p.Package(context.Background(), testImage()))
	assert.NoFileExists(t, stale)
	assert.Equal(t, entryNames(), runner.staged)
}

func TestPackagePropagatesToolFailure(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{found: true, runErr: errors.New("exit 1: exit status 1"), stderr: "invalid iconset"}
	store := state.NewStore()
	p := NewIconsetPackager(dir, runner, store)

	err := p.Package(context.Background(), testImage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit 1")
	assert.Contains(t, err.Error(), "invalid iconset")

	snap := store.Snapshot()
	assert.Equal(t, state.FAILED, snap.Phase)
	assert.NotEmpty(t, snap.Err)
	assert.Empty(t, snap.Artifacts)
}

type exitError struct{ code int }

func (e *exitError) Error() string { return "exit status 1" }

func TestPackageKeepsToolErrorChain(t *testing.T) {
	runner := &fakeRunner{found: true, runErr: &exitError{code: 1}, stderr: "invalid iconset"}
	p := NewIconsetPackager(t.TempDir(), runner, nil)

	err := p.Package(context.Background(), testImage())
	require.Error(t, err)
	var exit *exitError
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 1, exit.code)
	assert.Contains(t, err.Error(), "invalid iconset")
}

func TestPackageWithoutRunner(t *testing.T) {
	p := NewIconsetPackager(t.TempDir(), nil, nil)
	assert.Error(t, p.Package(context.Background(), testImage()))
}
