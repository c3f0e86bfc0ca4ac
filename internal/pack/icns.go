package pack

import (
	"context"
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/rook-computer/duelicons/internal/export"
	"github.com/rook-computer/duelicons/internal/state"
	"github.com/rook-computer/duelicons/internal/system"
)

const (
	IconsetTool = "iconutil"
	IconsetName = "icon.iconset"
	ICNSName    = "icon.icns"
)

// IconsetEntry maps an iconset file name to its actual pixel size.
type IconsetEntry struct {
	Name string
	Size int
}

// IconsetEntries is the iconset layout iconutil expects: nominal sizes with
// @2x retina variants at double resolution.
var IconsetEntries = []IconsetEntry{
	{Name: "icon_16x16.png", Size: 16},
	{Name: "icon_16x16@2x.png", Size: 32},
	{Name: "icon_32x32.png", Size: 32},
	{Name: "icon_32x32@2x.png", Size: 64},
	{Name: "icon_128x128.png", Size: 128},
	{Name: "icon_128x128@2x.png", Size: 256},
	{Name: "icon_256x256.png", Size: 256},
	{Name: "icon_256x256@2x.png", Size: 512},
	{Name: "icon_512x512.png", Size: 512},
	{Name: "icon_512x512@2x.png", Size: 1024},
}

// IconsetPackager stages an iconset directory under Dir and compiles it to
// an ICNS file with iconutil. A missing iconutil skips packaging.
type IconsetPackager struct {
	Dir    string
	Runner system.Runner
	Store  *state.Store
	Logger system.Logger
}

func NewIconsetPackager(dir string, runner system.Runner, store *state.Store) *IconsetPackager {
	return &IconsetPackager{Dir: dir, Runner: runner, Store: store}
}

func (p *IconsetPackager) IconsetDir() string { return filepath.Join(p.Dir, IconsetName) }
func (p *IconsetPackager) OutputPath() string { return filepath.Join(p.Dir, ICNSName) }

func (p *IconsetPackager) setPhase(phase state.Phase) {
	if p.Store != nil {
		p.Store.SetPhase(phase)
	}
}

func (p *IconsetPackager) fail(err error) error {
	if p.Store != nil {
		p.Store.Fail(err)
	}
	if p.Logger != nil {
		p.Logger.Errorf("icns", "%v", err)
	}
	return err
}

// Package runs the packager to a terminal phase. It returns nil when
// iconutil is unavailable.
func (p *IconsetPackager) Package(ctx context.Context, img image.Image) error {
	if p.Runner == nil {
		return p.fail(errors.New("no system runner configured"))
	}

	p.setPhase(state.CHECK_TOOL_AVAILABLE)
	tool, err := p.Runner.LookPath(IconsetTool)
	if err != nil {
		p.setPhase(state.SKIPPED)
		if p.Logger != nil {
			p.Logger.Infof("icns", "%s not found, skipping .icns generation", IconsetTool)
		}
		return nil
	}

	p.setPhase(state.STAGING)
	if err := p.stage(img); err != nil {
		return p.fail(err)
	}
	p.setPhase(state.POPULATED)

	p.setPhase(state.INVOKED)
	_, stderr, err := p.Runner.Run(ctx, tool, "-c", "icns", p.IconsetDir(), "-o", p.OutputPath())
	if err != nil {
		return p.fail(errors.Wrapf(err, "iconutil failed: %s", stderr))
	}

	p.setPhase(state.DONE)
	if p.Store != nil {
		p.Store.AddArtifact(state.Artifact{Path: p.OutputPath(), Kind: "icns"})
	}
	if p.Logger != nil {
		p.Logger.Infof("icns", "wrote %s", p.OutputPath())
	}
	return nil
}

// stage recreates the iconset directory from scratch and fills it with
// every entry of IconsetEntries.
func (p *IconsetPackager) stage(img image.Image) error {
	dir := p.IconsetDir()
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrap(err, "failed to clear iconset directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create iconset directory")
	}
	for _, entry := range IconsetEntries {
		if err := export.SavePNG(export.Resize(img, entry.Size), filepath.Join(dir, entry.Name)); err != nil {
			return err
		}
	}
	return nil
}
