package release

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Build wipes the dist directory, builds fresh distribution artifacts and
// optionally produces a detached ASCII-armored signature for each of them.
func (p *Project) Build(signAssets bool) (*Assets, error) {
	p.deps.Logger.Boldf("Building artifacts ...")

	distDir := filepath.Join(p.directory, "dist")
	if err := p.deps.FS.RemoveAll(distDir); err != nil {
		return nil, fmt.Errorf("failed to clean dist directory: %w", err)
	}

	if err := p.deps.Toolchain.BuildPackage(p.directory); err != nil {
		return nil, err
	}

	entries, err := p.deps.FS.ReadDir(distDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list dist directory: %w", err)
	}

	assets := &Assets{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		assets.Files = append(assets.Files, filepath.Join(distDir, entry.Name()))
	}
	sort.Strings(assets.Files)

	if signAssets {
		for _, path := range assets.Files {
			signature, err := p.deps.Toolchain.SignDetached(path)
			if err != nil {
				return nil, err
			}
			assets.Signatures = append(assets.Signatures, signature)
		}
	}

	return assets, nil
}

// Verify runs twine's metadata checks against the built distributions.
func (p *Project) Verify(assets *Assets) error {
	p.deps.Logger.Boldf("Running twine check ...")

	if assets == nil || len(assets.Files) == 0 {
		return fmt.Errorf("%w: build artifacts first", ErrNoAssets)
	}

	return p.deps.Toolchain.TwineCheck(assets.Files)
}
