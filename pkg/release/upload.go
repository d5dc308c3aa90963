package release

import (
	"fmt"
	"path/filepath"

	"github.com/google/go-github/v62/github"
)

// Upload pushes the built artifacts to every destination in order: the
// package index, artifact storage, then the GitHub release. Destinations
// already written stay written when a later one fails.
func (p *Project) Upload(assets *Assets, rel *github.RepositoryRelease) error {
	p.deps.Logger.Boldf("Uploading artifacts ...")

	if assets == nil || len(assets.Files) == 0 {
		return fmt.Errorf("%w: build artifacts first", ErrNoAssets)
	}

	if err := p.uploadPackageIndex(assets); err != nil {
		return fmt.Errorf("package index upload failed: %w", err)
	}
	if err := p.uploadStorage(assets); err != nil {
		return fmt.Errorf("storage upload failed: %w", err)
	}
	if err := p.uploadReleaseAssets(assets, rel); err != nil {
		return fmt.Errorf("release asset upload failed: %w", err)
	}

	return nil
}

func (p *Project) uploadPackageIndex(assets *Assets) error {
	p.deps.Logger.Boldf("Uploading artifacts to PyPI ...")
	return p.deps.Toolchain.TwineUpload(assets.All())
}

func (p *Project) uploadStorage(assets *Assets) error {
	if p.deps.Storage == nil {
		p.deps.Logger.Logf("No artifact storage configured, skipping storage upload")
		return nil
	}

	p.deps.Logger.Boldf("Uploading artifacts to storage ...")
	for _, path := range assets.All() {
		key, err := p.deps.Storage.Upload(p.info.Name, path, mimeType(filepath.Base(path)))
		if err != nil {
			return err
		}
		p.deps.Logger.Logf("Stored %s", key)
	}

	return nil
}

func (p *Project) uploadReleaseAssets(assets *Assets, rel *github.RepositoryRelease) error {
	p.deps.Logger.Boldf("Uploading artifacts to GitHub release ...")

	if rel == nil || rel.GetUploadURL() == "" {
		return fmt.Errorf("%w: create the release first", ErrNoReleaseTarget)
	}

	uploadURL := rel.GetUploadURL()
	for _, path := range assets.All() {
		name := filepath.Base(path)
		data, err := p.deps.FS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if _, err := p.repo.UploadReleaseAsset(uploadURL, name, data, mimeType(name)); err != nil {
			return err
		}
	}

	count := 0
	iter := p.repo.ListReleaseAssets(rel.GetID())
	var asset github.ReleaseAsset
	for iter.Next(&asset) {
		count++
	}
	if err := iter.Err(); err != nil {
		return err
	}
	p.deps.Logger.Logf("Release now has %d assets", count)

	return nil
}
