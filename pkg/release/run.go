package release

import "path/filepath"

// Run executes the full release flow: finalize the version, optionally test,
// build and verify the artifacts, commit and tag, publish the release, upload
// everywhere, then open the next development cycle.
func (p *Project) Run(opts RunOptions) error {
	if err := p.Finalize(); err != nil {
		return err
	}
	if opts.Tox {
		if err := p.RunTests(); err != nil {
			return err
		}
	}
	assets, err := p.Build(opts.SignAssets)
	if err != nil {
		return err
	}
	if err := p.Verify(assets); err != nil {
		return err
	}
	if err := p.CommitAndTag(); err != nil {
		return err
	}
	rel, err := p.PublishRelease()
	if err != nil {
		return err
	}
	if err := p.Upload(assets, rel); err != nil {
		return err
	}
	return p.BeginDevelopment()
}

// RunTests runs the project's tox suite. Projects without a tox.ini are
// skipped silently.
func (p *Project) RunTests() error {
	exists, err := p.deps.FS.Exists(filepath.Join(p.directory, "tox.ini"))
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	p.deps.Logger.Boldf("Running tox ...")
	return p.deps.Toolchain.RunTox(p.directory)
}
