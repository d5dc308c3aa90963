package forge

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-github/v62/github"
)

// Repo addresses one GitHub repository. It is stateless and safe to share.
type Repo struct {
	client *Client
	owner  string
	name   string
}

// Repo returns a handle on the given repository.
func (c *Client) Repo(owner, name string) *Repo {
	return &Repo{client: c, owner: owner, name: name}
}

// FullName returns the repository in owner/name form.
func (r *Repo) FullName() string {
	return r.owner + "/" + r.name
}

func (r *Repo) endpoint(segments ...string) *Endpoint {
	return r.client.Endpoint(append([]string{"repos", r.owner, r.name}, segments...)...)
}

// Get fetches the repository record.
func (r *Repo) Get() (*github.Repository, error) {
	var repo github.Repository
	if err := r.endpoint().Get(&repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

type topicsBody struct {
	Names []string `json:"names"`
}

// Topics returns the repository's topics.
func (r *Repo) Topics() ([]string, error) {
	var topics topicsBody
	if err := r.endpoint("topics").Get(&topics); err != nil {
		return nil, err
	}
	return topics.Names, nil
}

// ReplaceTopics replaces the repository's topics with the given set.
func (r *Repo) ReplaceTopics(names []string) error {
	return r.endpoint("topics").Put(topicsBody{Names: names}, nil)
}

// CreateReleaseParams contains parameters for CreateRelease.
type CreateReleaseParams struct {
	TagName string
	Name    string
	Body    string
	Draft   bool
}

// CreateRelease creates a release for an already pushed tag.
func (r *Repo) CreateRelease(params CreateReleaseParams) (*github.RepositoryRelease, error) {
	payload := &github.RepositoryRelease{
		TagName: github.String(params.TagName),
		Name:    github.String(params.Name),
		Body:    github.String(params.Body),
		Draft:   github.Bool(params.Draft),
	}
	var release github.RepositoryRelease
	if err := r.endpoint("releases").Post(payload, &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// ReleaseByTag fetches the release associated with a tag, returning nil when
// the tag has no release.
func (r *Repo) ReleaseByTag(tag string) (*github.RepositoryRelease, error) {
	resp, err := r.endpoint("releases", "tags", url.PathEscape(tag)).GetRaw()
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	var release github.RepositoryRelease
	if err := decodeBody(resp, &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// UploadReleaseAsset uploads one file as a release asset. uploadURL is the
// release's upload URL template, e.g. ".../assets{?name,label}".
func (r *Repo) UploadReleaseAsset(uploadURL, name string, data []byte, contentType string) (*github.ReleaseAsset, error) {
	target, err := expandUploadURL(uploadURL, name)
	if err != nil {
		return nil, err
	}
	var asset github.ReleaseAsset
	if err := r.client.EndpointURL(target).PostRaw(data, contentType, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// expandUploadURL strips the URI template suffix from a release upload URL
// and binds the name parameter.
func expandUploadURL(template, name string) (string, error) {
	base := template
	if i := strings.IndexByte(template, '{'); i >= 0 {
		base = template[:i]
	}
	if base == "" {
		return "", ErrNoUploadURL
	}
	return base + "?name=" + url.QueryEscape(name), nil
}

// ListReleaseAssets lazily lists the assets of a release.
func (r *Repo) ListReleaseAssets(releaseID int64) *Iter {
	return r.endpoint("releases", strconv.FormatInt(releaseID, 10), "assets").Paginate()
}

// EnsureLabelParams contains parameters for EnsureLabel.
type EnsureLabelParams struct {
	Name        string
	Color       string
	Description string
}

// EnsureLabel creates the label unless the repository already has one with
// that name. Existing labels are left untouched.
func (r *Repo) EnsureLabel(params EnsureLabelParams) error {
	resp, err := r.endpoint("labels", url.PathEscape(params.Name)).GetRaw()
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		label := &github.Label{
			Name:        github.String(params.Name),
			Color:       github.String(params.Color),
			Description: github.String(params.Description),
		}
		return r.endpoint("labels").Post(label, nil)
	}
	return checkResponse(resp)
}

// CreateRepositoryParams contains parameters for CreateRepository.
type CreateRepositoryParams struct {
	Name                string
	Description         string
	Private             bool
	DeleteBranchOnMerge bool
}

// CreateRepository creates a repository for the authenticated user.
func (c *Client) CreateRepository(params CreateRepositoryParams) (*github.Repository, error) {
	payload := &github.Repository{
		Name:                github.String(params.Name),
		Description:         github.String(params.Description),
		Private:             github.Bool(params.Private),
		DeleteBranchOnMerge: github.Bool(params.DeleteBranchOnMerge),
	}
	var repo github.Repository
	if err := c.Endpoint("user", "repos").Post(payload, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}
