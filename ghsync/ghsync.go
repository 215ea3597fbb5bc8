// Package ghsync pushes table files to a GitHub repository through the
// contents API. It implements the shop's Syncer contract: one push per
// successful local write, carrying the entire post-write file content. A
// failed push never invalidates the local write.
package ghsync

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
)

// Environment variables read by FromEnv.
const (
	EnvToken  = "BQT_GITHUB_TOKEN"
	EnvRepo   = "BQT_GITHUB_REPO"
	EnvBranch = "BQT_GITHUB_BRANCH"
)

const defaultAPI = "https://api.github.com"

// Client pushes files into one repository.
type Client struct {
	api    string // API base URL, overridable for tests
	repo   string // "owner/name"
	branch string
	dir    string // path prefix inside the repository
	token  string
	http   *http.Client
}

// New creates a client for the given "owner/name" repository. Files are
// pushed under data/ on the master branch, matching the layout the shop
// reads locally.
func New(repo, token string) *Client {
	return &Client{
		api:    defaultAPI,
		repo:   repo,
		branch: "master",
		dir:    "data",
		token:  token,
		http:   http.DefaultClient,
	}
}

// FromEnv builds a client from the environment, or nil when no repository
// is configured: the shop then operates purely locally.
func FromEnv() *Client {
	repo := os.Getenv(EnvRepo)
	if repo == "" {
		return nil
	}
	c := New(repo, os.Getenv(EnvToken))
	if branch := os.Getenv(EnvBranch); branch != "" {
		c.branch = branch
	}
	return c
}

// Push creates or updates one file with the given content and commit
// message.
func (c *Client) Push(name string, content []byte, message string) error {
	target := path.Join(c.dir, name)

	// The contents API requires the current blob SHA to update an
	// existing file; absence means the file is created.
	sha, err := c.sha(target)
	if err != nil {
		return err
	}

	body := struct {
		Message string `json:"message"`
		Content string `json:"content"`
		Branch  string `json:"branch"`
		SHA     string `json:"sha,omitempty"`
	}{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  c.branch,
		SHA:     sha,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPut, c.contentsURL(target), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.authorize(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("cannot push %s to %s: %s", target, c.repo, resp.Status)
	}
	return nil
}

// sha returns the current blob SHA of the file, or "" when the file does
// not exist yet.
func (c *Client) sha(target string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.contentsURL(target)+"?ref="+url.QueryEscape(c.branch), nil)
	if err != nil {
		return "", err
	}
	c.authorize(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", nil
	case resp.StatusCode >= 300:
		return "", fmt.Errorf("cannot stat %s in %s: %s", target, c.repo, resp.Status)
	}

	var blob struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&blob); err != nil {
		return "", err
	}
	return blob.SHA, nil
}

func (c *Client) contentsURL(target string) string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", c.api, c.repo, target)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
}
