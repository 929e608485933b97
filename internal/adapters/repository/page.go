package repository

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
)

const httpClientTimeout = 30 * time.Second

// NewHTTPClient returns the client used for repository pages and downloads.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpClientTimeout}
}

// Page is a remote HTML page whose links point at distributions. It serves both remote
// find-links pages and the per-project pages of a simple package index.
type Page struct {
	client *http.Client
	link   func(req domain.Requirement) string
}

// NewFindLinksPage creates a source for a remote find-links page.
func NewFindLinksPage(client *http.Client, pageURL string) *Page {
	return &Page{
		client: client,
		link:   func(domain.Requirement) string { return pageURL },
	}
}

// NewIndex creates a source for a simple package index rooted at indexURL.
func NewIndex(client *http.Client, indexURL string) *Page {
	base := strings.TrimSuffix(indexURL, "/") + "/"
	return &Page{
		client: client,
		link:   func(req domain.Requirement) string { return base + req.Name + "/" },
	}
}

// Candidates lists the distributions linked from the page that name req's project.
// A page that does not exist offers no candidates.
func (p *Page) Candidates(ctx context.Context, req domain.Requirement) ([]domain.Distribution, error) {
	pageURL := p.link(req)

	body, found, err := p.fetch(ctx, pageURL)
	if err != nil || !found {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryParseFailed.Error()), "url", pageURL)
	}

	hrefs, err := parseLinks(body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryParseFailed.Error()), "url", pageURL)
	}

	var out []domain.Distribution
	for _, href := range hrefs {
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		target := base.ResolveReference(ref)
		target.Fragment = ""

		filename, err := url.PathUnescape(path.Base(target.Path))
		if err != nil {
			continue
		}

		dist, ok := domain.ParseDistribution(filename, target.String())
		if !ok || dist.Project != req.Name {
			continue
		}
		out = append(out, dist)
	}
	return out, nil
}

func (p *Page) fetch(ctx context.Context, pageURL string) (io.Reader, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrRepositoryRequestFailed.Error()), "url", pageURL)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrRepositoryRequestFailed.Error()), "url", pageURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrRepositoryRequestFailed, "status_code", resp.StatusCode)
		return nil, false, zerr.With(apiErr, "url", pageURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrRepositoryRequestFailed.Error()), "url", pageURL)
	}
	return bytes.NewReader(data), true, nil
}

// parseLinks returns the href of every anchor in the document, in document order.
func parseLinks(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var hrefs []string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val != "" {
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	return hrefs, nil
}
