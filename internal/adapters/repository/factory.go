package repository

import (
	"net/http"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
)

var _ ports.RepositoryFactory = (*Factory)(nil)

// Factory builds repository sets from build options.
type Factory struct {
	client *http.Client
}

// NewFactory creates a Factory whose remote sources use client.
func NewFactory(client *http.Client) *Factory {
	return &Factory{client: client}
}

// New returns the find-links locations in order, followed by the package index when PyPI is enabled.
func (f *Factory) New(opts domain.BuildOptions) ports.Repository {
	sources := make([]Source, 0, len(opts.FindLinks)+1)
	for _, link := range opts.FindLinks {
		if isRemote(link) {
			sources = append(sources, NewFindLinksPage(f.client, link))
		} else {
			sources = append(sources, NewLocal(link))
		}
	}
	if opts.PyPI && opts.IndexURL != "" {
		sources = append(sources, NewIndex(f.client, opts.IndexURL))
	}
	return NewSet(NewDownloader(f.client), sources...)
}
