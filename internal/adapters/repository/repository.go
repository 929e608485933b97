// Package repository finds wheel and egg distributions in find-links locations and package indexes.
package repository

import (
	"context"
	"strings"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
)

// Source lists the candidate distributions one location offers for a requirement.
type Source interface {
	Candidates(ctx context.Context, req domain.Requirement) ([]domain.Distribution, error)
}

var _ ports.Repository = (*Set)(nil)

// Set implements ports.Repository over an ordered list of sources.
type Set struct {
	sources    []Source
	downloader *Downloader
}

// NewSet creates a repository that consults sources in order.
func NewSet(downloader *Downloader, sources ...Source) *Set {
	return &Set{sources: sources, downloader: downloader}
}

// Find returns the highest version compatible with identity that satisfies req.
// Between equal versions earlier sources win, and wheels win over eggs.
// Returns nil, nil if not found.
func (s *Set) Find(ctx context.Context, req domain.Requirement, identity domain.Identity) (*domain.Distribution, error) {
	var best *domain.Distribution

	for _, source := range s.sources {
		candidates, err := source.Candidates(ctx, req)
		if err != nil {
			return nil, err
		}

		for i := range candidates {
			candidate := candidates[i]
			if !candidate.Satisfies(req) || !candidate.CompatibleWith(identity) {
				continue
			}
			if best == nil || better(candidate, *best) {
				best = &candidate
			}
		}
	}

	return best, nil
}

// Fetch returns a local path for dist, downloading remote distributions below cacheDir.
func (s *Set) Fetch(ctx context.Context, dist domain.Distribution, cacheDir string) (string, error) {
	if !isRemote(dist.Location) {
		return strings.TrimPrefix(dist.Location, "file://"), nil
	}
	return s.downloader.Download(ctx, dist, cacheDir)
}

func better(candidate, current domain.Distribution) bool {
	cv, err := domain.ParseVersion(candidate.Version)
	if err != nil {
		return false
	}
	bv, err := domain.ParseVersion(current.Version)
	if err != nil {
		return true
	}

	if !cv.Equal(bv) {
		return cv.GreaterThan(bv)
	}
	return candidate.Kind == domain.KindWheel && current.Kind != domain.KindWheel
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
