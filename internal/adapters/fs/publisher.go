package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Publisher = (*Publisher)(nil)

// Publisher writes files next to their destination and renames them into place.
type Publisher struct{}

// NewPublisher creates a new Publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish removes a stale "<output>~", lets write fill it and renames it onto output.
// Two builds publishing the same output concurrently share the temporary path.
func (p *Publisher) Publish(output string, write func(tmp string) error) error {
	tmp := output + domain.TempSuffix

	if err := os.Remove(tmp); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", tmp)
	}

	if err := write(tmp); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, output); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", output)
	}
	return nil
}
