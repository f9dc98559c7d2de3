package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jpl-au/juris/internal/log"
)

// Options lists the values available for the year and chamber filters.
type Options struct {
	Years    []int    `json:"years"`    // newest first
	Chambers []string `json:"chambers"` // alphabetical
}

// FilterOptions returns the distinct years and chambers in the index.
//
// The index is static, so the first successful load is kept for the life of
// the process. A failed load is not kept: the caller receives empty options
// and the error, shows a warning, and the next call tries again.
func (s *Service) FilterOptions(ctx context.Context) (Options, error) {
	s.filtersMu.Lock()
	defer s.filtersMu.Unlock()

	if s.filters != nil {
		return *s.filters, nil
	}

	opts, err := s.loadFilterOptions(ctx)
	log.Event("search", "filters").
		Detail("years", len(opts.Years)).
		Detail("chambers", len(opts.Chambers)).
		Write(err)
	if err != nil {
		return Options{Years: []int{}, Chambers: []string{}}, err
	}
	s.filters = &opts
	return opts, nil
}

func (s *Service) loadFilterOptions(ctx context.Context) (Options, error) {
	st, err := s.mgr.Get(ctx)
	if err != nil {
		return Options{}, err
	}

	var opts Options
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		years, err := st.Years(ctx)
		opts.Years = years
		return err
	})
	g.Go(func() error {
		chambers, err := st.Chambers(ctx)
		opts.Chambers = chambers
		return err
	})
	if err := g.Wait(); err != nil {
		return Options{}, err
	}
	if opts.Years == nil {
		opts.Years = []int{}
	}
	if opts.Chambers == nil {
		opts.Chambers = []string{}
	}
	return opts, nil
}
