package search

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jpl-au/juris/internal/config"
	"github.com/jpl-au/juris/internal/index"
	"github.com/jpl-au/juris/internal/query"
	"github.com/jpl-au/juris/internal/store"
	"github.com/jpl-au/juris/internal/store/storetest"
	"github.com/jpl-au/juris/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newService builds a fixture index and a service over it.
func newService(t *testing.T, cfg *config.Config, rulings ...store.Ruling) *Service {
	t.Helper()
	svc := New(index.New(storetest.Build(t, rulings...)), cfg)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func names(results []store.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.FileName
	}
	return out
}

func TestSearch_EmptyQuery(t *testing.T) {
	var opened bool
	mgr := index.New("unused.db", index.WithOpener(func(string) (*store.SQLiteStore, error) {
		opened = true
		return nil, fmt.Errorf("should not open")
	}))
	svc := New(mgr, nil)

	for _, q := range []string{"", "   ", "\t\n"} {
		resp, err := svc.Search(context.Background(), Request{Query: q})
		assert.ErrorIs(t, err, ErrEmptyQuery)
		assert.NotNil(t, resp.Results)
		assert.Empty(t, resp.Results)
	}
	assert.False(t, opened, "empty queries must not touch the index")
}

func TestSearch_StoreUnavailable(t *testing.T) {
	svc := New(index.New(filepath.Join(t.TempDir(), "missing.db")), nil)

	resp, err := svc.Search(context.Background(), Request{Query: "icms"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestSearch_Failed(t *testing.T) {
	// A zero-length file opens as an empty database with no FTS table.
	path := filepath.Join(t.TempDir(), "empty.db")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	svc := New(index.New(path), nil)
	defer svc.Close()

	resp, err := svc.Search(context.Background(), Request{Query: "icms"})
	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestSearch_PrefixAndAnd(t *testing.T) {
	svc := newService(t, nil,
		storetest.Ruling(1, 2020, "1ª Câmara", "cassação da inscrição estadual"),
		storetest.Ruling(2, 2021, "1ª Câmara", "pedido de cassação do regime especial"),
		storetest.Ruling(3, 2022, "2ª Câmara", "inscrição deferida"),
	)
	ctx := context.Background()

	resp, err := svc.Search(ctx, Request{Query: "cassação"})
	require.NoError(t, err)
	assert.Equal(t, []string{"acordao-00002.pdf", "acordao-00001.pdf"}, names(resp.Results))
	assert.Equal(t, `texto_completo : ("cassação"*)`, resp.Compiled.Expr)
	assert.False(t, resp.Truncated)

	resp, err = svc.Search(ctx, Request{Query: "cassação inscrição"})
	require.NoError(t, err)
	assert.Equal(t, []string{"acordao-00001.pdf"}, names(resp.Results))
}

func TestSearch_YearFilter(t *testing.T) {
	svc := newService(t, nil,
		storetest.Ruling(1, 2019, "A", "icms"),
		storetest.Ruling(2, 2020, "A", "icms"),
		storetest.Ruling(3, 2021, "B", "icms"),
		storetest.Ruling(4, 2022, "B", "icms"),
	)

	resp, err := svc.Search(context.Background(), Request{Query: "icms", Years: []int{2020, 2021}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	for _, r := range resp.Results {
		assert.Contains(t, []int{2020, 2021}, r.Year)
	}
}

func TestSearch_CapAndTruncated(t *testing.T) {
	svc := newService(t, nil, storetest.Many(250, 2020, "A", "icms")...)
	ctx := context.Background()

	resp, err := svc.Search(ctx, Request{Query: "icms"})
	require.NoError(t, err)
	assert.Len(t, resp.Results, query.MaxResults)
	assert.True(t, resp.Truncated)
	assert.Equal(t, "acordao-00250.pdf", resp.Results[0].FileName)

	resp, err = svc.Search(ctx, Request{Query: "icms", Limit: 5000})
	require.NoError(t, err)
	assert.Len(t, resp.Results, query.MaxResults)

	resp, err = svc.Search(ctx, Request{Query: "icms", Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"acordao-00250.pdf", "acordao-00249.pdf", "acordao-00248.pdf"}, names(resp.Results))
}

func TestSearch_ConfiguredLimitAndSnippet(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Set("search.max_results", "2"))
	require.NoError(t, cfg.Set("search.snippet_open", "["))
	require.NoError(t, cfg.Set("search.snippet_close", "]"))

	svc := newService(t, cfg, storetest.Many(5, 2020, "A", "multa isolada")...)

	resp, err := svc.Search(context.Background(), Request{Query: "multa"})
	require.NoError(t, err)
	assert.Len(t, resp.Results, 2)
	assert.Equal(t, 2, resp.Limit)
	assert.Contains(t, resp.Results[0].Snippet, "[multa]")
}

func TestSearch_Memo(t *testing.T) {
	svc := newService(t, nil, storetest.Ruling(1, 2020, "A", "icms"), storetest.Ruling(2, 2021, "B", "icms"))
	ctx := context.Background()

	first, err := svc.Search(ctx, Request{Query: "icms", Years: []int{2021, 2020}})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	// Whitespace and selection order do not change the request.
	second, err := svc.Search(ctx, Request{Query: "  icms ", Years: []int{2020, 2021, 2020}})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, "  icms ", second.Query)
	assert.Equal(t, first.Results, second.Results)

	// Mutating a returned slice does not corrupt the memo.
	second.Results[0].FileName = "changed"
	third, err := svc.Search(ctx, Request{Query: "icms", Years: []int{2020, 2021}})
	require.NoError(t, err)
	assert.Equal(t, first.Results, third.Results)

	other, err := svc.Search(ctx, Request{Query: "icms", Years: []int{2020}})
	require.NoError(t, err)
	assert.False(t, other.Cached)
}

func TestSearch_MemoDisabled(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Set("cache.size", "0"))
	svc := newService(t, cfg, storetest.Ruling(1, 2020, "A", "icms"))

	for range 2 {
		resp, err := svc.Search(context.Background(), Request{Query: "icms"})
		require.NoError(t, err)
		assert.False(t, resp.Cached)
	}
}

func TestSearch_FailuresNotMemoised(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	svc := New(index.New(path), nil)
	defer svc.Close()

	for range 2 {
		resp, err := svc.Search(context.Background(), Request{Query: "icms"})
		assert.ErrorIs(t, err, ErrSearchFailed)
		assert.False(t, resp.Cached)
	}
}

func TestSearch_Concurrent(t *testing.T) {
	svc := newService(t, nil, storetest.Many(30, 2020, "A", "icms substituição")...)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q := "icms"
			if i%2 == 0 {
				q = "substituição"
			}
			resp, err := svc.Search(context.Background(), Request{Query: q})
			assert.NoError(t, err)
			assert.Len(t, resp.Results, 30)
		}()
	}
	wg.Wait()
}

func TestMemoKey(t *testing.T) {
	c, err := query.Compile("icms")
	require.NoError(t, err)

	a := memoKey(c, query.Filters{Chambers: []string{"a,b"}}, 10)
	b := memoKey(c, query.Filters{Chambers: []string{"a", "b"}}, 10)
	assert.NotEqual(t, a, b)

	assert.Equal(t,
		memoKey(c, query.Filters{Years: []int{1, 2}}, 10),
		memoKey(c, query.Filters{Years: []int{2, 1}}, 10))
	assert.NotEqual(t,
		memoKey(c, query.Filters{}, 10),
		memoKey(c, query.Filters{}, 11))
}

func TestRuling(t *testing.T) {
	want := storetest.Ruling(3, 2021, "Conselho Pleno", "inteiro teor")
	svc := newService(t, nil, want)

	got, err := svc.Ruling(context.Background(), want.FileName)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	_, err = svc.Ruling(context.Background(), "nope.pdf")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Ruling(context.Background(), "../"+want.FileName)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, validate.ErrInvalidFileName)
}

func TestFilterOptions(t *testing.T) {
	svc := newService(t, nil,
		storetest.Ruling(1, 2019, "Conselho Pleno", "a"),
		storetest.Ruling(2, 2021, "1ª Câmara", "b"),
		storetest.Ruling(3, 2020, "1ª Câmara", "c"),
	)

	opts, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2021, 2020, 2019}, opts.Years)
	assert.Equal(t, []string{"1ª Câmara", "Conselho Pleno"}, opts.Chambers)

	again, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, opts, again)
}

func TestFilterOptions_Unavailable(t *testing.T) {
	svc := New(index.New(filepath.Join(t.TempDir(), "missing.db")), nil)

	opts, err := svc.FilterOptions(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, opts.Years)
	assert.Empty(t, opts.Chambers)
	assert.NotNil(t, opts.Years)
}

func TestStats(t *testing.T) {
	svc := newService(t, nil,
		storetest.Ruling(1, 2019, "A", "a"),
		storetest.Ruling(2, 2022, "B", "b"),
	)

	st, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.Rulings)
	assert.Equal(t, 2019, st.OldestYear)
	assert.Equal(t, 2022, st.NewestYear)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "empty", outcome(ErrEmptyQuery, false))
	assert.Equal(t, "unavailable", outcome(fmt.Errorf("%w: x", ErrStoreUnavailable), false))
	assert.Equal(t, "failed", outcome(fmt.Errorf("%w: x", ErrSearchFailed), false))
	assert.Equal(t, "cached", outcome(nil, true))
	assert.Equal(t, "ok", outcome(nil, false))
}

func TestSearch_CancelledCallerDoesNotFailOthers(t *testing.T) {
	path := storetest.Build(t, storetest.Ruling(1, 2020, "A", "icms"), storetest.Ruling(2, 2021, "B", "icms"))

	release := make(chan struct{})
	started := make(chan struct{}, 1)
	mgr := index.New(path, index.WithOpener(func(p string) (*store.SQLiteStore, error) {
		started <- struct{}{}
		<-release
		return store.Open(p)
	}))
	svc := New(mgr, nil)
	t.Cleanup(func() { svc.Close() })

	// The first caller starts the shared execution, which blocks opening
	// the index, and then gives up.
	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Search(ctx, Request{Query: "icms"})
		firstErr <- err
	}()
	<-started

	secondResp := make(chan Response, 1)
	secondErr := make(chan error, 1)
	go func() {
		resp, err := svc.Search(context.Background(), Request{Query: "icms"})
		secondResp <- resp
		secondErr <- err
	}()
	time.Sleep(20 * time.Millisecond) // let the second caller join the execution

	cancel()
	err := <-firstErr
	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	require.NoError(t, <-secondErr)
	assert.Equal(t, []string{"acordao-00002.pdf", "acordao-00001.pdf"}, names((<-secondResp).Results))

	// The execution completed after its first caller left, and was kept.
	again, err := svc.Search(context.Background(), Request{Query: "icms"})
	require.NoError(t, err)
	assert.True(t, again.Cached)
}
