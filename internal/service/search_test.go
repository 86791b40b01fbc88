package service_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/mockgen"
	"github.com/pkordes/guidebook/internal/service"
)

// gatedGenerator blocks each Generate call until the test releases it,
// so tests can control the order in which concurrent searches finish.
type gatedGenerator struct {
	entered map[string]chan struct{}
	release map[string]chan struct{}
}

func newGatedGenerator(cities ...string) *gatedGenerator {
	g := &gatedGenerator{entered: map[string]chan struct{}{}, release: map[string]chan struct{}{}}
	for _, c := range cities {
		g.entered[c] = make(chan struct{})
		g.release[c] = make(chan struct{})
	}
	return g
}

func (g *gatedGenerator) Generate(ctx context.Context, q mockgen.Query) ([]domain.BusinessRecord, error) {
	close(g.entered[q.City])
	select {
	case <-g.release[q.City]:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return []domain.BusinessRecord{{Name: q.City}}, nil
}

var _ service.RecordGenerator = (*gatedGenerator)(nil)

func query(city string, n int) mockgen.Query {
	return mockgen.Query{
		Category: domain.CategoryEat,
		Region:   "North America",
		Country:  "United States",
		City:     city,
		Count:    n,
	}
}

func TestSearchService_Search_ScenarioA(t *testing.T) {
	gen := mockgen.New(rand.New(rand.NewPCG(1, 2)), 0)
	svc := service.NewSearchService(gen, service.NewResultBoard())

	batch, err := svc.Search(context.Background(), "session", query("New York", 10))

	require.NoError(t, err)
	assert.Len(t, batch.Records, 10)
	assert.Equal(t, uint64(1), batch.Seq)

	latest, err := svc.Latest(context.Background(), "session")
	require.NoError(t, err)
	assert.Equal(t, batch, latest)
}

func TestSearchService_Search_ScenarioB_CanadaRejected(t *testing.T) {
	gen := newGatedGenerator() // any call would panic on the nil channel close
	svc := service.NewSearchService(gen, service.NewResultBoard())
	q := query("Toronto", 10)
	q.Country = "Canada"

	_, err := svc.Search(context.Background(), "session", q)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "unsupported country")
	_, err = svc.Latest(context.Background(), "session")
	assert.ErrorIs(t, err, domain.ErrNotFound, "nothing was generated")
}

func TestSearchService_Search_Anonymous(t *testing.T) {
	gen := mockgen.New(rand.New(rand.NewPCG(1, 2)), 0)
	svc := service.NewSearchService(gen, service.NewResultBoard())

	batch, err := svc.Search(context.Background(), "", query("Austin", 3))

	require.NoError(t, err)
	assert.Zero(t, batch.Seq)
	assert.Len(t, batch.Records, 3)
}

// An older search that finishes after a newer one still answers its own
// caller, but the board keeps the newer batch.
func TestSearchService_Search_StaleResultDoesNotOverwrite(t *testing.T) {
	gen := newGatedGenerator("Boston", "Denver")
	svc := service.NewSearchService(gen, service.NewResultBoard())
	ctx := context.Background()

	type result struct {
		batch service.Batch
		err   error
	}
	run := func(city string) <-chan result {
		out := make(chan result, 1)
		go func() {
			b, err := svc.Search(ctx, "s", query(city, 1))
			out <- result{b, err}
		}()
		return out
	}

	older := run("Boston")
	<-gen.entered["Boston"] // token 1 issued
	newer := run("Denver")
	<-gen.entered["Denver"] // token 2 issued

	close(gen.release["Denver"])
	n := <-newer
	require.NoError(t, n.err)

	close(gen.release["Boston"])
	o := <-older
	require.NoError(t, o.err)
	assert.Equal(t, "Boston", o.batch.Records[0].Name, "the stale caller still gets its own records")
	assert.Equal(t, uint64(1), o.batch.Seq)

	latest, err := svc.Latest(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), latest.Seq)
	assert.Equal(t, "Denver", latest.Records[0].Name)
}

func TestSearchService_Search_ContextCancelled(t *testing.T) {
	gen := mockgen.New(rand.New(rand.NewPCG(1, 2)), time.Hour)
	svc := service.NewSearchService(gen, service.NewResultBoard())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Search(ctx, "s", query("Miami", 5))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchService_Forget(t *testing.T) {
	gen := mockgen.New(rand.New(rand.NewPCG(1, 2)), 0)
	svc := service.NewSearchService(gen, service.NewResultBoard())
	_, err := svc.Search(context.Background(), "s", query("Seattle", 2))
	require.NoError(t, err)

	svc.Forget("s")

	_, err = svc.Latest(context.Background(), "s")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
