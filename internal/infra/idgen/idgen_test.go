package idgen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"planner/config"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"
	mockRepo "planner/internal/mocks/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestMaxGenerator_Next(t *testing.T) {
	tests := []struct {
		name    string
		kind    entity.IDKind
		current string
		want    string
	}{
		{name: "first payment", kind: entity.IDKindPayment, current: "", want: "PAY001"},
		{name: "next payment", kind: entity.IDKindPayment, current: "PAY007", want: "PAY008"},
		{name: "overflows width", kind: entity.IDKindPayment, current: "PAY999", want: "PAY1000"},
		{name: "first customer", kind: entity.IDKindCustomer, current: "", want: "CUS01"},
		{name: "next admin", kind: entity.IDKindAdmin, current: "AD09", want: "AD10"},
		{name: "keeps wider width", kind: entity.IDKindEvent, current: "EV0041", want: "EV0042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			seq := mockRepo.NewMockSequenceRepository(t)
			seq.EXPECT().MaxBusinessID(ctx, tt.kind).Return(tt.current, nil)

			got, err := NewMaxGenerator(seq).Next(ctx, tt.kind)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaxGenerator_Next_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown kind", func(t *testing.T) {
		seq := mockRepo.NewMockSequenceRepository(t)
		_, err := NewMaxGenerator(seq).Next(ctx, entity.IDKind("invoice"))
		assert.Error(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		seq := mockRepo.NewMockSequenceRepository(t)
		seq.EXPECT().MaxBusinessID(ctx, entity.IDKindPayment).Return("", errors.New("db down"))

		_, err := NewMaxGenerator(seq).Next(ctx, entity.IDKindPayment)
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("unparsable maximum", func(t *testing.T) {
		seq := mockRepo.NewMockSequenceRepository(t)
		seq.EXPECT().MaxBusinessID(ctx, entity.IDKindPayment).Return("PAYX", nil)

		_, err := NewMaxGenerator(seq).Next(ctx, entity.IDKindPayment)
		assert.Error(t, err)
	})
}

func TestNew_SelectsStrategy(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	newParams := func(t *testing.T, ids *config.IDsConfig, redisCfg *config.RedisConfig) Params {
		return Params{
			Lifecycle: fxtest.NewLifecycle(t),
			Config:    &config.Config{IDs: ids, Redis: redisCfg},
			Logger:    logger,
			Sequences: mockRepo.NewMockSequenceRepository(t),
		}
	}

	gen, err := New(newParams(t, nil, nil))
	require.NoError(t, err)
	assert.IsType(t, &maxGenerator{}, gen)

	_, err = New(newParams(t, &config.IDsConfig{Strategy: config.IDStrategyCounter}, nil))
	assert.ErrorContains(t, err, "redis.addr")

	gen, err = New(newParams(t, &config.IDsConfig{Strategy: config.IDStrategyCounter}, &config.RedisConfig{Addr: "localhost:6379"}))
	require.NoError(t, err)
	assert.IsType(t, &counterGenerator{}, gen)

	_, err = New(newParams(t, &config.IDsConfig{Strategy: "uuid"}, nil))
	assert.ErrorContains(t, err, "unknown id strategy")
}

func newCounterGenerator(t *testing.T, seq *mockRepo.MockSequenceRepository) (*miniredis.Miniredis, service.IDGenerator) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewCounterGenerator(client, seq, "test:ids")
}

func TestCounterGenerator_SeedsFromTableMaximum(t *testing.T) {
	ctx := context.Background()
	seq := mockRepo.NewMockSequenceRepository(t)
	seq.EXPECT().MaxBusinessID(ctx, entity.IDKindPayment).Return("PAY007", nil).Once()
	mr, gen := newCounterGenerator(t, seq)

	first, err := gen.Next(ctx, entity.IDKindPayment)
	require.NoError(t, err)
	second, err := gen.Next(ctx, entity.IDKindPayment)
	require.NoError(t, err)

	assert.Equal(t, "PAY008", first)
	assert.Equal(t, "PAY009", second)
	stored, err := mr.Get("test:ids:" + string(entity.IDKindPayment))
	require.NoError(t, err)
	assert.Equal(t, "9", stored)
}

func TestCounterGenerator_EmptyTableStartsAtOne(t *testing.T) {
	ctx := context.Background()
	seq := mockRepo.NewMockSequenceRepository(t)
	seq.EXPECT().MaxBusinessID(ctx, entity.IDKindCustomer).Return("", nil).Once()
	_, gen := newCounterGenerator(t, seq)

	got, err := gen.Next(ctx, entity.IDKindCustomer)

	require.NoError(t, err)
	assert.Equal(t, "CUS01", got)
}

func TestCounterGenerator_ExistingCounterSkipsSeeding(t *testing.T) {
	ctx := context.Background()
	seq := mockRepo.NewMockSequenceRepository(t)
	mr, gen := newCounterGenerator(t, seq)
	require.NoError(t, mr.Set("test:ids:"+string(entity.IDKindEvent), "41"))

	got, err := gen.Next(ctx, entity.IDKindEvent)

	require.NoError(t, err)
	assert.Equal(t, "EV042", got)
}

func TestCounterGenerator_ConcurrentCallersGetDistinctKeys(t *testing.T) {
	ctx := context.Background()
	seq := mockRepo.NewMockSequenceRepository(t)
	seq.EXPECT().MaxBusinessID(mock.Anything, entity.IDKindPayment).Return("PAY010", nil)
	_, gen := newCounterGenerator(t, seq)

	const callers = 20
	keys := make([]string, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, err := gen.Next(ctx, entity.IDKindPayment)
			assert.NoError(t, err)
			keys[i] = key
		}()
	}
	wg.Wait()

	want := make([]string, 0, callers)
	for n := 11; n <= 10+callers; n++ {
		want = append(want, fmt.Sprintf("PAY%03d", n))
	}
	assert.ElementsMatch(t, want, keys)
}

func TestCounterGenerator_RedisUnavailable(t *testing.T) {
	ctx := context.Background()
	seq := mockRepo.NewMockSequenceRepository(t)
	mr, gen := newCounterGenerator(t, seq)
	mr.Close()

	_, err := gen.Next(ctx, entity.IDKindPayment)

	assert.ErrorContains(t, err, "failed to check payment counter")
}
