package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletkit/internal/domain"
)

func TestWalletRepository_BalanceReadYourWrites(t *testing.T) {
	repo := NewWalletRepository(&fakeWallet{
		balance: func(context.Context) (decimal.Decimal, error) { return dec("10.50"), nil },
	}, nullLogger())

	assert.Nil(t, repo.Snapshot().Balance)

	got, err := repo.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("10.50")))

	snap := repo.Snapshot()
	require.NotNil(t, snap.Balance)
	assert.True(t, snap.Balance.Equal(got))
}

func TestWalletRepository_FailureKeepsCache(t *testing.T) {
	fail := false
	repo := NewWalletRepository(&fakeWallet{
		balance: func(context.Context) (decimal.Decimal, error) {
			if fail {
				return decimal.Decimal{}, domain.MissingError(500)
			}
			return dec("3"), nil
		},
	}, nullLogger())

	_, err := repo.Balance(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = repo.Balance(context.Background())
	de, ok := domain.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, 500, de.Code)

	snap := repo.Snapshot()
	require.NotNil(t, snap.Balance)
	assert.True(t, snap.Balance.Equal(dec("3")))
}

func TestWalletRepository_CancelAfterCallWritesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := NewWalletRepository(&fakeWallet{
		balance: func(context.Context) (decimal.Decimal, error) {
			// The caller gives up while the response is in flight.
			cancel()
			return dec("99"), nil
		},
	}, nullLogger())

	_, err := repo.Balance(ctx)
	require.Error(t, err)
	de, ok := domain.AsDomainError(err)
	require.True(t, ok)
	assert.True(t, de.IsNetwork())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, repo.Snapshot().Balance)
}

func TestWalletRepository_CallsAreNotSerialised(t *testing.T) {
	const callers = 4
	var entered sync.WaitGroup
	entered.Add(callers)
	release := make(chan struct{})

	repo := NewWalletRepository(&fakeWallet{
		balance: func(context.Context) (decimal.Decimal, error) {
			entered.Done()
			<-release
			return dec("1"), nil
		},
	}, nullLogger())

	var done sync.WaitGroup
	for range callers {
		done.Add(1)
		go func() {
			defer done.Done()
			_, _ = repo.Balance(context.Background())
		}()
	}

	inFlight := make(chan struct{})
	go func() { entered.Wait(); close(inFlight) }()
	select {
	case <-inFlight:
	case <-time.After(5 * time.Second):
		t.Fatal("calls did not overlap")
	}
	close(release)
	done.Wait()
}

func TestWalletRepository_DetailsWritesAsOneUnit(t *testing.T) {
	a := domain.WalletDetails{
		Balance:    dec("1"),
		Investment: dec("1"),
		Cards:      []domain.Card{{ID: int64p(1), Number: "1111"}},
	}
	b := domain.WalletDetails{
		Balance:    dec("2"),
		Investment: dec("2"),
		Cards:      []domain.Card{{ID: int64p(2), Number: "2222"}},
	}
	var (
		mu   sync.Mutex
		flip bool
	)
	repo := NewWalletRepository(&fakeWallet{
		details: func(context.Context) (domain.WalletDetails, error) {
			mu.Lock()
			defer mu.Unlock()
			flip = !flip
			if flip {
				return a, nil
			}
			return b, nil
		},
	}, nullLogger())

	stop := make(chan struct{})
	var readers sync.WaitGroup
	for range 4 {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				s := repo.Snapshot()
				if s.Balance == nil {
					continue
				}
				// Fields must come from the same response.
				if !assert.True(t, s.Balance.Equal(*s.Investment)) {
					return
				}
				if !assert.Len(t, s.Cards, 1) {
					return
				}
				assert.Equal(t, s.Balance.IntPart(), *s.Cards[0].ID)
			}
		}()
	}

	var writers sync.WaitGroup
	for range 8 {
		writers.Add(1)
		go func() {
			defer writers.Done()
			for range 50 {
				_, err := repo.Details(context.Background())
				assert.NoError(t, err)
			}
		}()
	}
	writers.Wait()
	close(stop)
	readers.Wait()

	final := repo.Snapshot()
	require.NotNil(t, final.Balance)
	assert.True(t, final.Balance.Equal(dec("1")) || final.Balance.Equal(dec("2")))
}

func TestWalletRepository_AddCard(t *testing.T) {
	next := int64(10)
	repo := NewWalletRepository(&fakeWallet{
		cards: func(context.Context) ([]domain.Card, error) {
			return []domain.Card{{ID: int64p(1), Number: "4111"}}, nil
		},
		addCard: func(_ context.Context, c domain.Card) (domain.Card, error) {
			next++
			c.ID = int64p(next)
			return c, nil
		},
	}, nullLogger())
	ctx := context.Background()

	t.Run("unknown list stays unknown", func(t *testing.T) {
		added, err := repo.AddCard(ctx, domain.Card{Number: "5500", Type: domain.CardDebit})
		require.NoError(t, err)

		snap := repo.Snapshot()
		assert.Nil(t, snap.Cards)
		require.NotNil(t, snap.CurrentCard)
		assert.True(t, snap.CurrentCard.SameAs(added))
	})

	t.Run("known list is appended", func(t *testing.T) {
		_, err := repo.Cards(ctx)
		require.NoError(t, err)

		added, err := repo.AddCard(ctx, domain.Card{Number: "3700", Type: domain.CardCredit})
		require.NoError(t, err)

		snap := repo.Snapshot()
		require.Len(t, snap.Cards, 2)
		assert.Equal(t, "4111", snap.Cards[0].Number)
		assert.True(t, snap.Cards[1].SameAs(added))
		assert.True(t, snap.CurrentCard.SameAs(added))
	})
}

func TestWalletRepository_SnapshotIsACopy(t *testing.T) {
	repo := NewWalletRepository(&fakeWallet{
		cards: func(context.Context) ([]domain.Card, error) {
			return []domain.Card{{ID: int64p(1), Number: "4111"}}, nil
		},
	}, nullLogger())

	fetched, err := repo.Cards(context.Background())
	require.NoError(t, err)
	fetched[0].Number = "changed by caller"

	snap := repo.Snapshot()
	snap.Cards[0].Number = "changed by reader"
	*snap.Cards[0].ID = 42

	again := repo.Snapshot()
	assert.Equal(t, "4111", again.Cards[0].Number)
	assert.Equal(t, int64(1), *again.Cards[0].ID)
}

func TestWalletRepository_SelectCard(t *testing.T) {
	repo := NewWalletRepository(&fakeWallet{}, nullLogger())
	card := domain.Card{ID: int64p(7), Number: "4111"}

	repo.SelectCard(card)

	snap := repo.Snapshot()
	require.NotNil(t, snap.CurrentCard)
	assert.Equal(t, int64(7), *snap.CurrentCard.ID)
}

func TestWalletRepository_CachedFieldsFollowSuccessOnly(t *testing.T) {
	var (
		fail bool
		next int64
	)
	value := func() (decimal.Decimal, error) {
		if fail {
			return decimal.Decimal{}, domain.MissingError(503)
		}
		return decimal.NewFromInt(next), nil
	}
	repo := NewWalletRepository(&fakeWallet{
		balance: func(context.Context) (decimal.Decimal, error) { return value() },
		recharge: func(context.Context, decimal.Decimal, int64) (decimal.Decimal, error) {
			return value()
		},
		investment: func(context.Context) (decimal.Decimal, error) { return value() },
		cards: func(context.Context) ([]domain.Card, error) {
			if fail {
				return nil, domain.MissingError(503)
			}
			return []domain.Card{{ID: int64p(next)}}, nil
		},
	}, nullLogger())

	tests := []struct {
		name string
		call func() error
		read func(s domain.WalletState) (int64, bool)
	}{
		{
			name: "balance",
			call: func() error { _, err := repo.Balance(context.Background()); return err },
			read: balanceOf,
		},
		{
			name: "recharge",
			call: func() error { _, err := repo.Recharge(context.Background(), dec("1"), 9); return err },
			read: balanceOf,
		},
		{
			name: "investment",
			call: func() error { _, err := repo.Investment(context.Background()); return err },
			read: func(s domain.WalletState) (int64, bool) {
				if s.Investment == nil {
					return 0, false
				}
				return s.Investment.IntPart(), true
			},
		},
		{
			name: "cards",
			call: func() error { _, err := repo.Cards(context.Background()); return err },
			read: func(s domain.WalletState) (int64, bool) {
				if len(s.Cards) != 1 {
					return 0, false
				}
				return *s.Cards[0].ID, true
			},
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := int64(10 * (i + 1))

			fail, next = false, first
			require.NoError(t, tt.call())
			got, ok := tt.read(repo.Snapshot())
			require.True(t, ok)
			assert.Equal(t, first, got)

			fail = true
			require.Error(t, tt.call())
			got, ok = tt.read(repo.Snapshot())
			require.True(t, ok)
			assert.Equal(t, first, got, "failed call replaced the cached value")

			fail, next = false, first+1
			require.NoError(t, tt.call())
			got, _ = tt.read(repo.Snapshot())
			assert.Equal(t, first+1, got)
		})
	}
}

func balanceOf(s domain.WalletState) (int64, bool) {
	if s.Balance == nil {
		return 0, false
	}
	return s.Balance.IntPart(), true
}

func TestWalletRepository_PassThroughsLeaveCacheAlone(t *testing.T) {
	ctx := context.Background()
	repo := NewWalletRepository(&fakeWallet{
		details: func(context.Context) (domain.WalletDetails, error) {
			return domain.WalletDetails{
				Balance:    dec("5"),
				Investment: dec("6"),
				Cards:      []domain.Card{{ID: int64p(1), Number: "1111"}},
			}, nil
		},
		invest:     func(context.Context, decimal.Decimal) (decimal.Decimal, error) { return dec("7"), nil },
		divest:     func(context.Context, decimal.Decimal) (decimal.Decimal, error) { return dec("8"), nil },
		deleteCard: func(context.Context, int64) error { return nil },
		dailyReturns: func(context.Context) ([]domain.DailyValue, error) {
			return []domain.DailyValue{{Date: "2024-01-01", Value: dec("0.1")}}, nil
		},
		dailyInterest: func(context.Context) ([]domain.DailyValue, error) {
			return []domain.DailyValue{{Date: "2024-01-01", Value: dec("0.2")}}, nil
		},
	}, nullLogger())

	_, err := repo.Details(ctx)
	require.NoError(t, err)
	repo.SelectCard(domain.Card{ID: int64p(1), Number: "1111"})
	before := repo.Snapshot()

	got, err := repo.Invest(ctx, dec("2"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("7")))
	_, err = repo.Divest(ctx, dec("1"))
	require.NoError(t, err)
	require.NoError(t, repo.DeleteCard(ctx, 1))
	_, err = repo.DailyReturns(ctx)
	require.NoError(t, err)
	_, err = repo.DailyInterest(ctx)
	require.NoError(t, err)

	assert.Equal(t, before, repo.Snapshot())
}

func TestWalletRepository_InvestDoesNotSeedInvestment(t *testing.T) {
	repo := NewWalletRepository(&fakeWallet{
		invest: func(context.Context, decimal.Decimal) (decimal.Decimal, error) { return dec("7"), nil },
		investment: func(context.Context) (decimal.Decimal, error) {
			return decimal.Decimal{}, domain.NetworkError(errBoom)
		},
	}, nullLogger())

	_, err := repo.Invest(context.Background(), dec("7"))
	require.NoError(t, err)
	_, err = repo.Investment(context.Background())
	require.Error(t, err)

	assert.Nil(t, repo.Snapshot().Investment)
}

func TestWalletRepository_LastCommitWinsOnOneField(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	var calls atomic.Int32
	repo := NewWalletRepository(&fakeWallet{
		investment: func(context.Context) (decimal.Decimal, error) {
			if calls.Add(1) == 1 {
				close(entered)
				<-release
				return dec("1"), nil
			}
			return dec("2"), nil
		},
	}, nullLogger())

	done := make(chan error, 1)
	go func() {
		_, err := repo.Investment(context.Background())
		done <- err
	}()
	<-entered

	got, err := repo.Investment(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("2")))
	assert.True(t, repo.Snapshot().Investment.Equal(dec("2")))

	close(release)
	require.NoError(t, <-done)

	// The slower call finished last, so its value is the one cached.
	assert.True(t, repo.Snapshot().Investment.Equal(dec("1")))
}

func TestWalletRepository_ConcurrentBalanceWritesStayWhole(t *testing.T) {
	var n atomic.Int64
	repo := NewWalletRepository(&fakeWallet{
		balance: func(context.Context) (decimal.Decimal, error) {
			return decimal.NewFromInt(n.Add(1)), nil
		},
	}, nullLogger())

	const workers = 32
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Balance(context.Background())
		}()
	}
	wg.Wait()

	snap := repo.Snapshot()
	require.NotNil(t, snap.Balance)
	v := snap.Balance.IntPart()
	assert.True(t, v >= 1 && v <= workers, "cached balance %d was never returned", v)
	assert.True(t, snap.Balance.Equal(decimal.NewFromInt(v)))
}
