package match_test

import (
	"context"
	"matchup/internal/match"
	"matchup/pkg/domain"
	"matchup/pkg/serrors"
	"matchup/pkg/storage"
	mockstorage "matchup/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	ctrl   *gomock.Controller
	st     *mockstorage.MockStorage
	reader *sdkmetric.ManualReader
	m      match.Matcher
}

func newTestMatcher(t *testing.T) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := match.New(st, match.Options{
		BrowseDefaultLimit: 10,
		BrowseMaxLimit:     100,
		Meter:              provider.Meter("test"),
	})
	require.NoError(t, err)

	return testEnv{ctrl: ctrl, st: st, reader: reader, m: m}
}

func (e testEnv) withTx(fn func(tx *mockstorage.MockAllStorage)) {
	e.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(e.ctrl)
			fn(tx)

			return cb(tx)
		})
}

func (e testEnv) formedMatches(t *testing.T) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, e.reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "match.formed" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)

			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}

			return total
		}
	}

	return 0
}

func TestMatcher_Accept(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		env := newTestMatcher(t)

		_, err := env.m.Accept(context.Background(), 1, 1)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.EqualError(t, err, "Cannot like yourself")
	})

	t.Run("unknown user", func(t *testing.T) {
		env := newTestMatcher(t)
		env.withTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), domain.UserID(2)).Return(nil, nil)
		})

		_, err := env.m.Accept(context.Background(), 1, 2)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("already liked", func(t *testing.T) {
		env := newTestMatcher(t)
		env.withTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), domain.UserID(2)).Return(&domain.User{ID: 2}, nil)
			tx.EXPECT().StoreLike(gomock.Any(), domain.Like{LikerID: 1, LikedID: 2}).Return(false, nil)
		})

		_, err := env.m.Accept(context.Background(), 1, 2)
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		var sErr *serrors.Error
		require.ErrorAs(t, err, &sErr)
		require.Equal(t, "User already liked", sErr.Message())
	})

	t.Run("one way like", func(t *testing.T) {
		env := newTestMatcher(t)
		env.withTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), domain.UserID(2)).Return(&domain.User{ID: 2}, nil)
			tx.EXPECT().StoreLike(gomock.Any(), domain.Like{LikerID: 1, LikedID: 2}).Return(true, nil)
			tx.EXPECT().DeleteRefusal(gomock.Any(), domain.UserID(1), domain.UserID(2)).Return(nil)
			tx.EXPECT().LikeExists(gomock.Any(), domain.UserID(2), domain.UserID(1)).Return(false, nil)
		})

		matched, err := env.m.Accept(context.Background(), 1, 2)
		require.NoError(t, err)
		require.False(t, matched)
		require.Zero(t, env.formedMatches(t))
	})

	t.Run("mutual like forms a match", func(t *testing.T) {
		env := newTestMatcher(t)
		env.withTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), domain.UserID(2)).Return(&domain.User{ID: 2}, nil)
			tx.EXPECT().StoreLike(gomock.Any(), gomock.Any()).Return(true, nil)
			tx.EXPECT().DeleteRefusal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().LikeExists(gomock.Any(), domain.UserID(2), domain.UserID(1)).Return(true, nil)
		})

		matched, err := env.m.Accept(context.Background(), 1, 2)
		require.NoError(t, err)
		require.True(t, matched)
		require.EqualValues(t, 1, env.formedMatches(t))
	})
}

func TestMatcher_Refuse(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		env := newTestMatcher(t)

		err := env.m.Refuse(context.Background(), 1, 1)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.EqualError(t, err, "Cannot refuse yourself")
	})

	t.Run("records refusal and withdraws like", func(t *testing.T) {
		env := newTestMatcher(t)
		env.withTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), domain.UserID(2)).Return(&domain.User{ID: 2}, nil)
			tx.EXPECT().StoreRefusal(gomock.Any(), domain.Refusal{RefuserID: 1, RefusedID: 2}).Return(nil)
			tx.EXPECT().DeleteLike(gomock.Any(), domain.UserID(1), domain.UserID(2)).Return(true, nil)
		})

		require.NoError(t, env.m.Refuse(context.Background(), 1, 2))
	})

	t.Run("unknown user", func(t *testing.T) {
		env := newTestMatcher(t)
		env.withTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), domain.UserID(2)).Return(nil, nil)
		})

		require.ErrorIs(t, env.m.Refuse(context.Background(), 1, 2), serrors.ErrNotFound)
	})
}

func TestMatcher_Browse(t *testing.T) {
	limits := []struct {
		name      string
		requested uint
		want      uint
	}{
		{"default", 0, 10},
		{"explicit", 25, 25},
		{"capped", 500, 100},
	}
	for _, l := range limits {
		t.Run(l.name, func(t *testing.T) {
			env := newTestMatcher(t)
			env.st.EXPECT().BrowseUsers(gomock.Any(), domain.UserID(1), l.want).Return(nil, nil)

			users, err := env.m.Browse(context.Background(), 1, l.requested)
			require.NoError(t, err)
			require.Empty(t, users)
		})
	}

	t.Run("attaches photos", func(t *testing.T) {
		env := newTestMatcher(t)
		env.st.EXPECT().BrowseUsers(gomock.Any(), domain.UserID(1), uint(10)).
			Return([]domain.User{{ID: 2}, {ID: 3}}, nil)
		env.st.EXPECT().UserPhotos(gomock.Any(), domain.UserID(2), domain.UserID(3)).
			Return([]domain.Photo{{ID: 7, UserID: 3}}, nil)

		users, err := env.m.Browse(context.Background(), 1, 0)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Empty(t, users[0].Photos)
		require.Len(t, users[1].Photos, 1)
	})
}

func TestMatcher_Matches(t *testing.T) {
	env := newTestMatcher(t)
	env.st.EXPECT().MatchedUsers(gomock.Any(), domain.UserID(1)).Return([]domain.User{{ID: 2}}, nil)
	env.st.EXPECT().UserPhotos(gomock.Any(), domain.UserID(2)).Return(nil, nil)

	users, err := env.m.Matches(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NotNil(t, users[0].Photos)
}

func TestNew_DefaultsWithoutMeter(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	m, err := match.New(st, match.Options{})
	require.NoError(t, err)

	st.EXPECT().BrowseUsers(gomock.Any(), domain.UserID(1), uint(match.DefaultBrowseLimit)).Return(nil, nil)
	_, err = m.Browse(context.Background(), 1, 0)
	require.NoError(t, err)
}
