package locker

import (
	"context"
	"testing"
	"time"

	"dentassist-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	values map[string]string

	compareAndDeleteKey   string
	compareAndDeleteValue string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Increment(ctx context.Context, key string) error {
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, held := f.values[key]; held {
		return false, nil
	}
	f.values[key] = value.(string)
	return true, nil
}

func (f *fakeRedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, error) {
	f.compareAndDeleteKey = key
	f.compareAndDeleteValue = value.(string)
	if f.values[key] != value.(string) {
		return false, nil
	}
	delete(f.values, key)
	return true, nil
}

func newTestLockService() (*lockService, *fakeRedisRepository) {
	repo := newFakeRedisRepository()
	return &lockService{redisRepo: repo, Log: zap.NewNop()}, repo
}

func TestTryLockAndUnlock(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestLockService()

	acquired, lockValue, err := svc.TryLock(ctx, "slots:2025-06-02", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)
	require.NotEmpty(t, lockValue)

	// A second caller cannot take the same key while it is held.
	acquired, _, err = svc.TryLock(ctx, "slots:2025-06-02", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, svc.Unlock(ctx, "slots:2025-06-02", lockValue))
	_, held := repo.values["slots:2025-06-02"]
	assert.False(t, held)
}

func TestUnlockReleasesAtomically(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestLockService()

	_, lockValue, err := svc.TryLock(ctx, "slots:2025-06-02", time.Minute)
	require.NoError(t, err)

	// The release goes through a single compare-and-delete carrying the
	// owner token, never a separate read then delete.
	require.NoError(t, svc.Unlock(ctx, "slots:2025-06-02", lockValue))
	assert.Equal(t, "slots:2025-06-02", repo.compareAndDeleteKey)
	assert.Equal(t, lockValue, repo.compareAndDeleteValue)
}

func TestUnlockRefusesForeignLock(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestLockService()

	_, lockValue, err := svc.TryLock(ctx, "slots:2025-06-02", time.Minute)
	require.NoError(t, err)

	err = svc.Unlock(ctx, "slots:2025-06-02", "some-other-token")
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)

	// The holder's lock is untouched and still releasable.
	assert.Equal(t, lockValue, repo.values["slots:2025-06-02"])
	require.NoError(t, svc.Unlock(ctx, "slots:2025-06-02", lockValue))
}
