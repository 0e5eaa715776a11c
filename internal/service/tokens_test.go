package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/korotkovaa/token-service/internal/config"
	"github.com/korotkovaa/token-service/internal/models"
	"github.com/korotkovaa/token-service/internal/storage"
	"github.com/korotkovaa/token-service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func testTokensCfg() config.TokensConfig {
	return config.TokensConfig{
		TokenLength: 64,
		SaltLength:  16,
		MaxPerUser:  3,
		DaysValid:   28,
		KeyPrefix:   "user_tokens",
	}
}

func newServiceWithMock(t *testing.T) (*Service, *mocks.MockTokenLists, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockSt := mocks.NewMockTokenLists(ctrl)
	svc := New(mockSt, testTokensCfg())
	return svc, mockSt, ctrl
}

// testCreds возвращает корректную пару соль+хэш для пароля.
func testCreds(password string) models.Credentials {
	salt := []byte("s")
	return models.Credentials{
		Salt: salt,
		Hash: HashPassword([]byte(password), salt),
	}
}

// fmtWrap - оборачивает ошибку из storage, имитируя fmt.Errorf("%w").
func fmtWrap(err error) error { return fmt.Errorf("wrapped: %w", err) }

// --- Тесты последовательностей вызовов хранилища (gomock) ---

func TestIssueToken_WrongPassword_NoStorageCalls(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	// Ни одного EXPECT: любое обращение к хранилищу провалит тест.
	_, _, err := svc.IssueToken(context.Background(), 42, []byte("wrong"), testCreds("p@ss"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssueToken_BelowBound_NoTrim(t *testing.T) {
	svc, mockSt, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	const key = "user_tokens:id42"

	var pushed string
	gomock.InOrder(
		mockSt.EXPECT().Len(gomock.Any(), key).Return(int64(2), nil),
		mockSt.EXPECT().
			PushFront(gomock.Any(), key, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value string) error {
				pushed = value
				return nil
			}),
	)

	token, wire, err := svc.IssueToken(context.Background(), 42, []byte("p@ss"), testCreds("p@ss"))
	require.NoError(t, err)

	require.Equal(t, uint64(42), token.UserID)
	require.Len(t, token.Value, 64)
	require.Equal(t, wire, pushed, "в хранилище кладётся ровно та wire-форма, что вернулась вызывающей стороне")

	decoded, err := models.DecodeToken(wire)
	require.NoError(t, err)
	require.Equal(t, token.UserID, decoded.UserID)
	require.Equal(t, token.Value, decoded.Value)
}

func TestIssueToken_AtBound_TrimsBeforePush(t *testing.T) {
	svc, mockSt, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	const key = "user_tokens:id42"

	gomock.InOrder(
		mockSt.EXPECT().Len(gomock.Any(), key).Return(int64(3), nil),
		mockSt.EXPECT().Trim(gomock.Any(), key, int64(0), int64(1)).Return(nil),
		mockSt.EXPECT().PushFront(gomock.Any(), key, gomock.Any()).Return(nil),
	)

	_, _, err := svc.IssueToken(context.Background(), 42, []byte("p@ss"), testCreds("p@ss"))
	require.NoError(t, err)
}

func TestIssueToken_StoreError_Propagated(t *testing.T) {
	svc, mockSt, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	mockSt.EXPECT().Len(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down"))

	_, _, err := svc.IssueToken(context.Background(), 42, []byte("p@ss"), testCreds("p@ss"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
	require.NotErrorIs(t, err, ErrUnknownToken)
}

func TestValidateToken_Malformed_NoStorageCalls(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedToken)
}

func TestValidateToken_Unknown(t *testing.T) {
	svc, mockSt, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	wire := encodeTestToken(t, 42, time.Now().UTC())

	mockSt.EXPECT().
		Position(gomock.Any(), "user_tokens:id42", wire).
		Return(int64(0), fmtWrap(storage.ErrNotFound))

	_, err := svc.ValidateToken(context.Background(), wire)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownToken)
}

func TestValidateToken_Expired_LazyPurge(t *testing.T) {
	svc, mockSt, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	issued := time.Now().UTC().Add(-29 * 24 * time.Hour)
	wire := encodeTestToken(t, 42, issued)

	gomock.InOrder(
		mockSt.EXPECT().Position(gomock.Any(), "user_tokens:id42", wire).Return(int64(1), nil),
		mockSt.EXPECT().Remove(gomock.Any(), "user_tokens:id42", wire).Return(nil),
	)

	_, err := svc.ValidateToken(context.Background(), wire)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_StoreError_Propagated(t *testing.T) {
	svc, mockSt, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	wire := encodeTestToken(t, 42, time.Now().UTC())

	mockSt.EXPECT().
		Position(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("connection refused"))

	_, err := svc.ValidateToken(context.Background(), wire)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnknownToken)
	require.NotErrorIs(t, err, ErrTokenExpired)
}

func TestRevokeToken_ExpiredButPresent_StillRemoved(t *testing.T) {
	svc, mockSt, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	// Отзыв не проверяет срок действия: просроченный, но присутствующий
	// токен удаляется без ошибки.
	issued := time.Now().UTC().Add(-100 * 24 * time.Hour)
	wire := encodeTestToken(t, 42, issued)

	gomock.InOrder(
		mockSt.EXPECT().Position(gomock.Any(), "user_tokens:id42", wire).Return(int64(0), nil),
		mockSt.EXPECT().Remove(gomock.Any(), "user_tokens:id42", wire).Return(nil),
	)

	require.NoError(t, svc.RevokeToken(context.Background(), wire))
}

func TestRevokeToken_Malformed(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	err := svc.RevokeToken(context.Background(), `{"user_id":1}`)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedToken)
}

// encodeTestToken собирает wire-форму токена с заданным временем выпуска.
func encodeTestToken(t *testing.T, userID uint64, issuedAt time.Time) string {
	t.Helper()
	tok := &models.Token{
		UserID:   userID,
		Value:    "test-token-value",
		IssuedAt: issuedAt.Truncate(time.Second),
	}
	wire, err := tok.Encode()
	require.NoError(t, err)
	return wire
}

// --- Сквозные свойства жизненного цикла (in-memory реализация списков) ---

// memLists — потокобезопасная реализация storage.TokenLists в памяти
// с семантикой Redis-команд (LPUSH/LTRIM/LLEN/LPOS/LREM count=1).
type memLists struct {
	mu    sync.Mutex
	lists map[string][]string
}

func newMemLists() *memLists {
	return &memLists{lists: make(map[string][]string)}
}

func (m *memLists) PushFront(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[key] = append([]string{value}, m.lists[key]...)
	return nil
}

func (m *memLists) Trim(_ context.Context, key string, start, stop int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := m.lists[key]
	if start >= int64(len(l)) || start > stop {
		m.lists[key] = nil
		return nil
	}
	if stop >= int64(len(l)) {
		stop = int64(len(l)) - 1
	}
	m.lists[key] = l[start : stop+1]
	return nil
}

func (m *memLists) Len(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.lists[key])), nil
}

func (m *memLists) Position(_ context.Context, key, value string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, v := range m.lists[key] {
		if v == value {
			return int64(i), nil
		}
	}
	return 0, fmtWrap(storage.ErrNotFound)
}

func (m *memLists) Remove(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := m.lists[key]
	for i, v := range l {
		if v == value {
			m.lists[key] = append(append([]string(nil), l[:i]...), l[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestLifecycle_IssueThenValidate(t *testing.T) {
	t.Parallel()

	store := newMemLists()
	svc := New(store, testTokensCfg())
	ctx := context.Background()

	token, wire, err := svc.IssueToken(ctx, 42, []byte("p@ss"), testCreds("p@ss"))
	require.NoError(t, err)
	require.Equal(t, uint64(42), token.UserID)

	uid, err := svc.ValidateToken(ctx, wire)
	require.NoError(t, err)
	require.Equal(t, uint64(42), uid)

	// Валидация не меняет состояние: токен остаётся в списке.
	n, err := store.Len(ctx, "user_tokens:id42")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestLifecycle_InvalidCredentials_ListUnchanged(t *testing.T) {
	t.Parallel()

	store := newMemLists()
	svc := New(store, testTokensCfg())
	ctx := context.Background()

	_, _, err := svc.IssueToken(ctx, 42, []byte("p@ss"), testCreds("p@ss"))
	require.NoError(t, err)

	_, _, err = svc.IssueToken(ctx, 42, []byte("wrong"), testCreds("p@ss"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	n, err := store.Len(ctx, "user_tokens:id42")
	require.NoError(t, err)
	require.Equal(t, int64(1), n, "неудачный вход не меняет список токенов")
}

// Четыре последовательных выпуска при лимите 3: самый старый токен вытеснен,
// три последних валидны.
func TestLifecycle_EvictionOrder(t *testing.T) {
	t.Parallel()

	store := newMemLists()
	svc := New(store, testTokensCfg())
	ctx := context.Background()
	creds := testCreds("p@ss")

	wires := make([]string, 4)
	for i := range wires {
		_, wire, err := svc.IssueToken(ctx, 42, []byte("p@ss"), creds)
		require.NoError(t, err)
		wires[i] = wire
	}

	n, err := store.Len(ctx, "user_tokens:id42")
	require.NoError(t, err)
	require.Equal(t, int64(3), n, "лимит живых токенов соблюдён")

	_, err = svc.ValidateToken(ctx, wires[0])
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownToken)

	for _, wire := range wires[1:] {
		uid, err := svc.ValidateToken(ctx, wire)
		require.NoError(t, err)
		require.Equal(t, uint64(42), uid)
	}
}

// Последовательные выпуски никогда не выводят длину списка за лимит.
func TestLifecycle_BoundHolds_Sequential(t *testing.T) {
	t.Parallel()

	store := newMemLists()
	svc := New(store, testTokensCfg())
	ctx := context.Background()
	creds := testCreds("p@ss")

	for i := 0; i < 10; i++ {
		_, _, err := svc.IssueToken(ctx, 42, []byte("p@ss"), creds)
		require.NoError(t, err)

		n, err := store.Len(ctx, "user_tokens:id42")
		require.NoError(t, err)
		require.LessOrEqual(t, n, int64(3))
	}
}

func TestLifecycle_ExpiredToken_PurgedOnce(t *testing.T) {
	t.Parallel()

	store := newMemLists()
	svc := New(store, testTokensCfg())
	ctx := context.Background()

	// Просроченный токен кладём в список руками, минуя IssueToken.
	wire := encodeTestToken(t, 42, time.Now().UTC().Add(-29*24*time.Hour))
	require.NoError(t, store.PushFront(ctx, "user_tokens:id42", wire))

	_, err := svc.ValidateToken(ctx, wire)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)

	// Запись вычищена: повторные попытки видят «неизвестный токен».
	_, err = svc.ValidateToken(ctx, wire)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownToken)

	err = svc.RevokeToken(ctx, wire)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownToken)
}

// Токен на границе окна (ровно DaysValid суток назад) уже просрочен.
func TestLifecycle_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	store := newMemLists()
	svc := New(store, testTokensCfg())
	ctx := context.Background()

	wire := encodeTestToken(t, 7, time.Now().UTC().Add(-28*24*time.Hour-time.Minute))
	require.NoError(t, store.PushFront(ctx, "user_tokens:id7", wire))

	_, err := svc.ValidateToken(ctx, wire)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenExpired)

	// Чуть моложе границы — ещё валиден.
	fresh := encodeTestToken(t, 7, time.Now().UTC().Add(-27*24*time.Hour))
	require.NoError(t, store.PushFront(ctx, "user_tokens:id7", fresh))

	uid, err := svc.ValidateToken(ctx, fresh)
	require.NoError(t, err)
	require.Equal(t, uint64(7), uid)
}

func TestLifecycle_RevokeIdempotent(t *testing.T) {
	t.Parallel()

	store := newMemLists()
	svc := New(store, testTokensCfg())
	ctx := context.Background()

	_, wire, err := svc.IssueToken(ctx, 42, []byte("p@ss"), testCreds("p@ss"))
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, wire))

	_, err = svc.ValidateToken(ctx, wire)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownToken)

	err = svc.RevokeToken(ctx, wire)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownToken)
}

// Конкурентные выпуски для одного пользователя: лимит — мягкая граница,
// транзиентное превышение не больше числа одновременных гонщиков,
// и следующий последовательный выпуск возвращает список к лимиту.
func TestLifecycle_ConcurrentIssue_SoftBound(t *testing.T) {
	t.Parallel()

	store := newMemLists()
	svc := New(store, testTokensCfg())
	ctx := context.Background()
	creds := testCreds("p@ss")

	const racers = 8

	var wg sync.WaitGroup
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func() {
			defer wg.Done()
			_, _, err := svc.IssueToken(ctx, 42, []byte("p@ss"), creds)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	n, err := store.Len(ctx, "user_tokens:id42")
	require.NoError(t, err)
	require.LessOrEqual(t, n, int64(3+racers))

	// Следующий выпуск подрезает список.
	_, _, err = svc.IssueToken(ctx, 42, []byte("p@ss"), creds)
	require.NoError(t, err)

	n, err = store.Len(ctx, "user_tokens:id42")
	require.NoError(t, err)
	require.LessOrEqual(t, n, int64(3))
}
