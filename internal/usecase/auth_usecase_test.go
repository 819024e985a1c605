package usecase_test

import (
	"context"
	"testing"

	"app/internal/infra/kv"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUC(t *testing.T) (*usecase.AuthUsecase, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	uc := usecase.NewAuthUsecase(store)
	require.NoError(t, uc.Seed(context.Background()))
	return uc, store
}

// seed直後：ディレクトリは管理者1件だけ、セッションは無い
func TestAuth_Seed_SingleAdminNoSession(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	accounts, err := uc.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.True(t, accounts[0].IsAdmin)
	assert.Equal(t, "admin@customsound.ru", accounts[0].Email)

	ok, err := uc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

// seedは2回目以降なにもしない
func TestAuth_Seed_Idempotent(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	_, err := uc.Register(ctx, usecase.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "pw123456", Phone: "+1",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Seed(ctx))

	accounts, err := uc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

// 登録成功 => ログイン状態、一般ユーザー
func TestAuth_Register_SetsSessionNonAdmin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	session, err := uc.Register(ctx, usecase.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "pw123456", Phone: "+1",
	})
	require.NoError(t, err)
	assert.Equal(t, "A", session.Name)
	assert.False(t, session.IsAdmin)

	authed, err := uc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authed)

	admin, err := uc.IsAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, admin)
}

// email重複 => ErrDuplicateAccount、ディレクトリは変化しない
func TestAuth_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	_, err := uc.Register(ctx, usecase.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "pw123456", Phone: "+1",
	})
	require.NoError(t, err)

	before, err := uc.ListAccounts(ctx)
	require.NoError(t, err)

	_, err = uc.Register(ctx, usecase.RegisterInput{
		Name: "B", Email: "a@x.com", Password: "other", Phone: "+2",
	})
	assert.ErrorIs(t, err, usecase.ErrDuplicateAccount)

	after, err := uc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// emailの重複チェックは大文字小文字を区別する
func TestAuth_Register_EmailCaseSensitive(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	_, err := uc.Register(ctx, usecase.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "pw123456", Phone: "+1",
	})
	require.NoError(t, err)

	_, err = uc.Register(ctx, usecase.RegisterInput{
		Name: "B", Email: "A@x.com", Password: "pw123456", Phone: "+2",
	})
	assert.NoError(t, err)
}

// パスワード違い => ErrInvalidCredentials
func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	_, err := uc.Login(ctx, usecase.LoginInput{Email: "admin@customsound.ru", Password: "wrong"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	authed, err := uc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authed)
}

// ログイン成功 => セッションにパスワードは載らない
func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	session, err := uc.Login(ctx, usecase.LoginInput{Email: "admin@customsound.ru", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "Администратор", session.Name)
	assert.True(t, session.IsAdmin)

	admin, err := uc.IsAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, admin)
}

// ログアウト => セッションが消える。二重ログアウトもエラーなし
func TestAuth_Logout(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	_, err := uc.Login(ctx, usecase.LoginInput{Email: "admin@customsound.ru", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx))

	s, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	assert.NoError(t, uc.Logout(ctx))
}

// プロフィール更新はセッションとディレクトリの両方に反映、パスワードは維持
func TestAuth_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	session, err := uc.Register(ctx, usecase.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "pw123456", Phone: "+1",
	})
	require.NoError(t, err)

	session.Name = "Alice"
	session.Phone = "+999"
	require.NoError(t, uc.UpdateProfile(ctx, session))

	current, err := uc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Alice", current.Name)
	assert.Equal(t, "+999", current.Phone)

	// 旧パスワードでまだログインできる
	require.NoError(t, uc.Logout(ctx))
	relogged, err := uc.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", relogged.Name)
}

// リセット => 新しい仮パスワードが返り、それでログインできる。旧パスワードは無効
func TestAuth_ResetPassword(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	_, err := uc.Register(ctx, usecase.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "pw123456", Phone: "+1",
	})
	require.NoError(t, err)
	require.NoError(t, uc.Logout(ctx))

	temp, err := uc.ResetPassword(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, temp, 8)

	_, err = uc.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "pw123456"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	_, err = uc.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: temp})
	assert.NoError(t, err)
}

// 未登録email => ErrAccountNotFound
func TestAuth_ResetPassword_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	_, err := uc.ResetPassword(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, usecase.ErrAccountNotFound)
}

// 自分自身は削除できない
func TestAuth_DeleteAccount_Self(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	err := uc.DeleteAccount(ctx, "admin@customsound.ru", "admin@customsound.ru")
	assert.ErrorIs(t, err, usecase.ErrOwnAccount)
}

func TestAuth_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	_, err := uc.Register(ctx, usecase.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "pw123456", Phone: "+1",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAccount(ctx, "admin@customsound.ru", "a@x.com"))

	accounts, err := uc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	err = uc.DeleteAccount(ctx, "admin@customsound.ru", "a@x.com")
	assert.ErrorIs(t, err, usecase.ErrAccountNotFound)
}

// 権限トグル：反転する／自分は不可
func TestAuth_ToggleAdmin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUC(t)

	_, err := uc.Register(ctx, usecase.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "pw123456", Phone: "+1",
	})
	require.NoError(t, err)

	require.NoError(t, uc.ToggleAdmin(ctx, "admin@customsound.ru", "a@x.com"))

	accounts, err := uc.ListAccounts(ctx)
	require.NoError(t, err)
	for _, a := range accounts {
		if a.Email == "a@x.com" {
			assert.True(t, a.IsAdmin)
		}
	}

	err = uc.ToggleAdmin(ctx, "admin@customsound.ru", "admin@customsound.ru")
	assert.ErrorIs(t, err, usecase.ErrOwnAccount)
}

// 同じKVStoreから作り直すとディレクトリもセッションも復元される
func TestAuth_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc, store := newAuthUC(t)

	_, err := uc.Register(ctx, usecase.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "pw123456", Phone: "+1",
	})
	require.NoError(t, err)

	beforeAccounts, err := uc.ListAccounts(ctx)
	require.NoError(t, err)
	beforeSession, err := uc.Current(ctx)
	require.NoError(t, err)

	rebuilt := usecase.NewAuthUsecase(store)

	afterAccounts, err := rebuilt.ListAccounts(ctx)
	require.NoError(t, err)
	afterSession, err := rebuilt.Current(ctx)
	require.NoError(t, err)

	assert.Equal(t, beforeAccounts, afterAccounts)
	assert.Equal(t, beforeSession, afterSession)
}

// カートはログアウトしても残る
func TestAuth_Logout_KeepsCart(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	authUC := usecase.NewAuthUsecase(store)
	cartUC := usecase.NewCartUsecase(store)
	require.NoError(t, authUC.Seed(ctx))

	_, err := authUC.Login(ctx, usecase.LoginInput{Email: "admin@customsound.ru", Password: "admin123"})
	require.NoError(t, err)

	_, err = cartUC.AddItem(ctx, usecase.AddItemInput{ID: "a", Name: "A", Price: 100})
	require.NoError(t, err)

	require.NoError(t, authUC.Logout(ctx))

	out, err := cartUC.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}
