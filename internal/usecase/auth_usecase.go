package usecase

import (
	"app/internal/domain/model"
	"app/internal/repository"
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
)

// 永続化キー
const (
	sessionStorageKey   = "user"
	directoryStorageKey = "users"
)

var (
	//409 同じemailが登録済み
	ErrDuplicateAccount = errors.New("account with this email already exists")
	//401 email+passwordが一致しない
	ErrInvalidCredentials = errors.New("invalid email or password")
	//404 対象のアカウントが無い
	ErrAccountNotFound = errors.New("account not found")
	//400 自分自身への管理操作
	ErrOwnAccount = errors.New("cannot modify own account")
)

// 初期管理者。ディレクトリが未作成のときだけ1回seedされる。
var defaultAdmin = model.Account{
	Name:     "Администратор",
	Email:    "admin@customsound.ru",
	Phone:    "+7 (999) 000-00-00",
	Password: "admin123",
	IsAdmin:  true,
}

// AuthUsecase はアカウントディレクトリとログインセッションの業務ロジックです。
// ディレクトリは "users"、セッションは "user" キーにJSONで保存する。
// セッションは最大1件で、キーが無い状態がログアウト。再起動後もそのまま復元される。
type AuthUsecase struct {
	kv repository.KVStore
}

func NewAuthUsecase(kv repository.KVStore) *AuthUsecase {
	return &AuthUsecase{kv: kv}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type LoginInput struct {
	Email    string
	Password string
}

// ディレクトリ一覧の返却用。パスワードは出さない。
type AccountDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
}

// Seed はディレクトリが無いときだけ初期管理者1件を書き込む。
// セッションは作らない。
func (u *AuthUsecase) Seed(ctx context.Context) error {
	_, err := u.kv.Get(ctx, directoryStorageKey)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrKeyNotFound) {
		return err
	}
	return u.saveDirectory(ctx, []model.Account{defaultAdmin})
}

// Register は新規アカウントを作り、そのままログイン状態にする。
// emailの重複は完全一致（大文字小文字を区別）で弾き、ディレクトリは変更しない。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (model.Session, error) {
	accounts, err := u.loadDirectory(ctx)
	if err != nil {
		return model.Session{}, err
	}

	for _, a := range accounts {
		if a.Email == in.Email {
			return model.Session{}, ErrDuplicateAccount
		}
	}

	account := model.Account{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
		IsAdmin:  false,
	}

	accounts = append(accounts, account)
	if err := u.saveDirectory(ctx, accounts); err != nil {
		return model.Session{}, err
	}

	session := model.NewSession(account)
	if err := u.saveSession(ctx, session); err != nil {
		return model.Session{}, err
	}
	return session, nil
}

// Login はemailとパスワードの完全一致でアカウントを探し、セッションにする。
// セッションにはパスワードを載せない。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (model.Session, error) {
	accounts, err := u.loadDirectory(ctx)
	if err != nil {
		return model.Session{}, err
	}

	for _, a := range accounts {
		if a.Email == in.Email && a.Password == in.Password {
			session := model.NewSession(a)
			if err := u.saveSession(ctx, session); err != nil {
				return model.Session{}, err
			}
			return session, nil
		}
	}

	return model.Session{}, ErrInvalidCredentials
}

// Logout はセッションを消す。ログアウト済みでもエラーにしない。
// カートはここでは触らない。
func (u *AuthUsecase) Logout(ctx context.Context) error {
	return u.kv.Delete(ctx, sessionStorageKey)
}

// Current は現在のセッションを返す。ログアウト中は nil。
func (u *AuthUsecase) Current(ctx context.Context) (*model.Session, error) {
	raw, err := u.kv.Get(ctx, sessionStorageKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s model.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// セッションが存在するか。
func (u *AuthUsecase) IsAuthenticated(ctx context.Context) (bool, error) {
	s, err := u.Current(ctx)
	if err != nil {
		return false, err
	}
	return s != nil, nil
}

// セッションが存在し、かつ管理者フラグが立っているか。
func (u *AuthUsecase) IsAdmin(ctx context.Context) (bool, error) {
	s, err := u.Current(ctx)
	if err != nil {
		return false, err
	}
	return s != nil && s.IsAdmin, nil
}

// UpdateProfile はセッションを渡された内容で上書きし、
// emailが一致するディレクトリエントリにも同じ変更を当てる（パスワードは維持）。
func (u *AuthUsecase) UpdateProfile(ctx context.Context, s model.Session) error {
	if err := u.saveSession(ctx, s); err != nil {
		return err
	}

	accounts, err := u.loadDirectory(ctx)
	if err != nil {
		return err
	}

	for i := range accounts {
		if accounts[i].Email == s.Email {
			accounts[i].Name = s.Name
			accounts[i].Phone = s.Phone
			accounts[i].IsAdmin = s.IsAdmin
			break
		}
	}

	return u.saveDirectory(ctx, accounts)
}

// ResetPassword は短いランダムパスワードを生成してディレクトリに保存し、
// 生成したパスワードをそのまま呼び出し側へ返す。メール送信は行わない。
func (u *AuthUsecase) ResetPassword(ctx context.Context, email string) (string, error) {
	accounts, err := u.loadDirectory(ctx)
	if err != nil {
		return "", err
	}

	for i := range accounts {
		if accounts[i].Email == email {
			password, err := newTempPassword()
			if err != nil {
				return "", err
			}
			accounts[i].Password = password
			if err := u.saveDirectory(ctx, accounts); err != nil {
				return "", err
			}
			return password, nil
		}
	}

	return "", ErrAccountNotFound
}

// ListAccounts はディレクトリ全件をパスワード抜きで返す。
func (u *AuthUsecase) ListAccounts(ctx context.Context) ([]AccountDTO, error) {
	accounts, err := u.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AccountDTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountDTO{
			Name:    a.Name,
			Email:   a.Email,
			Phone:   a.Phone,
			IsAdmin: a.IsAdmin,
		})
	}
	return out, nil
}

// DeleteAccount はディレクトリからアカウントを消す。自分自身は消せない。
func (u *AuthUsecase) DeleteAccount(ctx context.Context, actorEmail string, email string) error {
	if email == actorEmail {
		return ErrOwnAccount
	}

	accounts, err := u.loadDirectory(ctx)
	if err != nil {
		return err
	}

	next := make([]model.Account, 0, len(accounts))
	found := false
	for _, a := range accounts {
		if a.Email == email {
			found = true
			continue
		}
		next = append(next, a)
	}
	if !found {
		return ErrAccountNotFound
	}

	return u.saveDirectory(ctx, next)
}

// ToggleAdmin は管理者フラグを反転する。自分自身の権限は変えられない。
func (u *AuthUsecase) ToggleAdmin(ctx context.Context, actorEmail string, email string) error {
	if email == actorEmail {
		return ErrOwnAccount
	}

	accounts, err := u.loadDirectory(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range accounts {
		if accounts[i].Email == email {
			accounts[i].IsAdmin = !accounts[i].IsAdmin
			found = true
			break
		}
	}
	if !found {
		return ErrAccountNotFound
	}

	return u.saveDirectory(ctx, accounts)
}

// "users"キーからディレクトリを読む。キーが無ければ空。
func (u *AuthUsecase) loadDirectory(ctx context.Context) ([]model.Account, error) {
	raw, err := u.kv.Get(ctx, directoryStorageKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return []model.Account{}, nil
	}
	if err != nil {
		return nil, err
	}

	var accounts []model.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (u *AuthUsecase) saveDirectory(ctx context.Context, accounts []model.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return u.kv.Set(ctx, directoryStorageKey, raw)
}

func (u *AuthUsecase) saveSession(ctx context.Context, s model.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return u.kv.Set(ctx, sessionStorageKey, raw)
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// 8文字の仮パスワードを生成
func newTempPassword() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = passwordAlphabet[int(b[i])%len(passwordAlphabet)]
	}
	return string(b), nil
}
