package model

// 登録ユーザー1件。emailがディレクトリ内の一意キー（大文字小文字は区別する）。
// パスワードは既存の保存データに合わせて平文のまま保存・照合する。
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
}

// ログイン中のユーザー。パスワードは含めない。
// 永続化キー "user" に保存され、再起動後も復元される。
type Session struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
}

// AccountからSessionを作る（パスワードを落とす）。
func NewSession(a Account) Session {
	return Session{
		Name:    a.Name,
		Email:   a.Email,
		Phone:   a.Phone,
		IsAdmin: a.IsAdmin,
	}
}
