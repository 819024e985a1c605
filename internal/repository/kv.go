package repository

import (
	"context"
	"errors"
)

// キーが存在しないを統一
var ErrKeyNotFound = errors.New("key not found")

// 文字列キーのローカル永続化ストア。
// カート・セッション・ユーザーディレクトリはすべてこの上に保存する。
// 書き込みは常に全量上書き（last write wins）。
type KVStore interface {
	// キーの値を取得する。無ければ ErrKeyNotFound。
	Get(ctx context.Context, key string) ([]byte, error)
	// キーに値を保存する（上書き）。
	Set(ctx context.Context, key string, value []byte) error
	// キーを削除する。無くてもエラーにしない。
	Delete(ctx context.Context, key string) error
}
