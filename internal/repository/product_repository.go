package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Q        string // 商品名の部分一致（大文字小文字は無視）
	Category string // 空 or "all" は絞り込みなし
	Sort     string // price-asc / price-desc / それ以外は登録順
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id string) error

	// seed用。既に1件でもあれば何もしない。
	Count(ctx context.Context) (int64, error)
}
