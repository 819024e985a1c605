package usecase

import (
	"app/internal/domain/model"
	"app/internal/repository"
	"context"
	"encoding/json"
	"errors"
)

// カートの永続化キー
const cartStorageKey = "custom-sound-cart"

// CartUsecase はカートの業務ロジックです。
// 明細リストはKVStoreに全量JSONで保存し、変更のたびに同期で書き戻します。
// カートはログイン状態とは独立で、ログアウトしても消えません。
type CartUsecase struct {
	kv repository.KVStore
}

func NewCartUsecase(kv repository.KVStore) *CartUsecase {
	return &CartUsecase{kv: kv}
}

type CartResponse struct {
	Items []model.CartLine `json:"items"`
	Total int64            `json:"total"`
}

type AddItemInput struct {
	ID    string
	Name  string
	Price int64
	Image string
}

// GetCart はカートの現在の内容を返す（未保存なら空）。
func (u *CartUsecase) GetCart(ctx context.Context) (CartResponse, error) {
	lines, err := u.load(ctx)
	if err != nil {
		return CartResponse{}, err
	}
	return buildCartResponse(lines), nil
}

// AddItem はカートに追加する。同じ商品IDは行を増やさず数量+1。
func (u *CartUsecase) AddItem(ctx context.Context, in AddItemInput) (CartResponse, error) {
	lines, err := u.load(ctx)
	if err != nil {
		return CartResponse{}, err
	}

	found := false
	for i := range lines {
		if lines[i].ID == in.ID {
			lines[i].Quantity++
			found = true
			break
		}
	}

	if !found {
		lines = append(lines, model.CartLine{
			ID:       in.ID,
			Name:     in.Name,
			Price:    in.Price,
			Image:    in.Image,
			Quantity: 1,
		})
	}

	if err := u.save(ctx, lines); err != nil {
		return CartResponse{}, err
	}
	return buildCartResponse(lines), nil
}

// RemoveItem は明細を数量に関係なくまるごと削除する。無ければ何もしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, id string) (CartResponse, error) {
	lines, err := u.load(ctx)
	if err != nil {
		return CartResponse{}, err
	}

	next := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != id {
			next = append(next, l)
		}
	}

	if err := u.save(ctx, next); err != nil {
		return CartResponse{}, err
	}
	return buildCartResponse(next), nil
}

// SetQuantity は数量を上書きする。0以下は削除と同じ。IDが無ければ何もしない。
func (u *CartUsecase) SetQuantity(ctx context.Context, id string, quantity int64) (CartResponse, error) {
	if quantity <= 0 {
		return u.RemoveItem(ctx, id)
	}

	lines, err := u.load(ctx)
	if err != nil {
		return CartResponse{}, err
	}

	for i := range lines {
		if lines[i].ID == id {
			lines[i].Quantity = quantity
			break
		}
	}

	if err := u.save(ctx, lines); err != nil {
		return CartResponse{}, err
	}
	return buildCartResponse(lines), nil
}

// Clear はカートを無条件に空にする。
func (u *CartUsecase) Clear(ctx context.Context) (CartResponse, error) {
	empty := []model.CartLine{}
	if err := u.save(ctx, empty); err != nil {
		return CartResponse{}, err
	}
	return buildCartResponse(empty), nil
}

// TotalPrice は Σ(price × quantity)。空カートは0。
func (u *CartUsecase) TotalPrice(ctx context.Context) (int64, error) {
	lines, err := u.load(ctx)
	if err != nil {
		return 0, err
	}
	return buildCartResponse(lines).Total, nil
}

// 保存済みの明細リストを読む。キーが無ければ空スライス。
func (u *CartUsecase) load(ctx context.Context) ([]model.CartLine, error) {
	raw, err := u.kv.Get(ctx, cartStorageKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return []model.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []model.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// 明細リストを全量書き戻す。
func (u *CartUsecase) save(ctx context.Context, lines []model.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return u.kv.Set(ctx, cartStorageKey, raw)
}

func buildCartResponse(lines []model.CartLine) CartResponse {
	var total int64 = 0
	for _, l := range lines {
		total += l.Price * l.Quantity
	}
	return CartResponse{Items: lines, Total: total}
}
