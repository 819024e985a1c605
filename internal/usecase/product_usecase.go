package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 商品IDの採番
type IDGenerator interface {
	NewID() string
}

// ProductUsecase はカタログの業務ロジックです。
type ProductUsecase struct {
	productRepo repo.ProductRepository
	idGen       IDGenerator
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, idGen IDGenerator) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		idGen:       idGen,
	}
}

type ProductListInput struct {
	Q        string
	Category string
	Sort     string
}

type ProductListResponse struct {
	Items []model.Product `json:"items"`
}

type SaveProductInput struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	OldPrice int64  `json:"old_price"`
	Discount int64  `json:"discount"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// List は商品一覧（名前の部分一致・カテゴリ・価格ソート）。
func (u *ProductUsecase) List(ctx context.Context, in ProductListInput) (ProductListResponse, error) {
	switch in.Sort {
	case "", "default", "price-asc", "price-desc":
	default:
		return ProductListResponse{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Q:        in.Q,
		Category: in.Category,
		Sort:     in.Sort,
	})
	if err != nil {
		return ProductListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListResponse{Items: items}, nil
}

// FindByID は商品1件。
func (u *ProductUsecase) FindByID(ctx context.Context, id string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// Create は商品を新規作成する（管理者用）。name/price/categoryは必須。
func (u *ProductUsecase) Create(ctx context.Context, in SaveProductInput) (model.Product, error) {
	if err := validateSaveProduct(in); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		ID:       "prod-" + u.idGen.NewID(),
		Name:     strings.TrimSpace(in.Name),
		Price:    in.Price,
		OldPrice: in.OldPrice,
		Discount: in.Discount,
		Image:    in.Image,
		Category: in.Category,
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// Update は商品を上書きする（管理者用）。
func (u *ProductUsecase) Update(ctx context.Context, id string, in SaveProductInput) (model.Product, error) {
	if err := validateSaveProduct(in); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		ID:       id,
		Name:     strings.TrimSpace(in.Name),
		Price:    in.Price,
		OldPrice: in.OldPrice,
		Discount: in.Discount,
		Image:    in.Image,
		Category: in.Category,
	}

	err := u.productRepo.Update(ctx, p)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.FindByID(ctx, id)
}

// Delete は商品を削除する（管理者用）。
func (u *ProductUsecase) Delete(ctx context.Context, id string) error {
	err := u.productRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Seed はカタログが空のときだけ初期商品を投入する。
func (u *ProductUsecase) Seed(ctx context.Context) error {
	total, err := u.productRepo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	for _, p := range seedProducts {
		if _, err := u.productRepo.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func validateSaveProduct(in SaveProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if strings.TrimSpace(in.Category) == "" {
		return NewHTTPError(http.StatusBadRequest, "category is required")
	}
	return nil
}
