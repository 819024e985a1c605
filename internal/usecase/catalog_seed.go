package usecase

import "app/internal/domain/model"

const cdnBase = "https://cdn.poehali.dev/projects/50057c2f-4a7c-4faf-89e3-fc8fda96e514/files/"

// 初期カタログ。カタログが空の初回起動時だけ投入される。
var seedProducts = []model.Product{
	{
		ID:       "prod-1",
		Name:     "Gamma 625C",
		Price:    9002,
		OldPrice: 10590,
		Discount: 15,
		Image:    cdnBase + "5775337f-7789-48f4-acdf-91d66b106d15.jpg",
		Category: "Динамики",
	},
	{
		ID:       "prod-2",
		Name:     "Alpine Type-R R-W12D4",
		Price:    18500,
		OldPrice: 22000,
		Discount: 16,
		Image:    cdnBase + "2e9b8eee-5010-4686-ab90-248b58173451.jpg",
		Category: "Сабвуферы",
	},
	{
		ID:       "prod-3",
		Name:     "Pioneer TS-A1370F",
		Price:    4990,
		Image:    cdnBase + "eaadeda8-d024-4f2d-9d73-9a92d6224b64.jpg",
		Category: "Динамики",
	},
	{
		ID:       "prod-4",
		Name:     "Apocalypse DB-SA252D2",
		Price:    12952,
		OldPrice: 16190,
		Discount: 20,
		Image:    cdnBase + "2e9b8eee-5010-4686-ab90-248b58173451.jpg",
		Category: "Сабвуферы",
	},
	{
		ID:       "prod-5",
		Name:     "JBL GTO629",
		Price:    7500,
		Image:    cdnBase + "eaadeda8-d024-4f2d-9d73-9a92d6224b64.jpg",
		Category: "Динамики",
	},
	{
		ID:       "prod-6",
		Name:     "Rockford Fosgate P3D4-12",
		Price:    15900,
		OldPrice: 18500,
		Discount: 14,
		Image:    cdnBase + "2e9b8eee-5010-4686-ab90-248b58173451.jpg",
		Category: "Сабвуферы",
	},
}
