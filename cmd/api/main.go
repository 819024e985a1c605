package main

import (
	"context"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/kv"
	infraRepo "app/internal/infra/repository"
	"app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	// .envは無くてもよい（本番は環境変数をそのまま使う）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続（カタログは常にPostgres）
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&kv.Entry{},
	); err != nil {
		panic(err)
	}

	//KVStore（カート・セッション・ユーザーディレクトリの保存先）
	var kvStore repository.KVStore
	switch cfg.KVBackend {
	case config.KVBackendMemory:
		kvStore = kv.NewMemoryStore()
	case config.KVBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		kvStore = kv.NewRedisStore(client)
	default:
		kvStore = kv.NewGormStore(gormDB)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(kvStore)
	cartUC := usecase.NewCartUsecase(kvStore)
	productUC := usecase.NewProductUsecase(productRepo, idGen)

	//初回seed（管理者1件と初期カタログ）
	ctx := context.Background()
	if err := authUC.Seed(ctx); err != nil {
		panic(err)
	}
	if err := productUC.Seed(ctx); err != nil {
		panic(err)
	}

	//Handler生成
	h := server.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Cart:         handler.NewCartHandler(cartUC),
		Product:      handler.NewProductHandler(productUC),
		AdminUser:    handler.NewAdminUserHandler(authUC),
		AdminProduct: handler.NewAdminProductHandler(productUC, authUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, h); err != nil {
		panic(err)
	}
}
