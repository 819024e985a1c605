package config

import (
	"fmt"
	"os"
	"strconv"
)

// KVの保存先
const (
	KVBackendMemory   = "memory"
	KVBackendRedis    = "redis"
	KVBackendPostgres = "postgres"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	KVBackend string // memory / redis / postgres

	RedisAddr     string // Redisアドレス（localhost:6379）
	RedisPassword string // Redisパスワード
	RedisDB       int    // RedisのDB番号

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数
// Postgres接続はinfra/db側で読む。
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		KVBackend: getenv("KV_BACKEND", KVBackendPostgres),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: getenv("FE_URL", "http://localhost:5173"),
	}

	redisDB, err := atoiOr("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.RedisDB = redisDB

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}

	switch cfg.KVBackend {
	case KVBackendMemory, KVBackendRedis, KVBackendPostgres:
	default:
		return Config{}, fmt.Errorf("KV_BACKEND must be memory, redis or postgres")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
