package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	RedisAddr string // カート保存用Redis（localhost:6379）

	JWTSecret string // 管理者JWTの署名シークレット

	AppDomain string // サブドメインslug解決に使うベースドメイン
	UploadDir string // 画像アップロードの保存先
	GoEnv     string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		AppDomain: os.Getenv("APP_DOMAIN"),
		UploadDir: getenv("UPLOAD_DIR", "./public/uploads"),
		GoEnv:     os.Getenv("GO_ENV"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AppDomain == "" {
		return Config{}, fmt.Errorf("APP_DOMAIN is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
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
