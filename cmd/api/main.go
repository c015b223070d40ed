package main

import (
	"time"

	"catalogo/internal/config"
	"catalogo/internal/domain/model"
	"catalogo/internal/handler"
	"catalogo/internal/infra/cartstore"
	"catalogo/internal/infra/db"
	infraRepo "catalogo/internal/infra/repository"
	"catalogo/internal/infra/token"
	"catalogo/internal/infra/upload"
	"catalogo/internal/server"
	"catalogo/internal/usecase"
	auth "catalogo/internal/usecase/auth_usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くても起動できる（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Catalog{},
		&model.Category{},
		&model.Product{},
		&model.Admin{},
		&model.SiteVisit{},
	); err != nil {
		panic(err)
	}

	//Redis（カート保存）
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	//Repository（GORM実装）生成
	catalogRepo := infraRepo.NewCatalogGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	adminRepo := infraRepo.NewAdminGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	visitRepo := infraRepo.NewVisitGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	cartStore := cartstore.NewRedisCartStore(redisClient)

	//usecaseに渡す部品
	clock := &realClock{}
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := token.NewJWTIssuer(cfg.JWTSecret, 24*time.Hour)

	uploadStorage, err := upload.NewDiskStorage(cfg.UploadDir)
	if err != nil {
		panic(err)
	}

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(catalogRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	productUC := usecase.NewProductUsecase(productRepo, inventoryRepo)
	cartUC := usecase.NewCartUsecase(cartStore, productRepo, clock, logger)
	orderUC := usecase.NewOrderUsecase(cartStore, catalogRepo, txManager, clock, logger)
	visitUC := usecase.NewVisitUsecase(visitRepo, clock, logger)
	loginUC := auth.NewLoginUsecase(adminRepo, verifier, issuer, clock)

	//Handler生成
	handlers := server.Handlers{
		Catalog:       handler.NewCatalogHandler(catalogUC, categoryUC),
		Product:       handler.NewProductHandler(productUC),
		Cart:          handler.NewCartHandler(cartUC, orderUC),
		Visit:         handler.NewVisitHandler(visitUC),
		AdminAuth:     handler.NewAdminAuthHandler(loginUC),
		AdminProduct:  handler.NewAdminProductHandler(productUC),
		AdminCategory: handler.NewAdminCategoryHandler(categoryUC),
		AdminCatalog:  handler.NewAdminCatalogHandler(catalogUC),
		Upload:        handler.NewUploadHandler(uploadStorage),
	}

	//Server起動
	e := server.New(cfg, catalogRepo, handlers, logger)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(goEnv string) (*zap.Logger, error) {
	if goEnv == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
