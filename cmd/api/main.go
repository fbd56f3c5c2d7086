package main

import (
	"context"
	"log"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envが無くても環境変数だけで動く
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}

	if err := gormDB.AutoMigrate(
		&model.Restaurant{},
		&model.MenuItem{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	catalogRepo := infraRepo.NewCatalogGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)
	cartUC := usecase.NewCartUsecase(cartRepo)
	orderUC := usecase.NewOrderUsecase(txm, &uuidGenerator{}, &realClock{})

	//起動時にもシードしておく（/api/seedと同じく冪等）
	if out, err := catalogUC.Seed(context.Background()); err != nil {
		panic(err)
	} else {
		log.Printf("catalog ready: %d restaurants, %d menu items", out.Restaurants, out.MenuItems)
	}

	//Handler生成
	catalogH := handler.NewCatalogHandler(catalogUC)
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(cfg, catalogH, cartH, orderH)

	addr := ":" + cfg.Port
	if err := server.Start(addr, e); err != nil {
		panic(err)
	}
}
