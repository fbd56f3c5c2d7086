package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	// 無ければ空カートを作って返す。有効なユーザーIDなら失敗しない。
	GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error)

	// カート行をFOR UPDATEで取得（注文確定の直列化ポイント）
	FindByUserIDForUpdate(ctx context.Context, userID string) (model.Cart, error)

	// 明細を追加順（id asc）で返す
	ListItems(ctx context.Context, cartID int64) ([]model.CartItem, error)

	// 追加をユーザー単位で直列化して行う：
	// 別店舗のカートなら明細を破棄して店舗を切り替え、
	// 同一メニューは数量加算、無ければ新規明細を追加する。
	UpsertItem(ctx context.Context, userID string, restaurantID string, item model.CartItem) (model.Cart, error)

	// 明細を全削除して店舗の紐付けも外す。空カートへのクリアも成功。
	Clear(ctx context.Context, cartID int64) error
}
