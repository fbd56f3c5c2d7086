package session

import (
	"context"
	"errors"
	"math"

	"app/internal/domain/model"
	"app/internal/usecase"
)

type State string

const (
	StateIdle    State = "IDLE"
	StateLoading State = "LOADING"
	StateReady   State = "READY"
	StateError   State = "ERROR"
)

var (
	ErrNotReady          = errors.New("session not ready")
	ErrUnknownRestaurant = errors.New("unknown restaurant")
	ErrOrderNotAllowed   = errors.New("order not allowed")
)

// 読み込み失敗時にユーザーへ見せる定型文
const loadErrorMessage = "Unable to load data. Make sure backend is running."

// Session は1ブラウザセッション分の状態機械。
// カートの中身や合計はサーバーが返した値だけを持ち、
// 表示用の合計はDisplayTotalで毎回計算し直す（永続はしない）。
type Session struct {
	api    API
	userID string

	state       State
	message     string
	restaurants []model.Restaurant
	selected    *model.Restaurant
	menu        []model.MenuItem
	cart        usecase.CartResponse

	// メニュー取得の追い越し対策。古い選択の応答は捨てる。
	selectEpoch int
}

func NewSession(api API, userID string) *Session {
	return &Session{
		api:    api,
		userID: userID,
		state:  StateIdle,
	}
}

func (s *Session) State() State                    { return s.state }
func (s *Session) Message() string                 { return s.message }
func (s *Session) Restaurants() []model.Restaurant { return s.restaurants }
func (s *Session) Selected() *model.Restaurant     { return s.selected }
func (s *Session) Menu() []model.MenuItem          { return s.menu }
func (s *Session) Cart() usecase.CartResponse      { return s.cart }

// Start はシード→店舗一覧→カートの順で読み込み、
// 先頭の店舗を自動選択してメニューも取ってくる。
// 途中で失敗したらErrorに落として中途半端な状態は残さない。
func (s *Session) Start(ctx context.Context) error {
	s.state = StateLoading
	s.message = ""

	if err := s.api.Seed(ctx); err != nil {
		return s.failLoad(err)
	}

	restaurants, err := s.api.ListRestaurants(ctx)
	if err != nil {
		return s.failLoad(err)
	}

	cart, err := s.api.GetCart(ctx, s.userID)
	if err != nil {
		return s.failLoad(err)
	}

	s.restaurants = restaurants
	s.cart = cart
	s.state = StateReady

	if len(restaurants) > 0 {
		if err := s.Select(ctx, restaurants[0].ID); err != nil {
			return s.failLoad(err)
		}
	}

	return nil
}

// Select は店舗を切り替えてメニューを取り直す。カートには触らない。
func (s *Session) Select(ctx context.Context, restaurantID string) error {
	if s.state != StateReady {
		return ErrNotReady
	}

	var found *model.Restaurant
	for i := range s.restaurants {
		if s.restaurants[i].ID == restaurantID {
			found = &s.restaurants[i]
			break
		}
	}
	if found == nil {
		return ErrUnknownRestaurant
	}

	s.selected = found
	s.selectEpoch++
	epoch := s.selectEpoch

	menu, err := s.api.GetMenu(ctx, restaurantID)
	if err != nil {
		return s.handleError(err)
	}

	// 別の選択に追い越された応答は適用しない
	if epoch != s.selectEpoch {
		return nil
	}

	s.menu = menu
	return nil
}

// AddItem は選択中の店舗のメニューをカートへ追加し、
// サーバーが確定したカートをそのまま映す。
func (s *Session) AddItem(ctx context.Context, item model.MenuItem) error {
	if s.state != StateReady || s.selected == nil {
		return ErrNotReady
	}

	cart, err := s.api.AddToCart(ctx, s.userID, usecase.AddItemInput{
		RestaurantID: s.selected.ID,
		MenuItemID:   item.ID,
		Name:         item.Name,
		Price:        item.Price,
		Quantity:     1,
	})
	if err != nil {
		return s.handleError(err)
	}

	s.cart = cart
	return nil
}

func (s *Session) ClearCart(ctx context.Context) error {
	if s.state != StateReady {
		return ErrNotReady
	}

	cart, err := s.api.ClearCart(ctx, s.userID)
	if err != nil {
		return s.handleError(err)
	}

	s.cart = cart
	return nil
}

// CanPlaceOrder は注文ボタンを出してよいかの判定。
// 空カートと店舗不一致はサーバーへ行く前にここで止める。
func (s *Session) CanPlaceOrder() bool {
	return s.state == StateReady &&
		s.selected != nil &&
		len(s.cart.Items) > 0 &&
		s.cart.RestaurantID == s.selected.ID
}

// PlaceOrder は注文を確定し、サーバー確定後のカート（空）を読み直す。
// レースでサーバー側が空カート/店舗不一致を返しても、Readyのまま
// メッセージを出してカートを同期し直す。
func (s *Session) PlaceOrder(ctx context.Context, address string) (usecase.OrderOutput, error) {
	if !s.CanPlaceOrder() {
		return usecase.OrderOutput{}, ErrOrderNotAllowed
	}

	order, err := s.api.PlaceOrder(ctx, s.userID, s.selected.ID, address)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			s.message = apiErr.Message
			if cart, cartErr := s.api.GetCart(ctx, s.userID); cartErr == nil {
				s.cart = cart
			}
			return usecase.OrderOutput{}, err
		}
		return usecase.OrderOutput{}, s.handleError(err)
	}

	cart, err := s.api.GetCart(ctx, s.userID)
	if err != nil {
		return order, s.handleError(err)
	}

	s.cart = cart
	return order, nil
}

// DisplayTotal は最後にサーバーが確定したカートから計算し直した表示用合計。
func (s *Session) DisplayTotal() float64 {
	var total float64 = 0
	for _, it := range s.cart.Items {
		total += it.Price * float64(it.Quantity)
	}
	return round2(total)
}

func (s *Session) failLoad(err error) error {
	s.state = StateError
	s.message = loadErrorMessage
	s.restaurants = nil
	s.selected = nil
	s.menu = nil
	return err
}

// 通信断はErrorへ、サーバーの業務エラーはReadyのままメッセージだけ出す
func (s *Session) handleError(err error) error {
	var te *TransportError
	if errors.As(err, &te) {
		s.state = StateError
		s.message = loadErrorMessage
		return err
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		s.message = apiErr.Message
		return err
	}

	s.state = StateError
	s.message = loadErrorMessage
	return err
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
