package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tieubaoca/answer-engine/config"
	"github.com/tieubaoca/answer-engine/repository"
	"github.com/tieubaoca/answer-engine/types"
	"go.uber.org/zap"
)

// Carrier names for the shipping company codes the mall actually uses.
var carrierNames = map[string]string{
	"0019": "롯데 택배",
	"0039": "경동 택배",
	"0023": "경동 택배",
}

// CommerceService is the Cafe24 admin API client. Tokens live in the
// corpus store and are rotated by a separate job; a 401 here means our
// in-memory copy is stale, so we re-read and retry once.
type CommerceService struct {
	client *resty.Client
	tokens repository.TokenRepo
	cfg    config.CommerceConfig
	logger *zap.Logger

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

func NewCommerceService(cfg config.CommerceConfig, tokens repository.TokenRepo, logger *zap.Logger) *CommerceService {
	client := resty.New().
		SetBaseURL(fmt.Sprintf("https://%s.cafe24api.com/api/v2", cfg.MallID)).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Cafe24-Api-Version", cfg.APIVersion)

	return &CommerceService{
		client:       client,
		tokens:       tokens,
		cfg:          cfg,
		logger:       logger,
		accessToken:  cfg.AccessToken,
		refreshToken: cfg.RefreshToken,
	}
}

// LoadTokens pulls the persisted token pair, seeding the store from the
// environment-supplied pair when nothing is persisted yet.
func (s *CommerceService) LoadTokens(ctx context.Context) error {
	stored, err := s.tokens.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read commerce tokens: %w", err)
	}
	if stored == nil {
		return s.tokens.Save(ctx, &types.CommerceTokens{
			AccessToken:  s.access(),
			RefreshToken: s.refresh(),
		})
	}
	s.mu.Lock()
	s.accessToken = stored.AccessToken
	s.refreshToken = stored.RefreshToken
	s.mu.Unlock()
	return nil
}

// RecentOrders lists the member's orders from the last 14 days, items
// included.
func (s *CommerceService) RecentOrders(ctx context.Context, memberID string) ([]types.Order, error) {
	now := time.Now()
	params := map[string]string{
		"member_id":  memberID,
		"start_date": now.AddDate(0, 0, -14).Format("2006-01-02"),
		"end_date":   now.Format("2006-01-02"),
		"limit":      "10",
		"embed":      "items",
	}
	var out types.OrdersResponse
	if err := s.get(ctx, "/admin/orders", params, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// Shipment returns the first shipment of the order, carrier name resolved.
func (s *CommerceService) Shipment(ctx context.Context, orderID string) (*types.Shipment, error) {
	var out types.ShipmentsResponse
	path := fmt.Sprintf("/admin/orders/%s/shipments", orderID)
	if err := s.get(ctx, path, map[string]string{"shop_no": "1"}, &out); err != nil {
		return nil, err
	}
	if len(out.Shipments) == 0 {
		return nil, nil
	}
	shipment := out.Shipments[0]
	if name, ok := carrierNames[shipment.ShippingCompanyCode]; ok {
		shipment.ShippingCompanyName = name
	} else if shipment.ShippingCompanyName == "" {
		shipment.ShippingCompanyName = "지정 택배사"
	}
	return &shipment, nil
}

func (s *CommerceService) get(ctx context.Context, path string, params map[string]string, out interface{}) error {
	resp, err := s.request(ctx, path, params, out)
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		if err := s.refreshTokens(ctx); err != nil {
			return err
		}
		resp, err = s.request(ctx, path, params, out)
		if err != nil {
			return err
		}
	}
	if resp.IsError() {
		return fmt.Errorf("commerce api %s: status %d", path, resp.StatusCode())
	}
	return nil
}

func (s *CommerceService) request(ctx context.Context, path string, params map[string]string, out interface{}) (*resty.Response, error) {
	return s.client.R().
		SetContext(ctx).
		SetAuthToken(s.access()).
		SetQueryParams(params).
		SetResult(out).
		Get(path)
}

// refreshTokens exchanges the refresh token for a new pair and persists it.
// Another instance may have rotated already, so the store copy is tried
// first.
func (s *CommerceService) refreshTokens(ctx context.Context) error {
	s.logger.Warn("commerce token rejected, refreshing")

	if stored, err := s.tokens.Get(ctx); err == nil && stored != nil && stored.AccessToken != s.access() {
		s.mu.Lock()
		s.accessToken = stored.AccessToken
		s.refreshToken = stored.RefreshToken
		s.mu.Unlock()
		return nil
	}

	var refreshed struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetBasicAuth(s.cfg.ClientID, s.cfg.ClientSecret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": s.refresh(),
		}).
		SetResult(&refreshed).
		Post("/oauth/token")
	if err != nil {
		return fmt.Errorf("token refresh request failed: %w", err)
	}
	if resp.IsError() || refreshed.AccessToken == "" {
		return fmt.Errorf("token refresh rejected: status %d", resp.StatusCode())
	}

	s.mu.Lock()
	s.accessToken = refreshed.AccessToken
	s.refreshToken = refreshed.RefreshToken
	s.mu.Unlock()

	if err := s.tokens.Save(ctx, &types.CommerceTokens{
		AccessToken:  refreshed.AccessToken,
		RefreshToken: refreshed.RefreshToken,
	}); err != nil {
		s.logger.Error("failed to persist refreshed commerce tokens", zap.Error(err))
	}
	return nil
}

func (s *CommerceService) access() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *CommerceService) refresh() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}
