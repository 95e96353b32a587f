package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"SellerAgent/app/api/shopper/internal/agent/normalize"
	"SellerAgent/app/api/shopper/internal/agent/recommend"
	"SellerAgent/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const serviceName = "storefront-backend"

var (
	ErrNotConfigured = errors.New("remote backend not configured")
	// ErrStatus wraps every non-2xx answer from the backend.
	ErrStatus = errors.New("unexpected backend status")
	// ErrMalformedPayload reports a 2xx answer whose body lacks a usable shape.
	ErrMalformedPayload = errors.New("malformed backend payload")
)

// Client talks to the storefront backend. A nil *Client behaves as an
// unconfigured backend and fails every call with ErrNotConfigured.
type Client struct {
	baseURL string
	svc     httpc.Service
}

func NewClient(baseURL string) *Client {
	return NewClientWithHTTP(baseURL, http.DefaultClient)
}

func NewClientWithHTTP(baseURL string, cli *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		svc:     httpc.NewServiceWithClient(serviceName, cli, withJSONAccept),
	}
}

func withJSONAccept(r *http.Request) *http.Request {
	r.Header.Set("Accept", "application/json")
	return r
}

type createSessionResp struct {
	SessionID      string `json:"session_id"`
	SessionIDCamel string `json:"sessionId"`
}

// CreateSession asks the backend for a new session id.
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	var resp createSessionResp
	if err := c.doJSON(ctx, http.MethodPost, "/sessions/", nil, struct{}{}, &resp); err != nil {
		return "", err
	}
	if resp.SessionID != "" {
		return resp.SessionID, nil
	}
	return resp.SessionIDCamel, nil
}

type recommendReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type recommendResp struct {
	Response string          `json:"response"`
	Products json.RawMessage `json:"products"`
}

// Recommend forwards the query and normalizes the products of the answer.
// A missing, null or non-list products field is ErrMalformedPayload.
func (c *Client) Recommend(ctx context.Context, q recommend.Query) (*recommend.Reply, error) {
	var resp recommendResp
	req := recommendReq{Message: q.Text, SessionID: q.SessionID}
	if err := c.doJSON(ctx, http.MethodPost, "/recommend/", nil, req, &resp); err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(resp.Products)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: recommend reply has no products", ErrMalformedPayload)
	}
	raws, err := normalize.ExtractProductList(raw)
	switch {
	case errors.Is(err, normalize.ErrUnknownEnvelope):
		return nil, fmt.Errorf("%w: recommend products: %w", ErrMalformedPayload, err)
	case err != nil:
		logx.WithContext(ctx).Errorw("recommend products partially malformed", logx.Field("err", err.Error()))
	}
	return &recommend.Reply{Message: resp.Response, Products: normalize.NormalizeAll(raws)}, nil
}

// ListProducts fetches the backend catalog in any supported list envelope.
// Malformed items are skipped; an unrecognized envelope is an error.
func (c *Client) ListProducts(ctx context.Context, f catalog.Filter) ([]catalog.Product, error) {
	query := url.Values{}
	if f.Category != "" {
		query.Set("category", f.Category)
	}
	if f.Search != "" {
		query.Set("search", f.Search)
	}

	body, err := c.do(ctx, http.MethodGet, "/products/", query, nil)
	if err != nil {
		return nil, err
	}

	raws, err := normalize.ExtractProductList(body)
	switch {
	case errors.Is(err, normalize.ErrUnknownEnvelope):
		return nil, fmt.Errorf("list products: %w", err)
	case err != nil:
		logx.WithContext(ctx).Errorw("product list partially malformed", logx.Field("err", err.Error()))
	}
	return normalize.NormalizeAll(raws), nil
}

type addCartReq struct {
	ProductID any    `json:"product_id"`
	Quantity  int    `json:"quantity"`
	SessionID string `json:"session_id"`
}

// AddCartItem posts one cart line. Numeric ids go out as JSON numbers.
func (c *Client) AddCartItem(ctx context.Context, sessionID string, productID catalog.ID, quantity int) error {
	req := addCartReq{ProductID: productID.String(), Quantity: quantity, SessionID: sessionID}
	if n, err := strconv.ParseInt(productID.String(), 10, 64); err == nil {
		req.ProductID = n
	}
	_, err := c.do(ctx, http.MethodPost, "/cart/", nil, req)
	return err
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	body, err := c.do(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	if err := jsonx.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	if c == nil || c.svc == nil || c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if in != nil {
		payload, err := jsonx.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.svc.DoRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s %s returned %d", ErrStatus, method, path, resp.StatusCode)
	}
	return body, nil
}
