package scrape

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"
)

// Fetcher 網頁抓取器
// 帶重試與回應大小限制，只接受 HTML 類型的內容
type Fetcher struct {
	client            *resty.Client
	maxBodySize       int64
	allowPrivateHosts bool
}

// NewFetcher 創建抓取器
func NewFetcher(cfg *config.FetchConfig) *Fetcher {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9,de;q=0.8,da;q=0.7").
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(cfg.MaxRedirects)).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			// 403 多半是暫時性的反爬攔截，退避後重試
			return r.StatusCode() == http.StatusForbidden || r.StatusCode() >= http.StatusInternalServerError
		})

	return &Fetcher{
		client:            client,
		maxBodySize:       cfg.MaxBodySize,
		allowPrivateHosts: cfg.AllowPrivateHosts,
	}
}

// ValidateURL 驗證網址格式並拒絕內部網路位址
func ValidateURL(rawURL string) error {
	return validateURL(rawURL, false)
}

func validateURL(rawURL string, allowPrivateHosts bool) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return common.NewError(common.ErrInvalidURL.Code, "網址不能為空", http.StatusBadRequest, nil)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return common.NewError(common.ErrInvalidURL.Code, "網址格式錯誤", http.StatusBadRequest, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return common.NewError(common.ErrInvalidURL.Code, "只支援 http/https 網址", http.StatusBadRequest, nil)
	}
	if parsed.Host == "" {
		return common.NewError(common.ErrInvalidURL.Code, "網址缺少主機名稱", http.StatusBadRequest, nil)
	}

	// SSRF 防護：主機是 IP 字面值時擋掉內部網段
	if !allowPrivateHosts {
		if ip := net.ParseIP(parsed.Hostname()); ip != nil &&
			(ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast()) {
			return common.NewError(common.ErrInvalidURL.Code, "不允許存取內部網路位址", http.StatusBadRequest, nil)
		}
	}
	return nil
}

// Fetch 抓取網頁 HTML
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := validateURL(rawURL, f.allowPrivateHosts); err != nil {
		return nil, err
	}

	common.LogInfo("開始抓取網頁", zap.String("url", rawURL))

	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		common.LogError("網頁抓取失敗", zap.String("url", rawURL), zap.Error(err))
		return nil, common.NewError(common.ErrFetchFailed.Code, "網頁抓取失敗", http.StatusBadGateway, err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("網頁回應狀態異常",
			zap.String("url", rawURL),
			zap.Int("status", resp.StatusCode()))
		return nil, common.NewError(common.ErrFetchFailed.Code,
			fmt.Sprintf("網頁回應狀態 %d", resp.StatusCode()), http.StatusBadGateway, nil)
	}

	contentType := strings.ToLower(resp.Header().Get("Content-Type"))
	if contentType != "" &&
		!strings.Contains(contentType, "text/html") &&
		!strings.Contains(contentType, "application/xhtml") &&
		!strings.Contains(contentType, "application/xml") {
		return nil, common.NewError(common.ErrFetchFailed.Code,
			fmt.Sprintf("不支援的內容類型 %s", contentType), http.StatusBadGateway, nil)
	}

	body := resp.Body()
	if int64(len(body)) > f.maxBodySize {
		return nil, common.NewError(common.ErrFetchFailed.Code,
			fmt.Sprintf("回應大小超過上限 %d bytes", f.maxBodySize), http.StatusBadGateway, nil)
	}

	common.LogDebug("網頁抓取成功",
		zap.String("url", rawURL),
		zap.Int("bytes", len(body)))
	return body, nil
}
