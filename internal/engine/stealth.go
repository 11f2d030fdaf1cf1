package engine

import (
	"log/slog"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go-stealth/proxypool"
)

// BrowserClient is an HTTP client with a Chrome TLS fingerprint.
type BrowserClient = stealth.BrowserClient

func ChromeHeaders() map[string]string { return stealth.ChromeHeaders() }
func RandomUserAgent() string          { return stealth.RandomUserAgent() }

// NewBrowserClient builds the stealth client used for the watch page.
// A non-empty webshareKey routes requests through a Webshare proxy pool;
// a pool that fails to initialize is logged and skipped.
func NewBrowserClient(timeout time.Duration, webshareKey string) (*BrowserClient, error) {
	var opts []stealth.ClientOption
	opts = append(opts, stealth.WithTimeout(int(timeout/time.Second)))

	if webshareKey != "" {
		pool, err := proxypool.NewWebshare(webshareKey)
		if err != nil {
			slog.Warn("proxy pool init failed, running without proxy", slog.Any("error", err))
		} else {
			opts = append(opts, stealth.WithProxyPool(pool))
			slog.Info("proxy pool initialized", slog.Int("proxies", pool.Len()))
		}
	}

	return stealth.NewClient(opts...)
}
