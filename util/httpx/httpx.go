package httpx

import (
	"net"
	"net/http"
	"time"
)

// Shared client for order-store calls. The timeout bounds the whole callback
// chain: a gateway redirect must render a page even when the store hangs.
var defaultClient = &http.Client{
	Timeout: 8 * time.Second,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   3 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

func Client() *http.Client { return defaultClient }
