package fetcher

import "net/url"

// Strategy wraps a target URL in one relay's fetch-arbitrary-URL contract.
// Relays are interchangeable; the fetcher tries them in order.
type Strategy interface {
	Name() string
	URL(target string) string
}

// CorsProxy relays through corsproxy.io. A key unlocks the relay's paid tier;
// without one the free tier is used.
type CorsProxy struct {
	Key string
}

func (CorsProxy) Name() string { return "corsproxy.io" }

func (p CorsProxy) URL(target string) string {
	u := "https://corsproxy.io/?" + url.QueryEscape(target)
	if p.Key != "" {
		u += "&key=" + url.QueryEscape(p.Key)
	}
	return u
}

// AllOrigins relays through api.allorigins.win's raw endpoint.
type AllOrigins struct{}

func (AllOrigins) Name() string { return "allorigins.win" }

func (AllOrigins) URL(target string) string {
	return "https://api.allorigins.win/raw?url=" + url.QueryEscape(target)
}

// DefaultStrategies returns the relay chain in preference order.
func DefaultStrategies(corsProxyKey string) []Strategy {
	return []Strategy{
		CorsProxy{Key: corsProxyKey},
		AllOrigins{},
	}
}
