package network

import (
	"errors"
	"net/url"
	"sync"
	"time"
)

var ErrNoProxies = errors.New("no proxies available")

// Rotator hands out proxies round-robin and benches any proxy a board has
// started rejecting.
type Rotator struct {
	proxies  []*url.URL
	cooldown time.Duration
	benched  map[string]time.Time
	index    int
	mu       sync.Mutex
}

func NewRotator(raw []string, cooldown time.Duration) (*Rotator, error) {
	rotator := &Rotator{
		cooldown: cooldown,
		benched:  map[string]time.Time{},
	}
	for _, proxy := range raw {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, err
		}
		rotator.proxies = append(rotator.proxies, u)
	}
	return rotator, nil
}

func (r *Rotator) Next() (*url.URL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.proxies) == 0 {
		return nil, ErrNoProxies
	}

	start := r.index
	for {
		proxy := r.proxies[r.index]
		r.index = (r.index + 1) % len(r.proxies)

		if !r.isBenched(proxy) {
			return proxy, nil
		}
		if r.index == start {
			return nil, ErrNoProxies
		}
	}
}

// Report benches the proxy when the upstream status says blocked or throttled.
func (r *Rotator) Report(proxy *url.URL, status int) {
	if proxy == nil {
		return
	}
	if status != 403 && status != 429 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.benched[proxy.String()] = time.Now().Add(r.cooldown)
}

func (r *Rotator) isBenched(proxy *url.URL) bool {
	until, ok := r.benched[proxy.String()]
	if !ok {
		return false
	}
	if time.Now().After(until) {
		delete(r.benched, proxy.String())
		return false
	}
	return true
}
