package httproster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"horse-medical-records/internal/domain/horses"
	"horse-medical-records/internal/platform/httpclient"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

var ErrNotFound = horses.ErrNotFound

const (
	DefaultCacheTTL = 30 * time.Second
	listKey         = "horses"
)

type Options struct {
	Timeout time.Duration
	// CacheTTL <0 desactiva el cache; 0 => DefaultCacheTTL.
	CacheTTL time.Duration
}

// Roster lee el roster desde un servicio externo: GET {baseURL}/horses
// devuelve un array JSON de caballos. La lista se cachea CacheTTL.
type Roster struct {
	client *httpclient.Client
	cache  *cache.Cache
	group  singleflight.Group
}

var _ horses.Roster = (*Roster)(nil)

func New(baseURL string, opts Options) (*Roster, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("roster base url required")
	}
	c, err := httpclient.New(baseURL, httpclient.Options{Timeout: opts.Timeout, Retries: 1})
	if err != nil {
		return nil, err
	}
	return NewWithClient(c, opts.CacheTTL), nil
}

// NewWithClient permite inyectar el client (tests).
func NewWithClient(c *httpclient.Client, ttl time.Duration) *Roster {
	r := &Roster{client: c}
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	if ttl > 0 {
		r.cache = cache.New(ttl, 2*ttl)
	}
	return r
}

func (r *Roster) List(ctx context.Context) ([]horses.Horse, error) {
	if r.cache != nil {
		if v, ok := r.cache.Get(listKey); ok {
			return clone(v.([]horses.Horse)), nil
		}
	}

	// Requests concurrentes con cache vacío comparten un solo fetch. El fetch
	// no hereda la cancelación del primero que llega; lo acota el timeout del client.
	ch := r.group.DoChan(listKey, func() (any, error) {
		items, err := r.fetch(context.WithoutCancel(ctx))
		if err == nil && r.cache != nil {
			r.cache.SetDefault(listKey, items)
		}
		return items, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return clone(res.Val.([]horses.Horse)), nil
	}
}

// Invalidate descarta la lista cacheada.
func (r *Roster) Invalidate() {
	if r.cache != nil {
		r.cache.Delete(listKey)
	}
}

func (r *Roster) fetch(ctx context.Context) ([]horses.Horse, error) {
	var out []horses.Horse
	if err := r.client.GetJSON(ctx, "/horses", &out); err != nil {
		return nil, fmt.Errorf("roster list: %w", err)
	}

	// Solo entradas con id; el orden del upstream se respeta.
	filtered := make([]horses.Horse, 0, len(out))
	for _, h := range out {
		h.ID = strings.TrimSpace(h.ID)
		if h.ID == "" {
			continue
		}
		filtered = append(filtered, h)
	}
	return filtered, nil
}

// GetByID filtra sobre List; el contrato del roster no expone lookup por id.
func (r *Roster) GetByID(ctx context.Context, id string) (horses.Horse, error) {
	items, err := r.List(ctx)
	if err != nil {
		return horses.Horse{}, err
	}
	for _, h := range items {
		if h.ID == id {
			return h, nil
		}
	}
	return horses.Horse{}, ErrNotFound
}

func clone(items []horses.Horse) []horses.Horse {
	return append([]horses.Horse(nil), items...)
}
