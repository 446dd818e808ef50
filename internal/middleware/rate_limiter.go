package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// bucket acumula os instantes das requisições recentes de uma chave. Os
// instantes são sempre anexados em ordem, então a poda corta um prefixo.
type bucket struct {
	stamps []time.Time
}

func (b *bucket) prune(cutoff time.Time) {
	keep := 0
	for keep < len(b.stamps) && !b.stamps[keep].After(cutoff) {
		keep++
	}
	if keep > 0 {
		b.stamps = append(b.stamps[:0], b.stamps[keep:]...)
	}
}

// RateLimiter limita requisições por chave em uma janela deslizante.
// Uma goroutine de varredura remove chaves ociosas; Stop a encerra.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration
	done    chan struct{}
	once    sync.Once
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		done:    make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// Allow registra a requisição e responde se ela cabe na janela da chave.
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b := rl.buckets[key]
	if b == nil {
		b = &bucket{}
		rl.buckets[key] = b
	}

	b.prune(now.Add(-rl.window))
	if len(b.stamps) >= rl.limit {
		return false
	}
	b.stamps = append(b.stamps, now)
	return true
}

// Stop encerra a varredura. Seguro chamar mais de uma vez.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() {
		close(rl.done)
	})
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			cutoff := now.Add(-rl.window)
			rl.mu.Lock()
			for key, b := range rl.buckets {
				b.prune(cutoff)
				if len(b.stamps) == 0 {
					delete(rl.buckets, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.done:
			return
		}
	}
}

// RateLimit limita por endereço de origem; para rotas públicas, antes da
// autenticação.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return limitBy(rl, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByUser limita pelo usuário autenticado, caindo para o endereço
// de origem quando o contexto ainda não tem identidade.
func RateLimitByUser(rl *RateLimiter) gin.HandlerFunc {
	return limitBy(rl, func(c *gin.Context) string {
		if userID, exists := c.Get("user_id"); exists {
			if id, ok := userID.(string); ok {
				return id
			}
		}
		return c.ClientIP()
	})
}

func limitBy(rl *RateLimiter, keyFor func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(keyFor(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "RATE_LIMIT_EXCEEDED",
				"message": "Muitas requisições. Tente novamente em alguns minutos.",
			})
			return
		}
		c.Next()
	}
}
