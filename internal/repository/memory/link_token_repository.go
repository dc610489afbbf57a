package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// LinkToken is the one-time code behind a magic sign-in link. It lives only
// in memory until it is exchanged or expires.
type LinkToken struct {
	Code      string
	UserId    uuid.UUID
	Email     string
	CreatedAt time.Time
}

type LinkTokenRepository struct {
	cache *cache.Cache
}

func NewLinkTokenRepository() *LinkTokenRepository {
	// Codes expire after 15 minutes; expired entries purge every 5.
	c := cache.New(15*time.Minute, 5*time.Minute)
	return &LinkTokenRepository{
		cache: c,
	}
}

func (r *LinkTokenRepository) Save(token *LinkToken) {
	r.cache.Set(token.Code, token, cache.DefaultExpiration)
}

// Consume returns and deletes the token, so each code exchanges at most once.
func (r *LinkTokenRepository) Consume(code string) (*LinkToken, bool) {
	x, found := r.cache.Get(code)
	if !found {
		return nil, false
	}
	r.cache.Delete(code)
	return x.(*LinkToken), true
}
