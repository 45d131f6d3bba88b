package session_fx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"easytrip/pkg/memcache"
)

var Module = fx.Provide(
	ProvideSessionStore)

func ProvideSessionStore() memcache.SessionStore {
	ttl := 12 * time.Hour
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours < 1 {
			log.Printf("Invalid SESSION_TTL_HOURS %q, using default", raw)
		} else {
			ttl = time.Duration(hours) * time.Hour
		}
	}
	return memcache.NewSessionStore(ttl)
}
