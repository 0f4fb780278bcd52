package imdshttp

import (
	"log"
	"sync"
	"time"
)

// StartPrune стартует периодическую очистку просроченных токенов.
func StartPrune(tokens *TokenStore, every time.Duration) func() {
	if every <= 0 {
		return func() {}
	}

	ticker := time.NewTicker(every)
	stop := make(chan struct{})
	var once sync.Once
	go func() {
		for {
			select {
			case <-ticker.C:
				if n := tokens.Prune(); n > 0 {
					log.Printf("imds: pruned %d expired tokens", n)
				}
			case <-stop:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(stop)
		})
	}
}
