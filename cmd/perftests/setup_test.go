package perftests

import (
	"context"
	"fmt"
	"math"
	"time"

	"meme-market/internal/ledger"
	model "meme-market/internal/models"
	"meme-market/internal/repository"
	"meme-market/internal/wallet"
	"meme-market/utils"
)

func init() {
	// instant buys log at info level; keep benchmark output readable
	utils.SetLevel("error")
}

// setupLedger creates a memory-backed ledger holding numMemes memes priced at 100
func setupLedger(numMemes int) (*repository.MemoryRepo, *ledger.Ledger) {
	repo := repository.NewMemoryRepo()
	now := time.Now().UTC()
	for i := 0; i < numMemes; i++ {
		repo.AddMeme(model.Meme{
			MemeID:    fmt.Sprintf("meme_%d", i),
			Title:     fmt.Sprintf("title_%d", i),
			ImageURL:  "https://example.com/load.png",
			Tags:      []string{"doge"},
			OwnerID:   ledger.SystemOwnerID,
			OwnerName: ledger.SystemOwnerName,
			Price:     100,
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
			Version:   1,
		})
	}
	l := ledger.NewLedger(repo, nil)
	if err := l.Refresh(context.Background()); err != nil {
		panic(err)
	}
	return repo, l
}

// richSession returns a signed-in session that will not run out of credits during a benchmark
func richSession(dir *wallet.Directory, name string) *wallet.Session {
	s := wallet.NewSession(dir)
	if _, err := s.Login(name); err != nil {
		panic(err)
	}
	s.UpdateCredits(math.MaxInt32)
	return s
}
