package repo

import (
	"github.com/vpoletaev/giftwell/internal/pg"
	contributionrepo "github.com/vpoletaev/giftwell/internal/repo/contribution-repo"
	userrepo "github.com/vpoletaev/giftwell/internal/repo/user-repo"
	wishrepo "github.com/vpoletaev/giftwell/internal/repo/wish-repo"
	"github.com/vpoletaev/giftwell/internal/service/authservice"
	"github.com/vpoletaev/giftwell/internal/service/contributionservice"
)

type Repositories struct {
	UserRepo         authservice.Repo
	WishRepo         *wishrepo.Repository
	ContributionRepo contributionservice.ContributionRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	wishRepo := wishrepo.New(conn, txManager)
	contributionRepo := contributionrepo.New(conn)

	return &Repositories{
		UserRepo:         userRepo,
		WishRepo:         wishRepo,
		ContributionRepo: contributionRepo,
	}
}
