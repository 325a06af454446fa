package repo

import (
	"github.com/decentracode/creditcore/internal/pg"
	accountrepo "github.com/decentracode/creditcore/internal/repo/account-repo"
	ledgerrepo "github.com/decentracode/creditcore/internal/repo/ledger-repo"
	reputationrepo "github.com/decentracode/creditcore/internal/repo/reputation-repo"
)

// Repositories exposes the concrete repos. The account repo backs several
// services, each consuming its own narrow interface.
type Repositories struct {
	AccountRepo    *accountrepo.Repository
	LedgerRepo     *ledgerrepo.Repository
	ReputationRepo *reputationrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:    accountrepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn),
		ReputationRepo: reputationrepo.New(conn),
	}
}
