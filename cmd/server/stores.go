package main

import (
	"context"
	"database/sql"

	benefitservice "welfare/internal/benefits/service"
	categorystore "welfare/internal/benefits/store/category"
	grantstore "welfare/internal/benefits/store/grant"
	certservice "welfare/internal/certificates/service"
	certstore "welfare/internal/certificates/store"
	citizenservice "welfare/internal/citizens/service"
	citizenstore "welfare/internal/citizens/store/citizen"
	regionstore "welfare/internal/citizens/store/region"
	"welfare/internal/eventlog"
	userservice "welfare/internal/users/service"
	userstore "welfare/internal/users/store/user"
	txcontext "welfare/pkg/platform/tx"
)

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// stores is one complete persistence backend. The citizen store also serves
// the benefit and certificate services as their citizen lookup.
type stores struct {
	citizens     citizenservice.CitizenStore
	regions      citizenservice.RegionStore
	categories   benefitservice.CategoryStore
	grants       benefitservice.GrantStore
	certificates certservice.Store
	users        userservice.Store
	events       eventlog.Store
	tx           txRunner
}

func memoryStores() *stores {
	return &stores{
		citizens:     citizenstore.NewInMemory(),
		regions:      regionstore.NewInMemory(),
		categories:   categorystore.NewInMemory(),
		grants:       grantstore.NewInMemory(),
		certificates: certstore.NewInMemory(),
		users:        userstore.NewInMemory(),
		events:       eventlog.NewInMemoryStore(),
		tx:           txcontext.NewMemory(),
	}
}

func postgresStores(db *sql.DB) *stores {
	return &stores{
		citizens:     citizenstore.NewPostgres(db),
		regions:      regionstore.NewPostgres(db),
		categories:   categorystore.NewPostgres(db),
		grants:       grantstore.NewPostgres(db),
		certificates: certstore.NewPostgres(db),
		users:        userstore.NewPostgres(db),
		events:       eventlog.NewPostgresStore(db),
		tx:           newPostgresTx(db),
	}
}
