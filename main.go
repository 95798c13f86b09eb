package main

import (
	"context"
	"flag"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/MixinNetwork/uniques/engine"
	"github.com/MixinNetwork/uniques/store"
	"github.com/MixinNetwork/uniques/uniques"
	"github.com/shopspring/decimal"
)

func main() {
	ctx := context.Background()

	bp := flag.String("d", "~/.mixin/uniques/data", "database directory path")
	cp := flag.String("c", "~/.mixin/uniques/config.toml", "configuration file path")
	flag.Parse()

	if strings.HasPrefix(*cp, "~/") {
		usr, _ := user.Current()
		*cp = filepath.Join(usr.HomeDir, (*cp)[2:])
	}
	conf, err := Setup(*cp)
	if err != nil {
		panic(err)
	}

	if strings.HasPrefix(*bp, "~/") {
		usr, _ := user.Current()
		*bp = filepath.Join(usr.HomeDir, (*bp)[2:])
	}
	db, err := store.OpenBadger(ctx, *bp)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	params, err := conf.DepositParams()
	if err != nil {
		panic(err)
	}
	err = seedGenesis(db, conf)
	if err != nil {
		panic(err)
	}

	eng := engine.Build(db, uniques.NewPallet(params), conf.Force)
	eng.AddSink(&EventLogger{})
	eng.Run(ctx)
}

const genesisPropertyKey = "UNIQUES:APP:GENESIS"

// seedGenesis credits the configured balances exactly once per database.
func seedGenesis(db *store.BadgerStore, conf *Configuration) error {
	val, err := db.ReadProperty([]byte(genesisPropertyKey))
	if err != nil || val != nil {
		return err
	}
	err = db.Update(func(s uniques.State) error {
		for _, g := range conf.Genesis {
			amount, err := decimal.NewFromString(g.Amount)
			if err != nil {
				return err
			}
			err = s.Credit(g.Account, amount)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return db.WriteProperty([]byte(genesisPropertyKey), []byte{1})
}
