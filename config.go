package main

import (
	"os"

	"github.com/MixinNetwork/uniques/uniques"
	"github.com/pelletier/go-toml"
	"github.com/shopspring/decimal"
)

type Configuration struct {
	Force   string `toml:"force-origin"`
	Deposit struct {
		Collection    string `toml:"collection"`
		Item          string `toml:"item"`
		MetadataBase  string `toml:"metadata-base"`
		AttributeBase string `toml:"attribute-base"`
		PerByte       string `toml:"per-byte"`
	} `toml:"deposit"`
	Genesis []struct {
		Account string `toml:"account"`
		Amount  string `toml:"amount"`
	} `toml:"genesis"`
}

func Setup(path string) (*Configuration, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Configuration
	err = toml.Unmarshal(f, &conf)
	return &conf, err
}

func (c *Configuration) DepositParams() (uniques.DepositParams, error) {
	var params uniques.DepositParams
	var err error
	params.CollectionDeposit, err = decimal.NewFromString(c.Deposit.Collection)
	if err != nil {
		return params, err
	}
	params.ItemDeposit, err = decimal.NewFromString(c.Deposit.Item)
	if err != nil {
		return params, err
	}
	params.MetadataDepositBase, err = decimal.NewFromString(c.Deposit.MetadataBase)
	if err != nil {
		return params, err
	}
	params.AttributeDepositBase, err = decimal.NewFromString(c.Deposit.AttributeBase)
	if err != nil {
		return params, err
	}
	params.DepositPerByte, err = decimal.NewFromString(c.Deposit.PerByte)
	return params, err
}
