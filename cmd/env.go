package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvLedgerFile      = "XPS_LEDGER_FILE"
	EnvCurrency        = "XPS_CURRENCY"
	EnvColor           = "XPS_COLOR"
	EnvRestamp         = "XPS_RESTAMP"
	EnvViewPrecision   = "XPS_VIEW_PRECISION"
	EnvFilterPrecision = "XPS_FILTER_PRECISION"
	EnvVerbose         = "XPS_VERBOSE"
)

// envFlags maps environment variables to the global flag they set.
var envFlags = []struct{ env, flag string }{
	{EnvLedgerFile, "ledger-file"},
	{EnvCurrency, "currency"},
	{EnvColor, "color"},
	{EnvRestamp, "restamp"},
	{EnvViewPrecision, "view-precision"},
	{EnvFilterPrecision, "filter-precision"},
	{EnvVerbose, "v"},
}

// LoadEnv sets the global flags of flags from the environment.
//
// The dotenv files are loaded first (".env" if none is given); a missing
// file is not an error and variables already set in the environment win.
// LoadEnv must be called before flags.Parse so that the command line wins.
func LoadEnv(flags *flag.FlagSet, dotenv ...string) error {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load env file: %w", err)
	}
	for _, ef := range envFlags {
		v, ok := os.LookupEnv(ef.env)
		if !ok || flags.Lookup(ef.flag) == nil {
			continue
		}
		if err := flags.Set(ef.flag, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", ef.env, v, err)
		}
	}
	return nil
}
