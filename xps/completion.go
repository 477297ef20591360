package main

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the xps command line for shell completion.
func completion() *complete.Command {
	sorts := predict.Set{"date", "amount"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file":      predict.Files("*.txt"),
			"currency":         predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"color":            predict.Set{"auto", "always", "never"},
			"restamp":          predict.Nothing,
			"view-precision":   predict.Something,
			"filter-precision": predict.Something,
			"v":                predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"shell": {Flags: map[string]complete.Predictor{"load": predict.Nothing}},
			"add": {Flags: map[string]complete.Predictor{
				"d": predict.Something,
				"a": predict.Something,
				"c": predict.Something,
			}},
			"import": {
				Flags: map[string]complete.Predictor{
					"path":             predict.Something,
					"desc":             predict.Something,
					"amount":           predict.Something,
					"category":         predict.Something,
					"date":             predict.Something,
					"default-category": predict.Something,
				},
				Args: predict.Files("*.json"),
			},
			"fmt":      {Flags: map[string]complete.Predictor{"sort": sorts}},
			"view":     {Flags: map[string]complete.Predictor{"sort": sorts, "w": predict.Nothing}},
			"filter":   {Flags: map[string]complete.Predictor{"s": predict.Something, "e": predict.Something}},
			"progress": {Flags: map[string]complete.Predictor{"target": predict.Something}},
			"summary":  {Flags: map[string]complete.Predictor{"target": predict.Something}},
			"topic":    {Args: predict.Set{"shell", "format", "commands", "import", "config", "*"}},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
