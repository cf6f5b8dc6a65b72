package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/haggle/core"
	"github.com/hupe1980/haggle/strategy"
)

type buyerFactory func(curve core.CurveParams) strategy.Strategy

var buyerFactories = map[string]buyerFactory{
	"diplomat": func(curve core.CurveParams) strategy.Strategy { return strategy.NewDiplomat(curve) },
	"hardball": func(core.CurveParams) strategy.Strategy { return strategy.NewHardball() },
	"patient":  func(core.CurveParams) strategy.Strategy { return strategy.NewPatient() },
	"greedy":   func(core.CurveParams) strategy.Strategy { return strategy.NewGreedy() },
}

var sellerFactories = map[string]func() strategy.Strategy{
	"firm":    func() strategy.Strategy { return strategy.NewFirmSeller() },
	"gradual": func() strategy.Strategy { return strategy.NewGradualSeller() },
}

func buyerByName(name string, curve core.CurveParams) (strategy.Strategy, error) {
	factory, ok := buyerFactories[name]
	if !ok {
		return nil, fmt.Errorf("unknown buyer strategy %q (available: %s)", name, names(buyerFactories))
	}
	return factory(curve), nil
}

func sellerByName(name string) (strategy.Strategy, error) {
	factory, ok := sellerFactories[name]
	if !ok {
		return nil, fmt.Errorf("unknown seller strategy %q (available: %s)", name, names(sellerFactories))
	}
	return factory(), nil
}

func names[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
