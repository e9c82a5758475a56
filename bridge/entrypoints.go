package bridge

import (
	"github.com/gomlx/opir"
	"github.com/gomlx/opir/strategy"
	"github.com/gomlx/opir/types"
)

// The strategy contract, bridged: construction, AddImplement, Compute and
// Schedule, each taking positional arguments of the documented types.
func init() {
	Register("opir.OpStrategy", func(args ...any) (any, error) {
		return strategy.New(), nil
	})

	Register("opir.OpStrategyAddImplement", func(args ...any) (any, error) {
		const name = "opir.OpStrategyAddImplement"
		s, err := argAt[*strategy.Strategy](name, args, 0)
		if err != nil {
			return nil, err
		}
		cond, err := argAt[strategy.Condition](name, args, 1)
		if err != nil {
			return nil, err
		}
		fcompute, err := argAt[strategy.FCompute](name, args, 2)
		if err != nil {
			return nil, err
		}
		fschedule, err := argAt[strategy.FSchedule](name, args, 3)
		if err != nil {
			return nil, err
		}
		plevel, err := argAt[int](name, args, 4)
		if err != nil {
			return nil, err
		}
		s.AddImplement(cond, fcompute, fschedule, plevel)
		return nil, nil
	})

	Register("opir.OpImplementCompute", func(args ...any) (any, error) {
		const name = "opir.OpImplementCompute"
		imp, err := argAt[*strategy.Implementation](name, args, 0)
		if err != nil {
			return nil, err
		}
		attrs := opir.Attributes(nil)
		if len(args) > 1 {
			attrs = args[1]
		}
		inputs, err := argAt[[]opir.Tensor](name, args, 2)
		if err != nil {
			return nil, err
		}
		outType, err := argAt[types.Type](name, args, 3)
		if err != nil {
			return nil, err
		}
		return imp.Compute(attrs, inputs, outType)
	})

	Register("opir.OpImplementSchedule", func(args ...any) (any, error) {
		const name = "opir.OpImplementSchedule"
		imp, err := argAt[*strategy.Implementation](name, args, 0)
		if err != nil {
			return nil, err
		}
		attrs := opir.Attributes(nil)
		if len(args) > 1 {
			attrs = args[1]
		}
		outs, err := argAt[[]opir.Tensor](name, args, 2)
		if err != nil {
			return nil, err
		}
		target, err := argAt[strategy.Target](name, args, 3)
		if err != nil {
			return nil, err
		}
		return imp.Schedule(attrs, outs, target)
	})
}
