// infer_graph is a trivial testing program: it loads a small graph
// description in JSON and runs type inference over it to fixpoint, printing
// the resolved type of every tensor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/opir/dtypes"
	"github.com/gomlx/opir/exprs"
	"github.com/gomlx/opir/ops"
	"github.com/gomlx/opir/solver"
	"github.com/gomlx/opir/types"
)

var flagGraphFile = flag.String("graph", "", "File with the JSON graph description")

type graphDesc struct {
	Tensors []tensorDesc `json:"tensors"`
	Nodes   []nodeDesc   `json:"nodes"`
}

type tensorDesc struct {
	Name  string `json:"name"`
	DType string `json:"dtype,omitempty"`
	Shape []any  `json:"shape,omitempty"`
}

type nodeDesc struct {
	Op     string   `json:"op"`
	Inputs []string `json:"inputs"`
	Output string   `json:"output"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `infer_graph runs operator type inference over a JSON graph description:

$ infer_graph -graph=<graph_file.json>

Tensors with a dtype and shape are the graph inputs; dimensions can be
numbers, symbol names, or "?" for the runtime-determined wildcard. Node
outputs are inferred. Example:

  {"tensors": [{"name": "x", "dtype": "f32", "shape": [8, 1, 6]},
               {"name": "y", "dtype": "f32", "shape": ["n", 4]}],
   "nodes": [{"op": "add", "inputs": ["x", "y"], "output": "z"}]}

Usage:
`)
		flag.PrintDefaults()
	}
	klog.InitFlags(flag.CommandLine)
	flag.Parse()

	if *flagGraphFile == "" {
		fmt.Fprintln(os.Stderr, "The graph description must be given with the --graph flag!")
		fmt.Fprintln(os.Stderr)
		flag.Usage()
		return
	}

	blob := must.M1(os.ReadFile(*flagGraphFile))
	var graph graphDesc
	must.M(json.Unmarshal(blob, &graph))

	s := solver.New()
	vars := make(map[string]int)
	names := make([]string, 0, len(graph.Tensors))
	for _, tensor := range graph.Tensors {
		vars[tensor.Name] = s.NewVar(must.M1(tensorType(tensor)))
		names = append(names, tensor.Name)
	}
	for _, node := range graph.Nodes {
		op, ok := ops.Get(node.Op)
		if !ok {
			klog.Exitf("unknown operator %q", node.Op)
		}
		nodeVars := make([]int, 0, len(node.Inputs)+1)
		for _, input := range node.Inputs {
			v, ok := vars[input]
			if !ok {
				klog.Exitf("node %q uses undefined tensor %q", node.Op, input)
			}
			nodeVars = append(nodeVars, v)
		}
		if _, ok := vars[node.Output]; !ok {
			vars[node.Output] = s.NewVar(nil)
			names = append(names, node.Output)
		}
		nodeVars = append(nodeVars, vars[node.Output])
		must.M(s.AddOp(op, nil, nodeVars...))
	}

	must.M(s.Solve())
	for _, name := range names {
		fmt.Printf("%s: %s\n", name, s.Type(vars[name]))
	}
}

// tensorType builds the declared type of a tensor, or nil if it is to be
// inferred.
func tensorType(tensor tensorDesc) (types.Type, error) {
	if tensor.DType == "" {
		return nil, nil
	}
	dtype := dtypes.FromName(tensor.DType)
	if dtype == dtypes.InvalidDType {
		return nil, errors.Errorf("tensor %q has unknown dtype %q", tensor.Name, tensor.DType)
	}
	shape := make([]exprs.Expr, len(tensor.Shape))
	for i, dim := range tensor.Shape {
		switch v := dim.(type) {
		case float64:
			shape[i] = exprs.Const(int64(v))
		case string:
			if v == "?" {
				shape[i] = exprs.Any()
			} else {
				shape[i] = exprs.Sym(v)
			}
		default:
			return nil, errors.Errorf("tensor %q has invalid dimension %v (%T)", tensor.Name, dim, dim)
		}
	}
	return types.MakeSymbolic(dtype, shape...), nil
}
