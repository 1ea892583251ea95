package convert_test

import (
	"fmt"

	"github.com/calintat/sd-visualiser/pkg/convert"
	"github.com/calintat/sd-visualiser/pkg/syntax/spartan"
)

func ExampleConvert() {
	// bind x = 1; bind y = plus(x, 2); yield y
	e := &spartan.Expr{
		Binds: []spartan.Bind{
			{Def: "x", Value: spartan.Operation{Op: spartan.Number(1)}},
			{Def: "y", Value: spartan.Operation{Op: spartan.Plus, Args: []spartan.Arg{
				spartan.Variable{Name: "x"},
				spartan.Operation{Op: spartan.Number(2)},
			}}},
		},
		Values: []spartan.Value{spartan.Variable{Name: "y"}},
	}

	g, err := convert.Convert(e)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, node := range g.Nodes() {
		fmt.Println(node)
	}
	// Output:
	// op[2](1)
	// op[1](2)
	// op[0](+)
}
