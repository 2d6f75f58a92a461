// Samples random sequences from the model.
package main

import (
	"fmt"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/okulab/trellis"
	"github.com/okulab/trellis/hmm"
)

var sampleCommand = cli.Command{
	Name:      "sample",
	ShortName: "g",
	Usage:     "Generates random sequences from the model.",
	Description: `samples state paths and emitted symbols.

ex:
 $ trellis sample -m casino.yaml -n 5
`,
	Action: sampleAction,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "model-file, m", Usage: "model definition file"},
		cli.IntFlag{Name: "num, n", Value: 1, Usage: "number of sequences"},
		cli.IntFlag{Name: "max-length, l", Value: 100, Usage: "maximum emissions per sequence"},
		cli.Int64Flag{Name: "seed", Value: 33, Usage: "random seed"},
	},
}

func sampleAction(c *cli.Context) {

	initApp(c)

	requiredStringParam(c, "model-file", &config.ModelFile)

	num := intParam(c, "num", config.Sampler.Num)
	maxLen := intParam(c, "max-length", config.Sampler.MaxLen)
	seed := int64Param(c, "seed", config.Sampler.Seed)

	model := readModel(config.ModelFile)
	gen := hmm.NewGenerator(model, seed)
	for n := 0; n < num; n++ {
		path, obs, e := gen.Next(maxLen)
		trellis.Fatal(e)
		fmt.Printf("obs:  %s\n", strings.Join(obs, " "))
		fmt.Printf("path: %s\n", strings.Join(path, " "))
	}
}
