// Scores an observation sequence against the model.
package main

import (
	"fmt"

	"github.com/codegangsta/cli"
	"github.com/golang/glog"
	"github.com/okulab/trellis"
	"github.com/okulab/trellis/hmm"
)

var scoreCommand = cli.Command{
	Name:      "score",
	ShortName: "s",
	Usage:     "Computes the total probability of a sequence under the model.",
	Description: `runs the forward recursion and prints the terminal probability.

ex:
 $ trellis score -m casino.yaml -q ATGCG
`,
	Action: scoreAction,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "model-file, m", Usage: "model definition file"},
		cli.StringFlag{Name: "sequence, q", Usage: "observation sequence"},
		cli.BoolFlag{Name: "backward", Usage: "cross-check with the backward recursion"},
		cli.BoolFlag{Name: "show-tables", Usage: "print the filled probability tables"},
	},
}

func scoreAction(c *cli.Context) {

	initApp(c)

	requiredStringParam(c, "model-file", &config.ModelFile)
	requiredStringParam(c, "sequence", &config.Sequence)

	model := readModel(config.ModelFile)
	seq := symbols(config.Sequence)
	trellis.Fatal(model.Validate(seq))

	f, e := hmm.Forward(model, seq)
	trellis.Fatal(e)
	total, e := f.AtState(model.End(), len(seq)+1)
	trellis.Fatal(e)
	fmt.Printf("forward probability: %e\n", total)

	if c.Bool("show-tables") || config.Decoder.ShowTables {
		printTable("forward", f)
	}

	if c.Bool("backward") {
		b, e := hmm.Backward(model, seq)
		trellis.Fatal(e)
		btotal, e := b.AtState(model.Begin(), 0)
		trellis.Fatal(e)
		fmt.Printf("backward probability: %e\n", btotal)
		if c.Bool("show-tables") || config.Decoder.ShowTables {
			printTable("backward", b)
		}
	}
}

func readModel(fn string) *hmm.Model {

	mf, e := trellis.ReadModelFileName(fn)
	trellis.Fatal(e)
	glog.V(1).Infof("read model %q with states %v", mf.Name, mf.States)
	model, e := mf.Model()
	trellis.Fatal(e)
	return model
}
