// Searches the most probable state path for a sequence.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/codegangsta/cli"
	"github.com/golang/glog"
	"github.com/okulab/trellis"
	"github.com/okulab/trellis/hmm"
)

var decodeCommand = cli.Command{
	Name:      "decode",
	ShortName: "d",
	Usage:     "Finds the most probable state path for a sequence.",
	Description: `runs the Viterbi recursion and traceback.

ex:
 $ trellis decode -m casino.yaml -q ATGCG
`,
	Action: decodeAction,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "model-file, m", Usage: "model definition file"},
		cli.StringFlag{Name: "sequence, q", Usage: "observation sequence"},
		cli.StringFlag{Name: "results-file, r", Usage: "write the result as json"},
		cli.BoolFlag{Name: "show-tables", Usage: "print probability and backpointer tables"},
	},
}

func decodeAction(c *cli.Context) {

	initApp(c)

	requiredStringParam(c, "model-file", &config.ModelFile)
	requiredStringParam(c, "sequence", &config.Sequence)

	out := os.Stdout
	if e := stringParam(c, "results-file", &config.ResultsFile); e == NoConfigValueError {
		glog.V(1).Info("no results file specified, writing to stdout")
	} else {
		var err error
		out, err = os.Create(config.ResultsFile)
		trellis.Fatal(err)
		defer out.Close()
	}

	model := readModel(config.ModelFile)
	seq := symbols(config.Sequence)
	trellis.Fatal(model.Validate(seq))

	v, bp, e := hmm.Viterbi(model, seq)
	trellis.Fatal(e)
	path, e := hmm.Traceback(model, bp)
	trellis.Fatal(e)
	score, e := v.AtState(model.End(), len(seq)+1)
	trellis.Fatal(e)

	if c.Bool("show-tables") || config.Decoder.ShowTables {
		printTable("viterbi", v)
		printLabelTable("backpointers", bp)
	}

	enc := json.NewEncoder(out)
	trellis.Fatal(enc.Encode(trellis.Result{
		SequenceID: config.Sequence,
		Path:       path,
		Prob:       score,
	}))
	if out != os.Stdout {
		fmt.Printf("wrote result to %s\n", config.ResultsFile)
	}
}
