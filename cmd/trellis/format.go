// Table rendering. Presentation only, the numeric tables are read as-is.
package main

import (
	"fmt"
	"strings"

	"github.com/okulab/trellis/hmm"
	"gonum.org/v1/gonum/mat"
)

func printTable(name string, t *hmm.Table) {

	fmt.Printf("%s table (rows: states, cols: 0..L+1):\n", name)
	d := t.Dense()
	for i := 0; i < t.NumStates(); i++ {
		row := mat.Formatted(d.RowView(i).T(), mat.Squeeze())
		fmt.Printf("  %-8s %v\n", t.StateAt(i), row)
	}
}

func printLabelTable(name string, t *hmm.LabelTable) {

	fmt.Printf("%s table (rows: states, cols: 0..L+1):\n", name)
	for i := 0; i < t.NumStates(); i++ {
		row := make([]string, t.NumCols())
		for j := 0; j < t.NumCols(); j++ {
			row[j] = t.At(i, j)
		}
		fmt.Printf("  %-8s %s\n", t.StateAt(i), strings.Join(row, " "))
	}
}
