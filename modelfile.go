package trellis

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/okulab/trellis/hmm"
	"gopkg.in/yaml.v2"
)

// Arc is a state transition with its probability.
type Arc struct {
	From string  `yaml:"from" json:"from"`
	To   string  `yaml:"to" json:"to"`
	Prob float64 `yaml:"prob" json:"prob"`
}

// ModelFile is the on-disk definition of a discrete HMM. States are listed
// in order, begin first and end last. Emission rows are keyed by state.
type ModelFile struct {
	Name        string                        `yaml:"name" json:"name"`
	States      []string                      `yaml:"states" json:"states"`
	Transitions []Arc                         `yaml:"transitions" json:"transitions"`
	Emissions   map[string]map[string]float64 `yaml:"emissions" json:"emissions"`
}

// ReadModelFile reads a model definition from an io.Reader.
func ReadModelFile(r io.Reader) (*ModelFile, error) {

	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	mf := &ModelFile{}
	err = yaml.Unmarshal(b, mf)
	if err != nil {
		return nil, err
	}
	return mf, nil
}

// ReadModelFileName reads a model definition from a file.
func ReadModelFileName(fn string) (*ModelFile, error) {

	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadModelFile(f)
}

// Write writes the model definition to an io.Writer.
func (mf *ModelFile) Write(w io.Writer) error {

	b, err := yaml.Marshal(mf)
	if err != nil {
		return err
	}
	_, e := w.Write(b)
	return e
}

// WriteFile writes the model definition to a file.
func (mf *ModelFile) WriteFile(fn string) error {

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	return mf.Write(f)
}

// Model builds the validated hmm.Model described by the file.
func (mf *ModelFile) Model() (*hmm.Model, error) {

	trans := make(map[string]map[string]float64)
	for _, arc := range mf.Transitions {
		row, ok := trans[arc.From]
		if !ok {
			row = make(map[string]float64)
			trans[arc.From] = row
		}
		row[arc.To] = arc.Prob
	}
	return hmm.NewModel(mf.States, trans, mf.Emissions)
}
