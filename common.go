package trellis

import "github.com/golang/glog"

// Result pairs a decoded state path with the score reported by the decoder.
type Result struct {
	SequenceID string   `json:"id"`
	Path       []string `json:"path"`
	Prob       float64  `json:"prob"`
}

func Fatal(err error) {
	if err != nil {
		glog.Fatal(err)
	}
}
