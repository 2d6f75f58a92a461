package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/golang/glog"
	"github.com/okulab/trellis"
)

var config *trellis.Config

var NoConfigValueError = errors.New("no config value")

func main() {

	app := cli.NewApp()
	app.Name = "trellis"
	app.Usage = "discrete hidden Markov model inference tool."
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config-file, c", Value: "config.yaml", Usage: "run configuration file (yaml or toml)"},
	}
	app.Commands = []cli.Command{
		scoreCommand,
		decodeCommand,
		sampleCommand,
	}

	defer glog.Flush()
	if err := app.Run(os.Args); err != nil {
		glog.Fatalf("%s", err)
	}
}

func initApp(c *cli.Context) {

	fn := c.GlobalString("config-file")
	var e error
	config, e = trellis.ReadConfig(fn)
	if e != nil {
		glog.V(1).Infof("no config file [%s], using flags only", fn)
		config = &trellis.Config{}
	}
}

// stringParam reads a command flag, falling back to the config file value.
func stringParam(c *cli.Context, name string, param *string) error {
	v := c.String(name)
	if len(v) > 0 {
		*param = v
	}
	if len(*param) == 0 {
		return NoConfigValueError
	}
	return nil
}

func requiredStringParam(c *cli.Context, name string, param *string) {
	if e := stringParam(c, name, param); e != nil {
		trellis.Fatal(fmt.Errorf("missing required parameter [%s]", name))
	}
}

// intParam merges a command flag with its config file value. A flag given
// on the command line always wins, even when it equals the flag default;
// otherwise a nonzero config value overrides the default.
func intParam(c *cli.Context, name string, fallback int) int {
	if c.IsSet(name) || fallback == 0 {
		return c.Int(name)
	}
	return fallback
}

func int64Param(c *cli.Context, name string, fallback int64) int64 {
	if c.IsSet(name) || fallback == 0 {
		return c.Int64(name)
	}
	return fallback
}

// symbols splits an observation sequence argument. Whitespace separates
// multi-character symbols; otherwise every character is one symbol.
func symbols(s string) []string {
	if strings.ContainsAny(s, " \t") {
		return strings.Fields(s)
	}
	return strings.Split(s, "")
}
