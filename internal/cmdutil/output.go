package cmdutil

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pyrepo/cli/internal/cmdtypes"
	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/generator"
	"github.com/pyrepo/cli/internal/output"
)

// Collector accumulates generator results across the steps of one command.
type Collector struct {
	res generator.Result
}

// Add merges res and passes err through, so a step reads
// `if err := c.Add(generator.Flask(gen)); err != nil`.
func (c *Collector) Add(res *generator.Result, err error) error {
	c.res.Merge(res)
	return err
}

// Result returns everything collected so far.
func (c *Collector) Result() *generator.Result {
	return &c.res
}

// Say writes one progress line to the command output.
func Say(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

// PrintSummary writes the tree of files a command wrote. Nothing is printed
// when the command wrote no files.
func PrintSummary(w io.Writer, cfg *cmdtypes.GlobalConfig, res *generator.Result) {
	if res == nil || (len(res.Files) == 0 && len(res.Dirs) == 0) {
		return
	}
	root := filepath.Base(cfg.Gen.BaseDir)
	fmt.Fprint(w, "\n"+output.RenderFileTree(root, res.Tree()))
}

// Finish prints the summary and converts err into an ExitError carrying its exit code.
// Files written before a failure are still listed.
func Finish(w io.Writer, cfg *cmdtypes.GlobalConfig, c *Collector, err error) error {
	PrintSummary(w, cfg, c.Result())
	if err != nil {
		return oerrors.AsExitError(err)
	}
	return nil
}
