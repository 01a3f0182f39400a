package commands

import (
	"git.home.luguber.info/inful/syclconfigure/internal/version"
	"github.com/alecthomas/kong"
)

// NewParser builds the kong parser for cli.
func NewParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("syclconfigure"),
		kong.Description("Generate build files from CMake configuration files"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.String()},
	}
	return kong.New(cli, append(base, options...)...)
}
