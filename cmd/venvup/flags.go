// ABOUTME: CLI flag parsing using stdlib flag, one FlagSet per subcommand
// ABOUTME: Supports --config, --no-pause, --plain, --verbose, --version

package main

import "flag"

type cliArgs struct {
	config  string
	noPause bool
	plain   bool
	verbose bool
	version bool
}

func parseFlags(sub string, argv []string) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("venvup "+sub, flag.ContinueOnError)
	fs.StringVar(&args.config, "config", "", "Project manifest path (default venvup.yaml)")
	fs.BoolVar(&args.noPause, "no-pause", false, "Skip the final acknowledgment prompt")
	fs.BoolVar(&args.plain, "plain", false, "Plain output: no progress UI, no styled rendering")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	return args, nil
}
