package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/internal/config"
	"github.com/wbrown/img2ascii/internal/log"
)

type cliOptions struct {
	Mode         string `short:"m" long:"mode" choice:"classic" choice:"halfblock" choice:"block" description:"Rendering mode (default: halfblock)"`
	Charset      string `short:"c" long:"charset" choice:"standard" choice:"extended" choice:"simple" choice:"blocks" choice:"custom" description:"Character set for classic mode (default: extended)"`
	Chars        string `long:"chars" description:"Custom character ramp, darkest to lightest (implies --charset custom)"`
	Width        int    `short:"w" long:"width" description:"Output width in characters (default: terminal width)"`
	Height       int    `long:"height" description:"Output height in characters (default: terminal height)"`
	Output       string `short:"o" long:"output" description:"Write to a file instead of the console (.png writes an image)"`
	HTML         bool   `long:"html" description:"Write an HTML page (requires --output)"`
	NoColor      bool   `long:"no-color" description:"Disable color output"`
	Invert       bool   `short:"i" long:"invert" description:"Invert brightness for light terminal backgrounds"`
	Watch        bool   `long:"watch" description:"Re-render when the terminal is resized (console only)"`
	PreserveANSI bool   `long:"preserve-ansi" description:"Keep color codes in text file output"`
	Compact      bool   `long:"compact" description:"Drop redundant color codes"`
	Sharpen      bool   `long:"sharpen" description:"Sharpen the image after resizing"`
	Resample     string `long:"resample" choice:"lanczos" choice:"area" choice:"linear" choice:"nearest" description:"Scaling filter (default: lanczos)"`
	Font         string `long:"font" description:"TrueType font for PNG output"`
	Config       string `long:"config" description:"Config file (default: $XDG_CONFIG_HOME/img2ascii/config.yaml)"`
	Verbose      bool   `short:"v" long:"verbose" description:"Print timing and debug information to stderr"`
	Version      bool   `long:"version" description:"Print version and exit"`

	Args struct {
		Image string `positional-arg-name:"image" description:"Image to convert"`
	} `positional-args:"yes"`
}

func parseArgs(args []string) (*cliOptions, *flags.Parser, error) {
	cli := &cliOptions{}
	parser := flags.NewParser(cli, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "img2ascii"
	parser.Usage = "[OPTIONS] <image>"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, parser, err
	}
	if len(rest) > 0 {
		return nil, parser, fmt.Errorf("unexpected argument %q", rest[0])
	}
	return cli, parser, nil
}

// loadConfig reads the config file. An explicit path must exist; the
// default location is optional.
func loadConfig(path string) (*config.File, error) {
	required := path != ""
	if !required {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			log.Debug("no config dir: %v", err)
			return &config.File{}, nil
		}
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}
	log.Debug("config: %s", path)
	return cfg, nil
}

// isSet reports whether a flag was given on the command line.
func isSet(parser *flags.Parser, long string) bool {
	opt := parser.FindOptionByLongName(long)
	return opt != nil && opt.IsSet() && !opt.IsSetDefault()
}

// pick returns the flag value when it was given, then the config value,
// then the fallback.
func pick(parser *flags.Parser, long, flagValue, configValue, fallback string) string {
	switch {
	case isSet(parser, long):
		return flagValue
	case configValue != "":
		return configValue
	default:
		return fallback
	}
}

// buildOptions merges flags over config defaults. Boolean options are
// on when either the flag or the config file sets them; a flag cannot
// switch off a boolean the config file enabled.
func buildOptions(cli *cliOptions, parser *flags.Parser, cfg *config.File) (img2ascii.Options, error) {
	mode, err := img2ascii.ParseRenderMode(pick(parser, "mode", cli.Mode, cfg.Mode, "halfblock"))
	if err != nil {
		return img2ascii.Options{}, err
	}
	charset, err := img2ascii.ParseCharacterSet(pick(parser, "charset", cli.Charset, cfg.Charset, "extended"))
	if err != nil {
		return img2ascii.Options{}, err
	}
	resample, err := imageutil.ParseInterpolation(pick(parser, "resample", cli.Resample, cfg.Resample, "lanczos"))
	if err != nil {
		return img2ascii.Options{}, err
	}

	// Custom characters from the config only apply when --charset leaves
	// the choice open; --chars always wins.
	chars := cfg.Chars
	switch {
	case isSet(parser, "chars"):
		chars = cli.Chars
	case isSet(parser, "charset") && charset != img2ascii.CharsetCustom:
		chars = ""
	}

	opts := []img2ascii.Option{
		img2ascii.WithMode(mode),
		img2ascii.WithCharset(charset),
		img2ascii.WithCustomChars(chars),
		img2ascii.WithWidth(cli.Width),
		img2ascii.WithHeight(cli.Height),
		img2ascii.WithOutput(cli.Output),
		img2ascii.WithHTML(cli.HTML),
		img2ascii.WithNoColor(cli.NoColor || cfg.NoColor),
		img2ascii.WithInvert(cli.Invert || cfg.Invert),
		img2ascii.WithPreserveANSI(cli.PreserveANSI || cfg.PreserveANSI),
		img2ascii.WithWatch(cli.Watch),
		img2ascii.WithCompact(cli.Compact || cfg.Compact),
		img2ascii.WithSharpen(cli.Sharpen || cfg.Sharpen),
		img2ascii.WithResample(resample),
		img2ascii.WithFont(pick(parser, "font", cli.Font, cfg.Font, "")),
	}
	if cfg.Watch.Interval > 0 {
		opts = append(opts, img2ascii.WithWatchInterval(cfg.Watch.Interval))
	}
	return img2ascii.NewOptions(cli.Args.Image, opts...), nil
}

// checkFlags rejects flag combinations that are invalid regardless of
// the config file, so they are reported before it is read.
func checkFlags(cli *cliOptions) error {
	return img2ascii.NewOptions(cli.Args.Image,
		img2ascii.WithOutput(cli.Output),
		img2ascii.WithHTML(cli.HTML),
		img2ascii.WithWidth(cli.Width),
		img2ascii.WithHeight(cli.Height),
	).Validate()
}
