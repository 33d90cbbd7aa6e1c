package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/text/encoding/charmap"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/flavioheleno/fonttab"
	"github.com/flavioheleno/fonttab/specimen"
)

const (
	envFileFlagName  = "env-file"
	logLevelFlagName = "log-level"
	charsetFlagName  = "charset"
	outputFlagName   = "output"
	labelFlagName    = "label"
	workersFlagName  = "workers"
	pngFlagName      = "png"
	pdfFlagName      = "pdf"
	scaleFlagName    = "scale"
	busFlagName      = "bus"
	addrFlagName     = "addr"
	textFlagName     = "text"
	pageFlagName     = "page"
	heightFlagName   = "height"
)

var log = logrus.New()

func newApp() *cli.App {
	return &cli.App{
		Name:  "fonttab",
		Usage: "build SSD1306 font tables from visual 8x8 glyph tables",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  envFileFlagName,
				Usage: "load environment variables from `FILE` before reading flags",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    logLevelFlagName,
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"FONTTAB_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    charsetFlagName,
				Usage:   "code page mapping codes to characters",
				Value:   "iso8859-1",
				EnvVars: []string{"FONTTAB_CHARSET"},
			},
		},
		Before: before,
		Commands: []*cli.Command{
			{
				Name:      "asm",
				Usage:     "write the assembly font table",
				ArgsUsage: "<table>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    outputFlagName,
						Aliases: []string{"o"},
						Usage:   "output `FILE`",
						Value:   "fonttab.inc",
						EnvVars: []string{"FONTTAB_OUTPUT"},
					},
					&cli.StringFlag{
						Name:    labelFlagName,
						Usage:   "table start label",
						Value:   "fonttab",
						EnvVars: []string{"FONTTAB_LABEL"},
					},
					&cli.IntFlag{
						Name:    workersFlagName,
						Usage:   "concurrent glyph encoders (0: one per CPU)",
						EnvVars: []string{"FONTTAB_WORKERS"},
					},
				},
				Action: asmAction,
			},
			{
				Name:      "specimen",
				Usage:     "render a proof sheet of the table",
				ArgsUsage: "<table>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: pngFlagName, Usage: "write a PNG sheet to `FILE`", EnvVars: []string{"FONTTAB_PNG"}},
					&cli.StringFlag{Name: pdfFlagName, Usage: "write a PDF sheet to `FILE`", EnvVars: []string{"FONTTAB_PDF"}},
					&cli.IntFlag{Name: scaleFlagName, Usage: "PNG pixels per glyph pixel", Value: 4, EnvVars: []string{"FONTTAB_SCALE"}},
				},
				Action: specimenAction,
			},
			{
				Name:      "upload",
				Usage:     "draw text with the table on an SSD1306 over I2C",
				ArgsUsage: "<table>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: busFlagName, Usage: "I2C bus name (empty for default)", EnvVars: []string{"FONTTAB_BUS"}},
					&cli.StringFlag{Name: addrFlagName, Usage: "I2C address", Value: "0x3C", EnvVars: []string{"FONTTAB_ADDR"}},
					&cli.IntFlag{Name: heightFlagName, Usage: "display height (32 or 64)", Value: 64, EnvVars: []string{"FONTTAB_HEIGHT"}},
					&cli.StringFlag{Name: textFlagName, Usage: "text to draw", Value: "Hello", EnvVars: []string{"FONTTAB_TEXT"}},
					&cli.IntFlag{Name: pageFlagName, Usage: "first page (8 pixel row) to draw on", EnvVars: []string{"FONTTAB_PAGE"}},
				},
				Action: uploadAction,
			},
		},
	}
}

// before loads the env file and configures logging. Command flags are parsed
// after it runs, so their FONTTAB_* variables can come from the env file.
func before(ctx *cli.Context) error {
	envFile := ctx.String(envFileFlagName)
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	} else if ctx.IsSet(envFileFlagName) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	level, err := logrus.ParseLevel(envOr(ctx, logLevelFlagName, "FONTTAB_LOG_LEVEL"))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(ctx.App.ErrWriter)
	return nil
}

// envOr returns the flag value, or the environment variable when the flag
// was not given on the command line. Global flags are parsed before the env
// file is loaded, so their variables are looked up again here.
func envOr(ctx *cli.Context, name, env string) string {
	if !ctx.IsSet(name) {
		if v, ok := os.LookupEnv(env); ok {
			return v
		}
	}
	return ctx.String(name)
}

func charset(ctx *cli.Context) (*charmap.Charmap, error) {
	return fonttab.LookupCharset(envOr(ctx, charsetFlagName, "FONTTAB_CHARSET"))
}

// readTable reads the table named by the single command argument.
func readTable(ctx *cli.Context) (*fonttab.Table, string, *charmap.Charmap, error) {
	if ctx.NArg() != 1 {
		return nil, "", nil, fmt.Errorf("%s requires 1 argument, see help %s", ctx.Command.Name, ctx.Command.Name)
	}
	cs, err := charset(ctx)
	if err != nil {
		return nil, "", nil, err
	}
	input := ctx.Args().Get(0)
	t, err := fonttab.ReadFile(input, cs)
	if err != nil {
		return nil, "", nil, err
	}
	log.WithFields(logrus.Fields{"input": input, "glyphs": t.Len()}).Debug("read table")
	return t, input, cs, nil
}

func asmAction(ctx *cli.Context) error {
	t, input, cs, err := readTable(ctx)
	if err != nil {
		return err
	}
	return fonttab.WriteFile(ctx.Context, ctx.String(outputFlagName), t, &fonttab.Opts{
		Label:   ctx.String(labelFlagName),
		Source:  filepath.Base(input),
		Charset: cs,
		Workers: ctx.Int(workersFlagName),
		Log:     log,
	})
}

func specimenAction(ctx *cli.Context) error {
	t, _, cs, err := readTable(ctx)
	if err != nil {
		return err
	}
	pngPath, pdfPath := ctx.String(pngFlagName), ctx.String(pdfFlagName)
	if pngPath == "" && pdfPath == "" {
		return errors.New("specimen requires --png or --pdf")
	}
	opts := &specimen.Opts{Scale: ctx.Int(scaleFlagName), Charset: cs}

	if pngPath != "" {
		if err := writeSheet(pngPath, func(f *os.File) error {
			return specimen.PNG(ctx.Context, f, t, opts)
		}); err != nil {
			return err
		}
	}
	if pdfPath != "" {
		if err := writeSheet(pdfPath, func(f *os.File) error {
			return specimen.PDF(ctx.Context, f, t, opts)
		}); err != nil {
			return err
		}
	}
	return nil
}

// writeSheet creates path and fills it with render. A failed render
// removes the partial file.
func writeSheet(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &fonttab.IOError{Op: "create", Path: path, Err: err}
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return &fonttab.IOError{Op: "close", Path: path, Err: err}
	}
	log.WithField("path", path).Info("wrote specimen")
	return nil
}

func uploadAction(ctx *cli.Context) error {
	t, _, cs, err := readTable(ctx)
	if err != nil {
		return err
	}
	addr, err := strconv.ParseUint(ctx.String(addrFlagName), 0, 16)
	if err != nil {
		return fmt.Errorf("bad I2C address: %w", err)
	}
	text, err := cs.NewEncoder().String(ctx.String(textFlagName))
	if err != nil {
		return fmt.Errorf("text not representable in %s: %w", cs, err)
	}
	recs, err := t.Records(ctx.Context, 0)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("initializing periph.io: %w", err)
	}
	bus, err := i2creg.Open(ctx.String(busFlagName))
	if err != nil {
		return fmt.Errorf("opening I2C bus: %w", err)
	}
	defer bus.Close()

	dev, err := fonttab.NewI2C(bus, uint16(addr), &fonttab.DevOpts{W: 128, H: ctx.Int(heightFlagName)})
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"dev": dev.String(), "text": ctx.String(textFlagName)}).Info("drawing")
	return dev.DrawText(0, ctx.Int(pageFlagName), []byte(text), fonttab.Font(recs))
}
