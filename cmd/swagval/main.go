package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"

	"github.com/reoring/swagval"
	"github.com/reoring/swagval/i18n"
	"github.com/reoring/swagval/loader"
	"github.com/reoring/swagval/schema"
	"github.com/reoring/swagval/value"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "swagval CLI\n\nUsage:\n  swagval validate -schema swagger.yaml -definition Name [-patterns] [-lang en|ja] [-v] [document.json|-]\n\nNotes:\n  - The document is read from stdin when no file (or \"-\") is given.\n  - Exit status: 0 valid, 1 invalid, 2 usage or load error.")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "validate":
		return validateCmd(args[1:], stdin, stdout, stderr)
	default:
		usage(stderr)
		return exitUsage
	}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	l := log.New("swagval")
	l.SetOutput(w)
	l.SetHeader("${prefix} ${level}")
	l.SetLevel(log.WARN)
	if verbose {
		l.SetLevel(log.DEBUG)
	}
	return l
}

func validateCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var schemaPath, definition, lang string
	var patterns, verbose bool
	fs.StringVar(&schemaPath, "schema", "", "Swagger 2.0 document (JSON or YAML)")
	fs.StringVar(&definition, "definition", "", "definition name to validate against")
	fs.BoolVar(&patterns, "patterns", false, "enforce pattern constraints with RE2")
	fs.StringVar(&lang, "lang", "en", "message language (en|ja)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if schemaPath == "" || definition == "" || fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}
	logger := newLogger(stderr, verbose)

	doc, diag, err := loader.LoadFile(schemaPath)
	if err != nil {
		logger.Errorf("loading schema: %v", err)
		return exitUsage
	}
	for _, w := range diag.Warnings() {
		logger.Warnf("%s: %s", schemaPath, w)
	}
	if _, ok := doc.Lookup(definition); !ok {
		logger.Errorf("definition %q not found in %s", definition, schemaPath)
		return exitUsage
	}
	logger.Debugf("loaded %d definitions from %s", len(doc.Definitions), schemaPath)

	opts := []loader.Option{}
	if patterns {
		opts = append(opts, loader.WithPatterns())
	}
	if lang == "ja" {
		opts = append(opts, loader.WithTranslator(i18n.Japanese()))
	} else {
		opts = append(opts, loader.WithTranslator(i18n.English()))
	}
	cfg := doc.Config(opts...)

	src, name := stdin, "stdin"
	if p := fs.Arg(0); p != "" && p != "-" {
		f, err := os.Open(p)
		if err != nil {
			logger.Errorf("opening document: %v", err)
			return exitUsage
		}
		defer f.Close()
		src, name = f, p
	}
	v, err := value.Decode(src)
	if err != nil {
		logger.Errorf("parsing %s: %v", name, err)
		return exitUsage
	}

	res := swagval.ValidateRef(cfg, schema.Ref(definition), v)
	if res.Passed() {
		logger.Debugf("%s is valid against %s", name, definition)
		return exitValid
	}
	for _, e := range res.Errors() {
		fmt.Fprintln(stdout, e.String())
	}
	logger.Debugf("%s: %d violation(s)", name, len(res.Errors()))
	return exitInvalid
}
