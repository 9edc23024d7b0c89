// diff is a small CLI to manually run the diff implementations used for benchmarking.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/txtar"
	"znkr.io/wudiff/internal/benchmarks"
)

type config struct {
	lib   string
	list  bool
	x, y  string
	txtar string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "wudiff", "implementation to use for diffing, see -list")
	flag.BoolVar(&cfg.list, "list", false, "list the available implementations")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.Parse()

	switch {
	case cfg.list:
		for _, impl := range benchmarks.Impls {
			fmt.Println(impl.Name)
		}
		return
	case cfg.txtar != "":
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
			os.Exit(1)
		}
	default:
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: diff <x> <y>\n")
			os.Exit(1)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	impl, ok := benchmarks.Lookup(cfg.lib)
	if !ok {
		return fmt.Errorf("unknown implementation %q", cfg.lib)
	}

	x, y, err := inputs(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(impl.Diff(x, y))
	return err
}

func inputs(cfg config) (x, y []byte, err error) {
	if cfg.txtar == "" {
		if x, err = os.ReadFile(cfg.x); err != nil {
			return nil, nil, err
		}
		if y, err = os.ReadFile(cfg.y); err != nil {
			return nil, nil, err
		}
		return x, y, nil
	}

	ar, err := txtar.ParseFile(cfg.txtar)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range ar.Files {
		switch f.Name {
		case "x":
			x = f.Data
		case "y":
			y = f.Data
		}
	}
	return x, y, nil
}
