// Command gbin is the thinnest viable CLI over the gbin library, per
// spec.md §6.3's explicit guidance to keep the command-line front end a
// thin external collaborator.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/clicat/gbin"
	"github.com/clicat/gbin/value"
)

// Exit codes per spec.md §6.3.
const (
	exitOK         = 0
	exitFileFormat = 1
	exitUsage      = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: gbin <header|tree|show> FILE [flags]")
		return exitUsage
	}

	switch args[0] {
	case "header":
		return runHeader(args[1:])
	case "tree":
		return runTree(args[1:])
	case "show":
		return runShow(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		return exitUsage
	}
}

func runHeader(args []string) int {
	fs := flag.NewFlagSet("header", flag.ContinueOnError)
	raw := fs.Bool("raw", false, "also print the parsed format/magic/version/endianness/order/root values (not the header JSON text)")
	validate := fs.Bool("validate", false, "validate header and field CRCs")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gbin header FILE [--raw] [--validate]")
		return exitUsage
	}

	path := fs.Arg(0)

	h, err := gbin.ReadHeaderOnly(path, gbin.WithValidate(*validate))
	if err != nil {
		fmt.Fprintln(os.Stderr, "gbin:", err)
		return exitFileFormat
	}

	if *raw {
		fmt.Printf("format=%s magic=%s version=%d endianness=%s order=%s root=%s\n",
			h.Format, h.Magic, h.Version, h.Endianness, h.Order, h.Root)
	}

	fmt.Printf("fields=%d payload_start=%d file_size=%d header_crc32_hex=%s\n",
		len(h.Fields), h.PayloadStart, h.FileSize, h.HeaderCRC32Hex)

	return exitOK
}

func runTree(args []string) int {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	prefix := fs.String("prefix", "", "only list fields under this dot-path prefix")
	maxDepth := fs.Int("max-depth", 0, "limit the number of dot-path segments shown (0 = unlimited)")
	details := fs.Bool("details", false, "show kind/class/shape/compression per field")
	validate := fs.Bool("validate", false, "validate header and field CRCs")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gbin tree FILE [--prefix P] [--max-depth N] [--details] [--validate]")
		return exitUsage
	}

	path := fs.Arg(0)

	h, err := gbin.ReadHeaderOnly(path, gbin.WithValidate(*validate))
	if err != nil {
		fmt.Fprintln(os.Stderr, "gbin:", err)
		return exitFileFormat
	}

	for _, f := range h.Fields {
		if *prefix != "" && f.Name != *prefix && !strings.HasPrefix(f.Name, *prefix+".") {
			continue
		}

		if *maxDepth > 0 && strings.Count(f.Name, ".")+1 > *maxDepth {
			continue
		}

		if *details {
			fmt.Printf("%s kind=%s class=%s shape=%v compression=%s usize=%d csize=%d\n",
				f.Name, f.Kind, f.Class, f.Shape, f.Compression, f.USize, f.CSize)
		} else {
			fmt.Println(f.Name)
		}
	}

	return exitOK
}

func runShow(args []string) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	maxElems := fs.Int("max-elems", 20, "max number of elements to print")
	_ = fs.Int("rows", 0, "max rows to print for 2D arrays (unused beyond element cap in this thin layer)")
	_ = fs.Int("cols", 0, "max cols to print for 2D arrays (unused beyond element cap in this thin layer)")
	validate := fs.Bool("validate", false, "validate header and field CRCs")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "usage: gbin show FILE [VAR] [--max-elems N] [--rows N] [--cols N] [--validate]")
		return exitUsage
	}

	path := fs.Arg(0)

	var varPath string
	if fs.NArg() == 2 {
		varPath = fs.Arg(1)
	}

	v, err := gbin.ReadVar(path, varPath, gbin.WithValidate(*validate))
	if err != nil {
		fmt.Fprintln(os.Stderr, "gbin:", err)
		return exitFileFormat
	}

	printValue(v, *maxElems)

	return exitOK
}

func printValue(v *value.Value, maxElems int) {
	if v.IsRecord() {
		for _, key := range v.Record.Keys() {
			child, _ := v.Record.Get(key)
			fmt.Printf("%s: ", key)
			printValue(child, maxElems)
		}

		return
	}

	fmt.Printf("kind=%s shape=%v\n", v.Kind, v.Shape)

	n := v.NumElements()
	if n > maxElems {
		n = maxElems
	}

	if len(v.StringItems) > 0 {
		for i := 0; i < n && i < len(v.StringItems); i++ {
			if v.StringItems[i] == nil {
				fmt.Println("  <missing>")
			} else {
				fmt.Printf("  %s\n", *v.StringItems[i])
			}
		}
	}
}
