package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: certgen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Render one certificate per CSV record")
	fmt.Fprintln(w, "  preview    Render a single certificate to check placement")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'certgen help <command>' for details on a specific command.")
}

// printCommonFlagUsage prints flags shared by generate and preview.
func printCommonFlagUsage(w io.Writer) {
	fmt.Fprintln(w, "Placement:")
	fmt.Fprintln(w, "      --box-x <n>           Placement box X (template pixels)")
	fmt.Fprintln(w, "      --box-y <n>           Placement box Y (template pixels)")
	fmt.Fprintln(w, "      --box-w <n>           Placement box width")
	fmt.Fprintln(w, "      --box-h <n>           Placement box height")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Font:")
	fmt.Fprintln(w, "      --font <path>         Font file (TTF/OTF); falls back to")
	fmt.Fprintln(w, "                            platform fonts, then the embedded face")
	fmt.Fprintln(w, "      --font-size <n>       Maximum font size in pixels")
	fmt.Fprintln(w, "      --font-color <s>      Font color as hex (#RRGGBB)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Appearance:")
	fmt.Fprintln(w, "      --anchor <s>          Vertical anchor: center, bottom")
	fmt.Fprintln(w, "      --quality <n>         JPEG quality (1-100)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show progress and timing")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: certgen generate [flags] [data.csv]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one certificate per CSV record.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -t, --template <path>     Template image file")
	fmt.Fprintln(w, "      --csv <path>          CSV file with one record per row")
	fmt.Fprintln(w, "      --field <name>        CSV column holding the text to render")
	fmt.Fprintln(w, "      --limit <n>           Process at most n records (0 = all)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "      --zip <path>          Bundle outputs into a ZIP archive")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Processing:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -b, --batch-size <n>      Jobs per batch (0 = default)")
	fmt.Fprintln(w)
	printCommonFlagUsage(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: certgen preview [flags] [name]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a single certificate to check placement and sizing.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -t, --template <path>     Template image file")
	fmt.Fprintln(w, "  -n, --name <s>            Name to render")
	fmt.Fprintln(w, "  -o, --out <path>          Output image path (default: preview.jpg)")
	fmt.Fprintln(w)
	printCommonFlagUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: certgen version")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %q\n\n", args[0])
		printUsage(env.Stderr)
	}
}
