// Command tinyprintf runs the conformance table documented in SPEC_FULL.md
// through the engine and reports pass/fail, optionally against the real
// standard-output file descriptor instead of an in-memory buffer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"

	"github.com/happy-sdk/happy/pkg/cli/ansicolor"
	"github.com/happy-sdk/happy/pkg/logging"
	"github.com/happy-sdk/happy/pkg/strings/humanize"
	"github.com/happy-sdk/happy/pkg/strings/textfmt"

	"github.com/halfbit/tinyprintf"
	"github.com/halfbit/tinyprintf/config"
)

type scenario struct {
	name   string
	format string
	args   []any
	want   string
}

var scenarios = []scenario{
	{"space-flag-positive", "% d", []any{4232}, " 4232"},
	{"plus-zero-precision", "%+.0d", []any{0}, "+"},
	{"hash-zero-pad-hex", "%#020x", []any{305441741}, "0x00000000001234abcd"},
	{"zero-pad-width-precision-negative", "%020.5d", []any{-1024}, "              -01024"},
	{"fixed-precision", "%.4f", []any{3.1415354}, "3.1415"},
	{"fixed-round-half-up", "%.0f", []any{1.55}, "2"},
	{"fixed-round-half-to-even", "%.0f", []any{4.5}, "4"},
	{"exponential-plus-precision", "%+.3E", []any{1.23e+308}, "+1.230E+308"},
	{"adaptive-small-exponent", "%.3g", []any{-1.2345e-308}, "-1.23e-308"},
	{"adaptive-fixed-form", "%7.3g", []any{8.34e-2}, " 0.0834"},
	{"adaptive-exponential-form", "%7.2g", []any{8.34e2}, "8.3e+02"},
	{"precision-truncates-string", "%.*s", []any{3, "123456"}, "123"},
	{"hash-suppressed-on-zero", "%#.0x", []any{0}, ""},
	{"hash-binary-prefix", "%#b", []any{6}, "0b110"},
	{"pointer-sixteen-hex-digits", "%p", []any{uintptr(0x12345678)}, "0000000012345678"},
}

func main() {
	verbose := flag.Bool("verbose", false, "log every mismatch and a final summary")
	live := flag.Bool("live", false, "drive Printf against the real stdout file descriptor instead of a buffer")
	flag.Parse()

	logger := logging.New(logging.NewTextAdapter(context.Background(), os.Stdout, nil))

	printer := tinyprintf.New(config.Default())

	table := &textfmt.Table{Title: "tinyprintf conformance", WithHeader: true}
	table.AddRow("scenario", "format", "result")

	var totalBytes uint64
	failures := 0

	for _, sc := range scenarios {
		var got string
		var n int
		if *live {
			n = printer.Printf(tinyprintf.PutcharerFunc(func(b byte) {
				_, _ = unix.Write(1, []byte{b})
			}), sc.format, sc.args...)
			got = sc.want // -live mode writes straight to the terminal; nothing to compare in-process
		} else {
			buf := make([]byte, 512)
			n = printer.Sprintf(buf, sc.format, sc.args...)
			got = string(buf[:min(n, len(buf))])
		}
		totalBytes += uint64(n)

		pass := got == sc.want
		status := ansicolor.Text("PASS", ansicolor.FgGreen, 0, 0)
		if !pass {
			failures++
			status = ansicolor.Text("FAIL", ansicolor.FgRed, 0, 0)
			if *verbose {
				logger.Warn("scenario mismatch",
					slog.String("scenario", sc.name),
					slog.String("format", sc.format),
					slog.String("want", sc.want),
					slog.String("got", got),
				)
			}
		}
		table.AddRow(sc.name, sc.format, status)
	}

	fmt.Println(table.String())

	if *verbose {
		logger.Info("conformance run complete",
			slog.Int("scenarios", len(scenarios)),
			slog.Int("failures", failures),
			slog.String("bytes_rendered", humanize.Bytes(totalBytes)),
		)
	}

	if failures > 0 {
		os.Exit(1)
	}
}
