// Package report formats training results for the console.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/born-ml/bpnet/internal/dataset"
	"github.com/born-ml/bpnet/internal/train"
)

var printer = message.NewPrinter(language.English)

// Summary writes the one-line run summary:
//
//	Epoch=2,345 Error=3.99e-4 time=0.01s eps=234,500
func Summary(w io.Writer, res train.Result) error {
	_, err := fmt.Fprintf(w, "Epoch=%s Error=%s time=%.2fs eps=%s\n",
		grouped(int64(res.Epochs)), scientific(res.Error), res.Elapsed.Seconds(), grouped(int64(res.EpochsPerSecond())))
	return err
}

// Table writes one tab-separated row per pattern with its inputs, targets and
// the outputs recorded for it, preceded by a header row.
//
// outputs is indexed like set; a missing row leaves the output columns empty.
func Table(w io.Writer, set dataset.Set, outputs [][]float64) error {
	in, out, err := set.Dims()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	bw.WriteString("Pat")
	for i := 0; i < in; i++ {
		fmt.Fprintf(bw, "\tInput%d", i)
	}
	for i := 0; i < out; i++ {
		fmt.Fprintf(bw, "\tTarget%d", i)
	}
	for i := 0; i < out; i++ {
		fmt.Fprintf(bw, "\tOutput%d", i)
	}
	bw.WriteByte('\n')

	for p, pat := range set {
		bw.WriteString(strconv.Itoa(p))
		for _, v := range pat.Inputs {
			bw.WriteByte('\t')
			bw.WriteString(formatValue(v))
		}
		for _, v := range pat.Targets {
			bw.WriteByte('\t')
			bw.WriteString(formatValue(v))
		}
		if p < len(outputs) {
			for _, v := range outputs[p] {
				bw.WriteByte('\t')
				bw.WriteString(formatValue(v))
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// grouped prints n with thousands separators.
func grouped(n int64) string {
	return printer.Sprintf("%d", n)
}

// scientific prints v with two decimals and a minimal exponent, 3.99e-4
// rather than 3.99e-04.
func scientific(v float64) string {
	s := strconv.FormatFloat(v, 'e', 2, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	exp := strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:i+2] + exp
}

// formatValue prints the shortest representation that round-trips.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
