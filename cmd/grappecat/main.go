// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command grappecat ingests a file (or stdin) and reports its page, line,
// and codepoint counts, one line of structured logging per page sealed.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"code.hybscloud.com/grappe"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var src *os.File
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Error("open input", "path", os.Args[1], "error", err)
			os.Exit(1)
		}
		defer f.Close()
		src = f
	} else {
		src = os.Stdin
	}

	if err := run(log, src); err != nil {
		log.Error("ingest failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, src *os.File) error {
	ing := grappe.NewIngester(grappe.WithFileSource())
	r := grappe.NewReader(src, grappe.WithFileSource())

	text, err := ing.FeedFrom(r)
	if err != nil {
		return err
	}

	for i, p := range text.Pages() {
		log.Info("page sealed",
			"index", i,
			"lines", p.Lines,
			"bytes", p.Len,
			"chars", p.Chars,
			"offset_bytes", p.Offset.Bytes,
			"offset_lines", p.Offset.Lines,
		)
	}

	counts := text.Counts()
	fmt.Printf("pages=%d lines=%d bytes=%d chars=%d\n", len(text.Pages()), counts.Lines, counts.Bytes, counts.Chars)
	return nil
}
