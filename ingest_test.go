// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"code.hybscloud.com/grappe"
)

func TestIngester_FeedThenDoneRoundTrips(t *testing.T) {
	input := "alpha\nbeta\r\n  gamma\n\ndelta"
	ing := grappe.NewIngester(grappe.WithPageBytes(20))
	if err := ing.Feed([]byte(input)); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	doc, err := ing.Done()
	if err != nil {
		t.Fatalf("Done: %v", err)
	}
	if doc.ToString() != input {
		t.Fatalf("reconstructed = %q, want %q", doc.ToString(), input)
	}
}

func TestIngester_FeedChunkByChunkMatchesSingleFeed(t *testing.T) {
	input := "line one\nline two\r\nline three\n"
	whole := grappe.NewIngester(grappe.WithPageBytes(24))
	if err := whole.Feed([]byte(input)); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	wantDoc, err := whole.Done()
	if err != nil {
		t.Fatalf("Done: %v", err)
	}

	chunked := grappe.NewIngester(grappe.WithPageBytes(24))
	for i := 0; i < len(input); i += 3 {
		end := i + 3
		if end > len(input) {
			end = len(input)
		}
		if err := chunked.Feed([]byte(input[i:end])); err != nil {
			t.Fatalf("Feed chunk: %v", err)
		}
	}
	gotDoc, err := chunked.Done()
	if err != nil {
		t.Fatalf("Done chunked: %v", err)
	}

	if gotDoc.ToString() != wantDoc.ToString() {
		t.Fatalf("chunk-invariance violated:\ngot  %q\nwant %q", gotDoc.ToString(), wantDoc.ToString())
	}
	if gotDoc.Counts() != wantDoc.Counts() {
		t.Fatalf("counts differ: got %+v want %+v", gotDoc.Counts(), wantDoc.Counts())
	}
}

func TestIngester_InvalidUTF8IsFatal(t *testing.T) {
	ing := grappe.NewIngester()
	err := ing.Feed([]byte{'a', 0xFF, 'b'})
	if err != grappe.ErrUTF8 {
		t.Fatalf("err = %v, want ErrUTF8", err)
	}
}

func TestIngester_FeedFromReaderToEOF(t *testing.T) {
	input := strings.Repeat("the quick brown fox\n", 10)
	src := bytes.NewReader([]byte(input))
	r := grappe.NewReader(src, grappe.WithReadCapacity(7))
	ing := grappe.NewIngester(grappe.WithPageBytes(64))

	doc, err := ing.FeedFrom(r)
	if err != nil {
		t.Fatalf("FeedFrom: %v", err)
	}
	if doc.ToString() != input {
		t.Fatalf("reconstructed mismatch")
	}
	if doc.Counts().Lines != 10 {
		t.Fatalf("lines = %d, want 10", doc.Counts().Lines)
	}
}

func TestIngester_FeedFromPropagatesIOError(t *testing.T) {
	boom := io.ErrUnexpectedEOF
	r := grappe.NewReader(failingReader{err: boom}, grappe.WithNonblock())
	ing := grappe.NewIngester()
	_, err := ing.FeedFrom(r)
	if err != boom {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestIngester_ResetAllowsReuseAfterFatalError(t *testing.T) {
	ing := grappe.NewIngester()
	if err := ing.Feed([]byte{0xFF}); err != grappe.ErrUTF8 {
		t.Fatalf("err = %v, want ErrUTF8", err)
	}
	ing.Reset()
	if err := ing.Feed([]byte("clean\n")); err != nil {
		t.Fatalf("Feed after reset: %v", err)
	}
	doc, err := ing.Done()
	if err != nil {
		t.Fatalf("Done: %v", err)
	}
	if doc.ToString() != "clean\n" {
		t.Fatalf("doc = %q", doc.ToString())
	}
}
