// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe_test

import (
	"testing"

	"code.hybscloud.com/grappe"
)

func TestValidator_SingleChunkASCII(t *testing.T) {
	v := grappe.NewValidator()
	carry, valid, err := v.Validate([]byte("hello world"))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if carry != "" {
		t.Fatalf("carry = %q, want empty", carry)
	}
	if valid != "hello world" {
		t.Fatalf("valid = %q", valid)
	}
	if err := v.Done(); err != nil {
		t.Fatalf("Done: %v", err)
	}
}

func TestValidator_CodepointSplitAcrossChunks(t *testing.T) {
	// U+1F600 GRINNING FACE, 4 bytes: F0 9F 98 80, split 2/2.
	full := []byte{0xF0, 0x9F, 0x98, 0x80}

	v := grappe.NewValidator()
	carry, valid, err := v.Validate(full[:2])
	if err != nil {
		t.Fatalf("first half: %v", err)
	}
	if carry != "" || valid != "" {
		t.Fatalf("first half: carry=%q valid=%q, want both empty", carry, valid)
	}

	carry, valid, err = v.Validate(full[2:])
	if err != nil {
		t.Fatalf("second half: %v", err)
	}
	if carry != string(full) {
		t.Fatalf("carry = %q, want the joined rune", carry)
	}
	if valid != "" {
		t.Fatalf("valid = %q, want empty", valid)
	}
}

func TestValidator_CodepointSplitThenMoreBytes(t *testing.T) {
	full := []byte{0xF0, 0x9F, 0x98, 0x80}
	tail := []byte("!")

	v := grappe.NewValidator()
	if _, _, err := v.Validate(full[:1]); err != nil {
		t.Fatalf("first byte: %v", err)
	}
	carry, valid, err := v.Validate(append(append([]byte{}, full[1:]...), tail...))
	if err != nil {
		t.Fatalf("rest: %v", err)
	}
	if carry != string(full) {
		t.Fatalf("carry = %q", carry)
	}
	if valid != "!" {
		t.Fatalf("valid = %q", valid)
	}
}

func TestValidator_InvalidByteIsFatal(t *testing.T) {
	v := grappe.NewValidator()
	_, _, err := v.Validate([]byte{'a', 0xFF, 'b'})
	if err != grappe.ErrUTF8 {
		t.Fatalf("err = %v, want ErrUTF8", err)
	}
}

func TestValidator_TruncatedAtEndOfStreamIsFatal(t *testing.T) {
	v := grappe.NewValidator()
	if _, _, err := v.Validate([]byte{0xF0, 0x9F}); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := v.Done(); err != grappe.ErrUTF8 {
		t.Fatalf("Done: %v, want ErrUTF8", err)
	}
}

func TestValidator_ResetAllowsReuse(t *testing.T) {
	v := grappe.NewValidator()
	if _, _, err := v.Validate([]byte{0xF0, 0x9F}); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	v.Reset()
	if err := v.Done(); err != nil {
		t.Fatalf("Done after Reset: %v", err)
	}
	_, valid, err := v.Validate([]byte("clean"))
	if err != nil || valid != "clean" {
		t.Fatalf("valid=%q err=%v", valid, err)
	}
}
