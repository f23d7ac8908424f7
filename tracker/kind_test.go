/*
DESCRIPTION
  kind_test.go tests tracker name parsing and construction.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tracker

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNames(t *testing.T) {
	want := []string{"BOOSTING", "MIL", "KCF", "TLD", "MEDIANFLOW", "GOTURN", "MOSSE", "CSRT"}
	if got := Names(); !cmp.Equal(want, got) {
		t.Errorf("unexpected names\n%s", cmp.Diff(want, got))
	}
	for i, k := range Kinds() {
		if k.String() != want[i] {
			t.Errorf("unexpected name for kind %d: got %s, want %s", i, k, want[i])
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("did not expect error parsing %s: %v", k, err)
		}
		if got != k {
			t.Errorf("unexpected kind: got %v, want %v", got, k)
		}
	}

	for _, name := range []string{"", "kcf", "Csrt", "DEEPSORT", "TLD "} {
		_, err := ParseKind(name)
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("expected ErrUnknownKind for %q, got: %v", name, err)
		}
	}
}

func TestKindStringOutOfRange(t *testing.T) {
	if got, want := Kind(42).String(), "Kind(42)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	for _, k := range Kinds() {
		tr, err := New(k)
		switch {
		case Available(k):
			if err != nil || tr == nil {
				t.Errorf("expected tracker for available kind %v, got %v, %v", k, tr, err)
				continue
			}
			tr.Close()
		default:
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("expected ErrUnavailable for %v, got: %v", k, err)
			}
			if tr != nil {
				t.Errorf("expected no tracker for unavailable kind %v", k)
			}
		}
	}

	if _, err := New(Kind(-1)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got: %v", err)
	}
}

func TestFactoryFor(t *testing.T) {
	_, err := FactoryFor("NOPE")
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got: %v", err)
	}

	for _, k := range Kinds() {
		f, err := FactoryFor(k.String())
		if !Available(k) {
			if !errors.Is(err, ErrUnavailable) || f != nil {
				t.Errorf("expected ErrUnavailable and no factory for %v, got: %v", k, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("did not expect error for %v: %v", k, err)
		}
		tr, err := f()
		if err != nil || tr == nil {
			t.Errorf("factory for %v failed: %v", k, err)
			continue
		}
		tr.Close()
	}
}
