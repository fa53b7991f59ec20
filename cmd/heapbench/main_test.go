// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/heapbench/heapbench/bench"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, werr bytes.Buffer
	t.Logf("heapbench %s", strings.Join(args, " "))
	err = heapbench(&out, &werr, args)
	return out.String(), werr.String(), err
}

func TestDefaultRun(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every heap candidate")
	}
	stdout, stderr, err := run(t, "-n", "200", "-trials", "3")
	if err != nil {
		t.Fatalf("error: %v\nstderr: %s", err, stderr)
	}
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	// Title, header, and one row per built-in heap.
	if want := 2 + 7; len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, stdout)
	}
	if lines[0] != "order=rand n=200" {
		t.Errorf("title = %q", lines[0])
	}
	for _, name := range []string{"std", "gods", "pairing", "skew", "leftist", "fibonacci", "workiva"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("output missing heap %q:\n%s", name, stdout)
		}
	}
}

func TestHeapSubset(t *testing.T) {
	stdout, stderr, err := run(t, "-n", "100", "-trials", "2", "-heaps", "std,pairing")
	if err != nil {
		t.Fatalf("error: %v\nstderr: %s", err, stderr)
	}
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), stdout)
	}
	if strings.Contains(stdout, "gods") {
		t.Errorf("unselected heap appears in output:\n%s", stdout)
	}
}

func TestOrderAll(t *testing.T) {
	stdout, _, err := run(t, "-n", "50", "-trials", "2", "-heaps", "std", "-order", "all")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"order=asc n=50", "order=desc n=50", "order=rand n=50"} {
		if !strings.Contains(stdout, title) {
			t.Errorf("output missing table %q:\n%s", title, stdout)
		}
	}
}

func TestList(t *testing.T) {
	stdout, _, err := run(t, "-list")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 7 {
		t.Errorf("got %d candidates, want 7:\n%s", len(lines), stdout)
	}
}

func TestGoBenchOutput(t *testing.T) {
	stdout, _, err := run(t, "-n", "50", "-trials", "2", "-heaps", "std", "-gobench")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "goos: ") {
		t.Errorf("missing file configuration:\n%s", stdout)
	}
	const line = "BenchmarkInsertExtract/heap=std/order=rand/n=50 1 "
	if got := strings.Count(stdout, line); got != 2 {
		t.Errorf("got %d trial lines, want 2:\n%s", got, stdout)
	}
}

func TestCSVOutput(t *testing.T) {
	stdout, _, err := run(t, "-n", "50", "-trials", "2", "-heaps", "std,pairing", "-csv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d CSV lines, want header + 2 rows:\n%s", len(lines), stdout)
	}
}

func TestCSVOutputAllOrders(t *testing.T) {
	stdout, _, err := run(t, "-n", "50", "-trials", "2", "-heaps", "std", "-order", "all", "-csv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d CSV lines, want header + 3 rows:\n%s", len(lines), stdout)
	}
	if got := strings.Count(stdout, "heap,order,"); got != 1 {
		t.Errorf("header appears %d times, want 1:\n%s", got, stdout)
	}
	for _, order := range []string{"asc", "desc", "rand"} {
		if !strings.Contains(stdout, "std,"+order+",50,") {
			t.Errorf("missing row for order %s:\n%s", order, stdout)
		}
	}
}

func TestConfigErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-n", "-1"},
		{"-trials", "0"},
		{"-order", "sideways"},
		{"-dist", "bimodal"},
		{"-confidence", "1.5"},
		{"-heaps", "nosuchheap"},
	} {
		_, _, err := run(t, args...)
		if !errors.Is(err, bench.ErrConfig) {
			t.Errorf("args %v: got %v, want ErrConfig", args, err)
		}
	}
}

func TestExtraArguments(t *testing.T) {
	_, stderr, err := run(t, "unexpected")
	if !errors.Is(err, errUsage) {
		t.Errorf("got %v, want errUsage", err)
	}
	if !strings.Contains(stderr, "usage:") {
		t.Errorf("stderr missing usage: %q", stderr)
	}
}
