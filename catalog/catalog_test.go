// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/shdem/shape"
)

func writeSphereFile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	content := "1\n0 0 " + "3.5449077018110318" + " 0\n" // sqrt(4*pi)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestAddGetRoundtrip(t *testing.T) {
	cfg := shape.Config{NMax: 4, NQuad: 8, Safety: 1}
	s, err := shape.Build(cfg, strings.NewReader("1\n0 0 2.5066282746310002 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	var cat Catalog
	h := cat.Add(s)
	got, err := cat.Get(h)
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Errorf("Get returned a different pointer")
	}
	if cat.Len() != 1 {
		t.Errorf("Len()=%d, want 1", cat.Len())
	}
}

func TestGetInvalidHandle(t *testing.T) {
	var cat Catalog
	_, err := cat.Get(0)
	if !errors.Is(err, ErrHandle) {
		t.Fatalf("expected ErrHandle, got %v", err)
	}
}

func TestBuildFromFiles(t *testing.T) {
	dir := t.TempDir()
	p1 := writeSphereFile(t, dir, "a.txt")
	p2 := writeSphereFile(t, dir, "b.txt")
	cfg := shape.Config{NMax: 4, NQuad: 8, Safety: 1}
	cat, err := Build(cfg, []string{p1, p2})
	if err != nil {
		t.Fatal(err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len()=%d, want 2", cat.Len())
	}
}
