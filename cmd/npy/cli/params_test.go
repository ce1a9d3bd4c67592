// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Member    string  `flag:"member" desc:"NPZ member name"`
		ShowStats bool    `flag:"show-stats,s" desc:"append statistics"`
		EdgeItems int     `flag:"edge-items" desc:"edge items per axis"`
		Scale     float64 `flag:"scale" desc:"value scale factor"`
		Untagged  string  // no flag tag — should be skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--member", "weights",
		"-s",
		"--edge-items", "4",
		"--scale", "0.5",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Member != "weights" {
		t.Errorf("Member = %q, want %q", p.Member, "weights")
	}
	if !p.ShowStats {
		t.Error("ShowStats = false, want true")
	}
	if p.EdgeItems != 4 {
		t.Errorf("EdgeItems = %d, want 4", p.EdgeItems)
	}
	if p.Scale != 0.5 {
		t.Errorf("Scale = %f, want 0.5", p.Scale)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty (should be skipped)", p.Untagged)
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Config    string  `flag:"config" desc:"config file" default:"npy.yaml"`
		EdgeItems int     `flag:"edge-items" desc:"edge items" default:"-1"`
		Scale     float64 `flag:"scale" desc:"scale" default:"1.5"`
		ShowArray bool    `flag:"show-array" desc:"print contents" default:"true"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	// Parse with no arguments — should get all defaults.
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Config != "npy.yaml" {
		t.Errorf("Config = %q, want %q", p.Config, "npy.yaml")
	}
	if p.EdgeItems != -1 {
		t.Errorf("EdgeItems = %d, want -1", p.EdgeItems)
	}
	if p.Scale != 1.5 {
		t.Errorf("Scale = %f, want 1.5", p.Scale)
	}
	if !p.ShowArray {
		t.Error("ShowArray = false, want true")
	}
}

func TestBindFlags_DefaultsOverriddenByCLI(t *testing.T) {
	type params struct {
		Config    string `flag:"config" desc:"config file" default:"npy.yaml"`
		EdgeItems int    `flag:"edge-items" desc:"edge items" default:"2"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--config", "other.yaml", "--edge-items", "5"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Config != "other.yaml" {
		t.Errorf("Config = %q, want %q", p.Config, "other.yaml")
	}
	if p.EdgeItems != 5 {
		t.Errorf("EdgeItems = %d, want 5", p.EdgeItems)
	}
}

func TestBindFlags_EmbeddedStruct(t *testing.T) {
	type common struct {
		Config string `flag:"config" desc:"config file path"`
	}
	type params struct {
		common
		Member string `flag:"member" desc:"NPZ member name"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--config", "npy.yaml", "--member", "labels"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Config != "npy.yaml" {
		t.Errorf("Config = %q, want %q", p.Config, "npy.yaml")
	}
	if p.Member != "labels" {
		t.Errorf("Member = %q, want %q", p.Member, "labels")
	}
}

func TestBindFlags_RejectsNonStructPointer(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)

	type params struct{}
	if err := BindFlags(params{}, flagSet); err == nil {
		t.Error("BindFlags(non-pointer) = nil, want error")
	}

	value := 42
	if err := BindFlags(&value, flagSet); err == nil {
		t.Error("BindFlags(*int) = nil, want error")
	}
}

func TestBindFlags_UnsupportedFieldType(t *testing.T) {
	type params struct {
		Names []string `flag:"names" desc:"unsupported slice"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("BindFlags = nil, want error for unsupported type")
	}
	if !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("error = %q, want mention of unsupported type", err)
	}
}

func TestBindFlags_BadDefault(t *testing.T) {
	type params struct {
		EdgeItems int `flag:"edge-items" desc:"edge items" default:"many"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("BindFlags = nil, want error for unparseable default")
	}
	if !strings.Contains(err.Error(), "default for --edge-items") {
		t.Errorf("error = %q, want mention of the flag's default", err)
	}
}

func TestFlagsFromParams_PanicsOnBadParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic on non-struct params")
		}
	}()
	FlagsFromParams("test", 42)
}
