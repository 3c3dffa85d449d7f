package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunSetup_WritesConfigToStdout(t *testing.T) {
	// Answers, in prompt order: poll interval, http?, halt?, fixture id,
	// stat, team, target, another condition?, another fixture?
	input := strings.Join([]string{
		"30s",
		"n",
		"", // defaults to yes
		"1001",
		"Corners",
		"home",
		"3",
		"n",
		"n",
	}, "\n") + "\n"

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	defer func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	}()

	rootCmd.SetArgs([]string{"setup", "-o", "-"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("setup command error = %v", err)
	}

	got := out.String()
	expectedPhrases := []string{
		"poll_interval: 30s",
		"halt_when_satisfied: true",
		"mode: mock",
		"fixture_id: 1001",
		"stat: Corners",
		"team: home",
		"target: 3",
	}
	for _, phrase := range expectedPhrases {
		if !strings.Contains(got, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, got)
		}
	}
}

func TestRunSetup_RepromptsOnBadInput(t *testing.T) {
	input := strings.Join([]string{
		"soon", // not a duration, reprompted
		"15s",
		"n",
		"n",
		"abc", // not an integer, reprompted
		"1002",
		"Goals",
		"away",
		"1",
		"n",
		"n",
	}, "\n") + "\n"

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	defer func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	}()

	rootCmd.SetArgs([]string{"setup", "-o", "-"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("setup command error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Please enter a duration") {
		t.Error("output missing the duration reprompt")
	}
	if !strings.Contains(got, "Please enter a positive integer") {
		t.Error("output missing the integer reprompt")
	}
	if !strings.Contains(got, "fixture_id: 1002") {
		t.Errorf("output missing the configured fixture\nGot: %s", got)
	}
}

func TestRunSetup_TruncatedInput(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("30s\n"))
	rootCmd.SetOut(&out)
	defer func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	}()

	rootCmd.SetArgs([]string{"setup", "-o", "-"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("setup expected error when input ends early, got nil")
	}
	if !strings.Contains(err.Error(), "input ended") {
		t.Errorf("error should mention truncated input, got: %v", err)
	}
}
