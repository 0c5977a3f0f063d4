// Package testutil carries the timing helpers shared by the HTTP tests.
package testutil

import (
	"fmt"
	"testing"
	"time"
)

// TestTimer measures a single test step
type TestTimer struct {
	start time.Time
	name  string
}

func NewTestTimer(name string) *TestTimer {
	return &TestTimer{start: time.Now(), name: name}
}

// Stop prints and returns the elapsed time
func (t *TestTimer) Stop() time.Duration {
	duration := time.Since(t.start)
	fmt.Printf("⏱️  %s took %v\n", t.name, duration)
	return duration
}

// PerformanceAssertion fails t when a step ran longer than maxDuration.
func PerformanceAssertion(t *testing.T, testName string, duration, maxDuration time.Duration) {
	t.Helper()
	if duration > maxDuration {
		t.Errorf("❌ %s took %v, expected less than %v", testName, duration, maxDuration)
	}
}

type TestResult struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// SuiteResult collects results of the subtests of one top-level test.
type SuiteResult struct {
	Name    string
	Results []TestResult
	total   time.Duration
	passed  int
}

func NewSuiteResult(name string) *SuiteResult {
	return &SuiteResult{Name: name}
}

// Track runs as the deferred tail of a subtest and records its outcome.
func (s *SuiteResult) Track(t *testing.T, timer *TestTimer) {
	duration := timer.Stop()
	passed := !t.Failed()
	s.Results = append(s.Results, TestResult{Name: t.Name(), Duration: duration, Passed: passed})
	s.total += duration
	if passed {
		s.passed++
	}
}

func (s *SuiteResult) PrintSummary() {
	if len(s.Results) == 0 {
		return
	}
	fmt.Printf("\n📊 Test Suite Summary: %s\n", s.Name)
	fmt.Printf("   Passed: %d/%d ✅\n", s.passed, len(s.Results))
	fmt.Printf("   Total Time: %v\n", s.total)
	fmt.Printf("   Average Time: %v\n", s.total/time.Duration(len(s.Results)))
	for _, r := range s.Results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v\n", status, r.Name, r.Duration)
	}
	fmt.Println()
}
