package xgxassert

import (
	"errors"
	"fmt"
	"testing"
)

func BenchmarkBuildFailure(b *testing.B) {
	cfg := quietConfig()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New().WithConfig(cfg).Reason("precondition failed").Build()
	}
}

func BenchmarkBuildMismatch(b *testing.B) {
	cfg := quietConfig()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New().WithConfig(cfg).Message("custom").Expected(1).Actual(i).Build()
	}
}

func BenchmarkBuildWithStack(b *testing.B) {
	cfg := stackConfig()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New().WithConfig(cfg).Expected(1).Actual(2).Build()
	}
}

func BenchmarkVerboseFormat(b *testing.B) {
	err := New().WithConfig(stackConfig()).
		Expected(point{X: 1}).
		Actual(point{X: 2}).
		Cause(errors.New("root")).
		Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("%+v", err)
	}
}
