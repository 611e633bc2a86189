package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollapsesDocRuns(t *testing.T) {
	lines := []string{
		"pub trait NodeRPC {",
		"    /// Report liveness.",
		"    ///",
		"    /// Cheap to call.",
		"    async fn ping(token: Token) -> RpcResult<bool>;",
		"}",
	}

	got := Normalize(lines)

	want := []string{
		"pub trait NodeRPC {",
		"    /// Report liveness.",
		"    async fn ping(token: Token) -> RpcResult<bool>;",
		"}",
	}
	assert.Equal(t, want, got)
}

func TestNormalizeCollapsesSeparatedRunsIndependently(t *testing.T) {
	lines := []string{
		"/// first summary",
		"/// first detail",
		"",
		"/// second summary",
		"fn x();",
	}

	got := Normalize(lines)

	want := []string{
		"    /// first summary",
		"",
		"    /// second summary",
		"fn x();",
	}
	assert.Equal(t, want, got)
}

func TestNormalizeTruncatesLineComments(t *testing.T) {
	got := Normalize([]string{"async fn ping(); // keepalive probe"})
	assert.Equal(t, []string{"async fn ping();"}, got)
}

func TestNormalizeDropsCommentedOutCode(t *testing.T) {
	got := Normalize([]string{"    // async fn dashboard(token: Token) -> RpcResult<Dashboard>;"})
	assert.Equal(t, []string{""}, got)
}

func TestNormalizeStripsInnerDocComments(t *testing.T) {
	got := Normalize([]string{"//! module level docs", "fn x();"})
	assert.Equal(t, []string{"", "fn x();"}, got)
}

func TestNormalizeStripsMultiLineBlockComments(t *testing.T) {
	lines := []string{
		"    /* first",
		"       second */",
		"    async fn ping() -> bool;",
	}

	got := Normalize(lines)

	want := []string{
		"",
		"",
		"    async fn ping() -> bool;",
	}
	assert.Equal(t, want, got)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	lines := []string{
		"pub trait NodeRPC {",
		"    /// Report liveness.",
		"    /// More detail.",
		"    async fn ping(token: Token) -> RpcResult<bool>; // probe",
		"}",
	}

	once := Normalize(lines)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}
