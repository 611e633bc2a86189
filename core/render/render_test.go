package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"traitscope/core/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine()
	require.NoError(t, err)
	return engine
}

func TestCanonicalDocument(t *testing.T) {
	engine := newTestEngine(t)

	block := &models.TraitBlock{Source: "rpc.rs", Marker: "#[tarpc::service]"}
	normalized := []string{
		"pub trait NodeRPC {",
		"    /// Report liveness.",
		"    async fn ping(token: Token) -> RpcResult<bool>;",
		"",
		"    async fn block_height(token: Token) -> RpcResult<u64>;",
		"}",
	}

	got, err := engine.Canonical(block, normalized)
	require.NoError(t, err)

	want := `// Code generated by traitscope extract from rpc.rs. DO NOT EDIT.

#[tarpc::service]
pub trait NodeRPC {
    /// Report liveness.
    async fn ping(token: Token) -> RpcResult<bool>;

    async fn block_height(token: Token) -> RpcResult<u64>;
}
`
	assert.Equal(t, want, got)
}

func TestCanonicalEmptyTrait(t *testing.T) {
	engine := newTestEngine(t)

	block := &models.TraitBlock{Source: "rpc.rs", Marker: "#[tarpc::service]"}
	got, err := engine.Canonical(block, []string{"pub trait EmptyRPC {}"})
	require.NoError(t, err)

	want := `// Code generated by traitscope extract from rpc.rs. DO NOT EDIT.

#[tarpc::service]
pub trait EmptyRPC {}
`
	assert.Equal(t, want, got)
}

func TestCanonicalSquashesBlankRuns(t *testing.T) {
	engine := newTestEngine(t)

	block := &models.TraitBlock{Source: "rpc.rs", Marker: "#[tarpc::service]"}
	normalized := []string{
		"pub trait NodeRPC {",
		"    async fn ping(token: Token) -> RpcResult<bool>;",
		"",
		"",
		"",
		"    async fn block_height(token: Token) -> RpcResult<u64>;",
		"}",
	}

	got, err := engine.Canonical(block, normalized)
	require.NoError(t, err)

	want := `// Code generated by traitscope extract from rpc.rs. DO NOT EDIT.

#[tarpc::service]
pub trait NodeRPC {
    async fn ping(token: Token) -> RpcResult<bool>;

    async fn block_height(token: Token) -> RpcResult<u64>;
}
`
	assert.Equal(t, want, got)
}

func TestCanonicalKeepsWrappedSignatureTogether(t *testing.T) {
	engine := newTestEngine(t)

	block := &models.TraitBlock{Source: "rpc.rs", Marker: "#[tarpc::service]"}
	normalized := []string{
		"pub trait NodeRPC {",
		"    async fn peer_info(",
		"        token: Token,",
		"        max: usize,",
		"    ) -> RpcResult<Vec<PeerInfo>>;",
		"}",
	}

	got, err := engine.Canonical(block, normalized)
	require.NoError(t, err)

	want := `// Code generated by traitscope extract from rpc.rs. DO NOT EDIT.

#[tarpc::service]
pub trait NodeRPC {
    async fn peer_info(
        token: Token,
        max: usize,
    ) -> RpcResult<Vec<PeerInfo>>;
}
`
	assert.Equal(t, want, got)
}

func reportFixture() *models.DiffReport {
	return &models.DiffReport{
		File1:          "v1.rs",
		File2:          "v2.rs",
		AddedOrMissing: []string{"fn get_height() -> u64;"},
		Modified: []models.ModifiedMethod{
			{
				Name:   "ping",
				Before: "fn ping() -> bool;",
				After:  "fn ping(fast: bool) -> bool;",
			},
		},
		Removed: []string{"fn get_peers() -> Vec<Peer>;"},
		Stats:   models.DiffStats{AddedOrMissing: 1, Modified: 1, Removed: 1},
	}
}

func TestReportText(t *testing.T) {
	engine := newTestEngine(t)

	got, err := engine.Report(reportFixture(), FormatText)
	require.NoError(t, err)

	want := `traitscope diff: v1.rs vs v2.rs

Added or missing (in v1.rs, not in v2.rs):
  + fn get_height() -> u64;

Modified:
  - fn ping() -> bool;
  + fn ping(fast: bool) -> bool;

Removed (in v2.rs, not in v1.rs):
  - fn get_peers() -> Vec<Peer>;
`
	assert.Equal(t, want, got)
}

func TestReportTextAllNone(t *testing.T) {
	engine := newTestEngine(t)

	report := &models.DiffReport{
		File1:          "a.rs",
		File2:          "a.rs",
		AddedOrMissing: []string{},
		Modified:       []models.ModifiedMethod{},
		Removed:        []string{},
	}

	got, err := engine.Report(report, FormatText)
	require.NoError(t, err)

	want := `traitscope diff: a.rs vs a.rs

Added or missing (in a.rs, not in a.rs):
  None

Modified:
  None

Removed (in a.rs, not in a.rs):
  None
`
	assert.Equal(t, want, got)
}

func TestReportJSON(t *testing.T) {
	engine := newTestEngine(t)

	got, err := engine.Report(reportFixture(), FormatJSON)
	require.NoError(t, err)

	assert.Contains(t, got, `"added_or_missing"`)
	assert.Contains(t, got, `"stats"`)

	var decoded models.DiffReport
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, reportFixture(), &decoded)
}

func TestReportJSONEmptySectionsAreArrays(t *testing.T) {
	engine := newTestEngine(t)

	report := &models.DiffReport{
		File1:          "a.rs",
		File2:          "a.rs",
		AddedOrMissing: []string{},
		Modified:       []models.ModifiedMethod{},
		Removed:        []string{},
	}

	got, err := engine.Report(report, FormatJSON)
	require.NoError(t, err)

	assert.Contains(t, got, `"added_or_missing": []`)
	assert.NotContains(t, got, "null")
}

func TestReportYAML(t *testing.T) {
	engine := newTestEngine(t)

	got, err := engine.Report(reportFixture(), FormatYAML)
	require.NoError(t, err)

	assert.Contains(t, got, "added_or_missing:")

	var decoded models.DiffReport
	require.NoError(t, yaml.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, reportFixture(), &decoded)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "yaml", "JSON"} {
		_, err := ParseFormat(name)
		assert.NoError(t, err)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}
