package models

import "strings"

// TraitBlock is the verbatim capture of one annotated trait definition,
// from the trait declaration line through the brace that closes its body.
// Lines keep their original indentation and comments; Marker records the
// attribute token that selected the block.
type TraitBlock struct {
	Source string
	Marker string
	Lines  []string
}

func (tb *TraitBlock) Text() string {
	return strings.Join(tb.Lines, "\n")
}

// MethodSignature is one method declaration lifted out of a trait body.
// Raw is the source span as matched, Normalized the comparison form with
// modifiers stripped and whitespace collapsed.
type MethodSignature struct {
	Name       string
	Raw        string
	Normalized string
}

// SignatureTable maps method names to signatures while remembering the
// order in which names first appeared. Re-adding a name replaces the
// signature but keeps the original position.
type SignatureTable struct {
	names   []string
	entries map[string]MethodSignature
}

func NewSignatureTable() *SignatureTable {
	return &SignatureTable{entries: make(map[string]MethodSignature)}
}

func (st *SignatureTable) Put(sig MethodSignature) {
	if _, ok := st.entries[sig.Name]; !ok {
		st.names = append(st.names, sig.Name)
	}
	st.entries[sig.Name] = sig
}

func (st *SignatureTable) Get(name string) (MethodSignature, bool) {
	sig, ok := st.entries[name]
	return sig, ok
}

// Names returns method names in first-appearance order.
func (st *SignatureTable) Names() []string {
	out := make([]string, len(st.names))
	copy(out, st.names)
	return out
}

func (st *SignatureTable) Len() int {
	return len(st.names)
}
