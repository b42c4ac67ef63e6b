package model

// Provenance tags how a candidate string was produced.
type Provenance string

const (
	// ProvenanceIdentity is the literal text as found.
	ProvenanceIdentity Provenance = "identity"
	// ProvenanceCodepage is one reverse hop through the legacy Arabic code page.
	ProvenanceCodepage Provenance = "codepage"
	// ProvenanceDoubleHop is two reverse hops through the legacy Arabic code page.
	ProvenanceDoubleHop Provenance = "double-hop"
	// ProvenanceLatin1 maps runes back to Latin-1 bytes.
	ProvenanceLatin1 Provenance = "latin1-roundtrip"
	// ProvenanceCP1252 maps runes back to Windows-1252 bytes.
	ProvenanceCP1252 Provenance = "cp1252-roundtrip"
)

// Candidate is one reinterpretation of a suspect literal.
type Candidate struct {
	Text       string
	Provenance Provenance
	Score      float64
}
