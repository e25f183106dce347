package intent

// ProtocolConformance is a protocol-conformance intention (spec §3.1). It
// owns nothing of its own; its sole attribute is the protocol name being
// conformed to. Protocol inheritance cycle detection lives in graph.go
// (Graph.ProtocolInheritanceCycles); it follows protocol types' Supertype
// links, not conformance intentions.
type ProtocolConformance struct {
	Base

	ProtocolName string
}

// NewProtocolConformance creates a conformance intention.
func NewProtocolConformance(protocolName string) *ProtocolConformance {
	return &ProtocolConformance{ProtocolName: protocolName}
}

var _ Intention = (*ProtocolConformance)(nil)
