package graph

// Enum is an enumeration node: a backing size and an optional i64->name map
// (absent when the debug-info description didn't enumerate the enumerators).
type Enum struct {
	id          NodeID
	EnumName    string
	size        uint64
	Enumerators map[int64]string
}

func (e *Enum) ID() NodeID       { return e.id }
func (e *Enum) Kind() Kind       { return KindEnum }
func (e *Enum) Name() string     { return e.EnumName }
func (e *Enum) Size() uint64     { return e.size }
func (e *Enum) Align() uint64    { return e.size }
func (e *Enum) Accept(v Visitor) { v.VisitEnum(e) }
