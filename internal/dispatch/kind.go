package dispatch

import "fmt"

// ResourceKind identifies one of the four dispatchable resource categories.
type ResourceKind int

const (
	// KindEmployee identifies personnel resources.
	KindEmployee ResourceKind = iota
	// KindEquipment identifies heavy equipment resources.
	KindEquipment
	// KindAttachment identifies equipment attachment resources.
	KindAttachment
	// KindTool identifies small tool resources.
	KindTool
)

// Kinds enumerates every resource kind in a stable order.
func Kinds() []ResourceKind {
	return []ResourceKind{KindEmployee, KindEquipment, KindAttachment, KindTool}
}

// String returns the wire name of the kind.
func (k ResourceKind) String() string {
	switch k {
	case KindEmployee:
		return "employee"
	case KindEquipment:
		return "equipment"
	case KindAttachment:
		return "attachment"
	case KindTool:
		return "tool"
	default:
		return fmt.Sprintf("ResourceKind(%d)", int(k))
	}
}

// Valid reports whether the kind is one of the four defined categories.
func (k ResourceKind) Valid() bool {
	return k >= KindEmployee && k <= KindTool
}

// ParseKind maps a wire name to its kind. The second return value reports
// whether the name was recognised.
func ParseKind(name string) (ResourceKind, bool) {
	switch name {
	case "employee":
		return KindEmployee, true
	case "equipment":
		return KindEquipment, true
	case "attachment":
		return KindAttachment, true
	case "tool":
		return KindTool, true
	default:
		return ResourceKind(-1), false
	}
}
