package promote

import "fmt"

// BinaryOp is a binary operator of the query language.
type BinaryOp uint8

const (
	OpOr BinaryOp = iota
	OpAnd
	OpEqual
	OpNotEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpLessThanOrEqual
	OpHas
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
)

var binaryNames = [...]string{
	OpOr:                 "or",
	OpAnd:                "and",
	OpEqual:              "eq",
	OpNotEqual:           "ne",
	OpGreaterThan:        "gt",
	OpGreaterThanOrEqual: "ge",
	OpLessThan:           "lt",
	OpLessThanOrEqual:    "le",
	OpHas:                "has",
	OpAdd:                "add",
	OpSubtract:           "sub",
	OpMultiply:           "mul",
	OpDivide:             "div",
	OpModulo:             "mod",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return fmt.Sprintf("BinaryOp(%d)", op)
}

// ParseBinaryOp accepts the URL keyword of an operator ("eq", "add", ...).
func ParseBinaryOp(s string) (BinaryOp, bool) {
	for i, name := range binaryNames {
		if name == s {
			return BinaryOp(i), true
		}
	}
	return 0, false
}

// IsEquality reports eq and ne.
func (op BinaryOp) IsEquality() bool {
	return op == OpEqual || op == OpNotEqual
}

// IsComparison reports operators whose result is Boolean.
func (op BinaryOp) IsComparison() bool {
	return op <= OpHas
}

// UnaryOp is a unary operator of the query language.
type UnaryOp uint8

const (
	OpNegate UnaryOp = iota
	OpNot
)

func (op UnaryOp) String() string {
	switch op {
	case OpNegate:
		return "negate"
	case OpNot:
		return "not"
	}
	return fmt.Sprintf("UnaryOp(%d)", op)
}

// ParseUnaryOp accepts "negate" (or "-") and "not".
func ParseUnaryOp(s string) (UnaryOp, bool) {
	switch s {
	case "negate", "-":
		return OpNegate, true
	case "not":
		return OpNot, true
	}
	return 0, false
}
