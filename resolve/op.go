package resolve

type Op int

const (
	OpRead Op = iota
	OpReadMut
	OpInsert
	OpUpdate
	OpDelete
	OpSet
)

func (o Op) String() string {
	s, ok := map[Op]string{
		OpRead:    "read",
		OpReadMut: "read-mut",
		OpInsert:  "insert",
		OpUpdate:  "update",
		OpDelete:  "delete",
		OpSet:     "set",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}
